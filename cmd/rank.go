/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/inatrank/internal/ioload"
	"github.com/gnames/inatrank/internal/ioweights"
	"github.com/gnames/inatrank/pkg/ranking"
	"github.com/spf13/cobra"
)

// rankCmd computes the weighted ranking.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Compute the weighted observation ranking",
	Long: `Compute a rank score for every observation and sort the dataset.

Each weighted column is normalized (optionally on a natural-log scale),
z-scored over the whole dataset, multiplied by its weight from
weights.yaml and summed. The score is recomputed from scratch on every
run, so weights can be tuned and re-applied freely.

Examples:
  inatrank rank`,
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	weights, err := ioweights.New(cfg).Load()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	l := ioload.New(cfg, nil)
	ds, err := l.LoadProcessed()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ds = ranking.Rank(ds, weights)

	if err = l.SaveProcessed(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Ranked <em>%d</em> observations", ds.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
