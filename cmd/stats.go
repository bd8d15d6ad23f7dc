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
	"github.com/gnames/inatrank/internal/iostats"
	"github.com/spf13/cobra"
)

// statsCmd enriches the dataset with observer statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch observer statistics (resumable)",
	Long: `Fetch per-observer statistics and merge them into the dataset.

Up to three throttled API calls are needed per observer, so a large
dataset takes hours. Results are checkpointed after every run; when the
fetch is interrupted, the same command resumes where it stopped.

Examples:
  inatrank stats`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	client, closer, err := apiClient()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if closer != nil {
		defer closer()
	}

	l := ioload.New(cfg, client)
	ds, err := l.LoadProcessed()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iostats.New(cfg, client).Enrich(ctx, ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = l.SaveProcessed(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Observer statistics merged into <em>%d</em> observations",
		ds.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
