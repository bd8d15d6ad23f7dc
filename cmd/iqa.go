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
	"github.com/gnames/inatrank/internal/ioiqa"
	"github.com/gnames/inatrank/internal/ioload"
	"github.com/spf13/cobra"
)

// iqaCmd merges image quality scores into the dataset.
var iqaCmd = &cobra.Command{
	Use:   "iqa",
	Short: "Merge image quality assessment scores",
	Long: `Merge image quality assessment scores into the dataset.

The scores come from an external IQA model run over the downloaded
photos; its report files (iqa_technical.json, iqa_aesthetic.json) are
expected in the data directory. Missing report files are skipped.

Examples:
  inatrank iqa`,
	RunE: runIQA,
}

func runIQA(cmd *cobra.Command, args []string) error {
	l := ioload.New(cfg, nil)
	ds, err := l.LoadProcessed()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioiqa.New(cfg).Merge(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = l.SaveProcessed(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Image quality scores merged into the dataset")
	return nil
}

func init() {
	rootCmd.AddCommand(iqaCmd)
}
