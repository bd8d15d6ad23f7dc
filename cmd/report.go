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
	"github.com/gnames/inatrank/internal/ioreport"
	"github.com/gnames/inatrank/internal/ioweights"
	"github.com/spf13/cobra"
)

// reportCmd renders the ranked observations for review.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the HTML review report",
	Long: `Render the ranked observations as an HTML report, plus a minified
JSON export for lightweight viewers.

Observations without an image quality score are left out of the HTML
report; --top and --bottom slice the ranked dataset before rendering.

Examples:
  inatrank report
  inatrank report --top 500
  inatrank report --bottom 200`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	applySubsetFlags(cmd)

	weights, err := ioweights.New(cfg).Load()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ds, err := ioload.New(cfg, nil).LoadProcessed()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	r := ioreport.New(cfg, weights)
	if err = r.HTML(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = r.Minified(ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Report is available at <em>%s</em>", cfg.ReportFile())
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	subsetFlags(reportCmd)
}
