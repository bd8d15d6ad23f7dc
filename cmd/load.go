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
	"github.com/gnames/inatrank/pkg/config"
	"github.com/spf13/cobra"
)

// loadCmd loads observations into the processed dataset.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load observations from CSV exports or the API",
	Long: `Load observations into the processed dataset.

With --exports, CSV bulk-export files matching the glob pattern are
loaded and concatenated. Without it, recent unidentified observations
for the configured iconic taxon are fetched from the API.

With --refresh, the existing dataset is kept and only observations
changed remotely since it was built are fetched and merged in.

Examples:
  inatrank load
  inatrank load --days 30
  inatrank load --exports 'observations-*.csv'
  inatrank load --refresh`,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	exports, _ := cmd.Flags().GetString("exports")
	days, _ := cmd.Flags().GetInt("days")
	if days > 0 {
		cfg.Update([]config.Option{config.OptLoadDays(days)})
	}

	if exports != "" {
		cfg.Update([]config.Option{config.OptLoadExportGlob(exports)})
		l := ioload.New(cfg, nil)
		ds, err := l.FromExports()
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err = l.SaveProcessed(ds); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Loaded <em>%d</em> observations from CSV exports", ds.Len())
		return nil
	}

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

	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		ds, err := l.LoadProcessed()
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err = l.Refresh(ctx, ds); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err = l.SaveProcessed(ds); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Refreshed <em>%d</em> observations", ds.Len())
		return nil
	}

	ds, err := l.FromAPI(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Loaded <em>%d</em> observations from the API", ds.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringP("exports", "e", "",
		"glob pattern of CSV export files to load instead of the API")
	loadCmd.Flags().IntP("days", "d", 0,
		"observation window in days for API queries")
	loadCmd.Flags().BoolP("refresh", "r", false,
		"merge remote changes into the existing dataset instead of reloading")
}
