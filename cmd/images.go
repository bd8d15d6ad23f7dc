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
	"github.com/gnames/inatrank/internal/ioimages"
	"github.com/gnames/inatrank/internal/ioload"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/spf13/cobra"
)

// imagesCmd downloads observation photos.
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Download observation photos",
	Long: `Download the photos of the processed dataset for image quality
assessment. Photos already on disk are skipped, so an interrupted run
can simply be restarted.

Examples:
  inatrank images
  inatrank images --size large
  inatrank images --concurrent`,
	RunE: runImages,
}

func runImages(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetString("size")
	if size != "" {
		cfg.Update([]config.Option{config.OptImagesTargetSize(size)})
	}
	if ok, _ := cmd.Flags().GetBool("concurrent"); ok {
		cfg.Update([]config.Option{config.OptImagesConcurrent(true)})
	}

	ctx, stop := signalContext()
	defer stop()

	ds, err := ioload.New(cfg, nil).LoadProcessed()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	urls := ioimages.URLs(ds, cfg.Images.TargetSize)
	if err = ioimages.New(cfg).Download(ctx, urls); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Photos are available at <em>%s</em>", cfg.ImageDir())
	return nil
}

func init() {
	rootCmd.AddCommand(imagesCmd)

	imagesCmd.Flags().StringP("size", "s", "",
		"photo size variant: square, small, medium, large, original")
	imagesCmd.Flags().BoolP("concurrent", "c", false,
		"download photos in parallel instead of throttled")
}
