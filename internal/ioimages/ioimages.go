// Package ioimages downloads observation photos for image quality
// assessment. Photos already on disk are never fetched again, so an
// interrupted download run can simply be restarted.
package ioimages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inatrank"
	"github.com/gnames/inatrank/pkg/photos"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

type ioimages struct {
	cfg  *config.Config
	http *resty.Client
}

func New(cfg *config.Config) inatrank.Downloader {
	res := ioimages{
		cfg:  cfg,
		http: resty.New().SetTimeout(2 * time.Minute),
	}
	return &res
}

// URLs returns the deduplicated photo URLs of the dataset at the
// configured target size, ready to pass to Download.
func URLs(ds dataset.Dataset, targetSize string) []string {
	raw := ds.UniqueStrings("photo.url")
	res := make([]string, 0, len(raw))
	for _, u := range raw {
		if sized := photos.SizeURL(u, targetSize); sized != "" {
			res = append(res, sized)
		}
	}
	return res
}

// Download fetches every photo that is not already in the image
// directory. A failed download is logged and skipped; the run keeps
// going so one dead URL does not lose an hour of progress.
func (d *ioimages) Download(ctx context.Context, urls []string) error {
	dir := d.cfg.ImageDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return DirError(dir, err)
	}

	remaining := d.skipDownloaded(dir, urls)
	slog.Info("Downloading observation photos",
		"total", len(urls),
		"cached", len(urls)-len(remaining),
		"remaining", len(remaining))
	if len(remaining) == 0 {
		return nil
	}

	bar := pb.Full.Start(len(remaining))
	bar.Set("prefix", "Downloading photos: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	start := time.Now()
	var fetched, failed int

	if d.cfg.Images.Concurrent {
		fetched, failed = d.downloadConcurrent(ctx, remaining, bar)
	} else {
		fetched, failed = d.downloadThrottled(ctx, remaining, bar)
	}

	slog.Info("Finished downloading photos",
		"fetched", fetched, "failed", failed,
		"elapsed", humanize.RelTime(start, time.Now(), "", ""))
	return ctx.Err()
}

// downloadThrottled fetches one photo at a time with the API throttling
// delay between requests. This is the polite default.
func (d *ioimages) downloadThrottled(
	ctx context.Context, urls map[string]string, bar *pb.ProgressBar,
) (int, int) {
	var fetched, failed int
	for url, path := range urls {
		if ctx.Err() != nil {
			break
		}
		if err := d.fetch(ctx, url, path); err != nil {
			slog.Warn("Photo download failed", "url", url, "error", err)
			failed++
		} else {
			fetched++
		}
		bar.Increment()

		select {
		case <-ctx.Done():
		case <-time.After(d.cfg.API.Throttle):
		}
	}
	return fetched, failed
}

// concurrentWorkers bounds parallel downloads when throttling is off.
const concurrentWorkers = 4

// downloadConcurrent fetches photos over a bounded worker group, without
// per-request delay. Use only for small batches.
func (d *ioimages) downloadConcurrent(
	ctx context.Context, urls map[string]string, bar *pb.ProgressBar,
) (int, int) {
	var fetched, failed int

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrentWorkers)

	results := make(chan bool)
	done := make(chan struct{})
	go func() {
		for ok := range results {
			if ok {
				fetched++
			} else {
				failed++
			}
			bar.Increment()
		}
		close(done)
	}()

	for url, path := range urls {
		g.Go(func() error {
			err := d.fetch(ctx, url, path)
			if err != nil {
				slog.Warn("Photo download failed", "url", url, "error", err)
			}
			results <- err == nil
			return nil
		})
	}
	g.Wait()
	close(results)
	<-done

	return fetched, failed
}

// fetch downloads one photo. The body goes to a temporary file first and
// only a complete download is renamed into place, so a dropped connection
// cannot leave a partial image that later runs would treat as done.
func (d *ioimages) fetch(ctx context.Context, url, path string) error {
	tmp := path + ".part"
	resp, err := d.http.R().
		SetContext(ctx).
		SetOutput(tmp).
		Get(url)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if resp.IsError() {
		os.Remove(tmp)
		return fmt.Errorf("HTTP %d", resp.StatusCode())
	}
	return os.Rename(tmp, path)
}

// skipDownloaded maps URL to local path for photos not yet on disk.
// The path depends only on the URL, so completed downloads from earlier
// runs are recognized by file name.
func (d *ioimages) skipDownloaded(
	dir string, urls []string,
) map[string]string {
	present := make(map[string]struct{})
	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, e := range entries {
			present[e.Name()] = struct{}{}
		}
	}

	res := make(map[string]string)
	for _, url := range urls {
		path := photos.LocalPath(dir, url)
		if path == "" {
			continue
		}
		if _, ok := present[filepath.Base(path)]; ok {
			continue
		}
		res[url] = path
	}
	return res
}
