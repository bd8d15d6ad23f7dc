package photos_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/inatrank/pkg/photos"
	"github.com/stretchr/testify/assert"
)

func TestSizeURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		target string
		want   string
	}{
		{
			name:   "medium to original",
			url:    "https://static.inaturalist.org/photos/123/medium.jpg",
			target: "original",
			want:   "https://static.inaturalist.org/photos/123/original.jpg",
		},
		{
			name:   "square to large",
			url:    "https://static.inaturalist.org/photos/123/square.jpeg",
			target: "large",
			want:   "https://static.inaturalist.org/photos/123/large.jpeg",
		},
		{
			name:   "already target size",
			url:    "https://static.inaturalist.org/photos/123/original.png",
			target: "original",
			want:   "https://static.inaturalist.org/photos/123/original.png",
		},
		{
			name:   "non-http value",
			url:    "not-a-url",
			target: "original",
			want:   "",
		},
		{
			name:   "empty cell",
			url:    "",
			target: "original",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photos.SizeURL(tt.url, tt.target))
		})
	}
}

func TestID(t *testing.T) {
	assert.Equal(t, "123",
		photos.ID("https://static.inaturalist.org/photos/123/medium.jpg"))
	assert.Equal(t, "",
		photos.ID("https://example.org/no/pattern.html"))
}

func TestLocalPath(t *testing.T) {
	dir := "/images"

	got := photos.LocalPath(dir,
		"https://static.inaturalist.org/photos/123/medium.jpg")
	assert.Equal(t, filepath.Join(dir, "123.jpg"), got)

	// deterministic: same URL, same path
	again := photos.LocalPath(dir,
		"https://static.inaturalist.org/photos/123/medium.jpg")
	assert.Equal(t, got, again)

	// size variants of the same photo share the base filename
	original := photos.LocalPath(dir,
		"https://static.inaturalist.org/photos/123/original.jpg")
	assert.Equal(t, filepath.Base(got), filepath.Base(original))

	// unexpected shapes fall back to the URL's last segment
	odd := photos.LocalPath(dir, "https://example.org/some/image.jpg")
	assert.Equal(t, filepath.Join(dir, "image.jpg"), odd)
}
