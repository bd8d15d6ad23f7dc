// Package photos provides pure helpers for observation photo URLs:
// size-variant rewriting, photo-ID extraction and local path derivation.
//
// Path derivation is deterministic: the same URL always maps to the same
// local file name, so interrupted download runs can resume by checking
// the file system.
package photos

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// photoIDPattern extracts the photo ID and extension from URLs shaped
// like https://static.inaturalist.org/photos/12345/medium.jpg
var photoIDPattern = regexp.MustCompile(`.*photos/(.*)/.*\.(\w+)`)

// sizes are the photo size variants iNaturalist serves, in ascending
// order of resolution.
var sizes = []string{"square", "small", "medium", "large", "original"}

// SizeURL returns the URL of the requested size variant given an image
// URL of any size. Non-HTTP values (CSV exports contain empty cells and
// junk) return "".
func SizeURL(imageURL, targetSize string) string {
	if !strings.HasPrefix(imageURL, "http") {
		return ""
	}
	for _, size := range sizes {
		imageURL = strings.ReplaceAll(imageURL, size, targetSize)
	}
	return imageURL
}

// ID extracts the photo ID from its URL. CSV exports carry only a URL,
// so this is the only way to key image-quality scores to export records.
// Returns "" when the URL has an unexpected shape.
func ID(imageURL string) string {
	match := photoIDPattern.FindStringSubmatch(imageURL)
	if match == nil {
		return ""
	}
	return match[1]
}

// LocalPath determines the file path of a downloaded image inside dir.
// The name is derived from the photo ID and extension; a URL in an
// unexpected format falls back to its last path segment.
func LocalPath(dir, imageURL string) string {
	match := photoIDPattern.FindStringSubmatch(imageURL)
	var filename string
	if match != nil {
		filename = fmt.Sprintf("%s.%s", match[1], match[2])
	} else {
		parts := strings.Split(imageURL, "/")
		filename = parts[len(parts)-1]
	}
	return filepath.Join(dir, filename)
}
