package ioload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	header := []string{
		"id", "image_url", "common_name", "user_id",
		"time_zone", "scientific_name", "place_guess",
	}
	got := normalizeHeader(header)
	assert.Equal(t, []string{
		"id", "photo.url", "taxon.preferred_common_name", "user.id",
		"", "", "place_guess",
	}, got)
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		msg, column, value string
		want               any
	}{
		{"int", "id", "12345", int64(12345)},
		{"int from float", "user.id", "42.0", int64(42)},
		{"int empty", "taxon.id", "", int64(0)},
		{"int garbage", "photo.id", "n/a", int64(0)},
		{"float", "latitude", "-37.5", float64(-37.5)},
		{"float empty", "longitude", "", float64(0)},
		{"bool true", "coordinates_obscured", "true", true},
		{"bool empty", "user.spam", "", false},
		{"untyped stays string", "place_guess", "12", "12"},
	}

	for _, v := range tests {
		got := coerce(v.column, v.value)
		assert.Equal(t, v.want, got, v.msg)
	}
}

func TestNormalizeRecordPhotoID(t *testing.T) {
	columns := []string{"id", "photo.url"}
	row := normalizeRecord(columns, []string{
		"1", "https://static.inaturalist.org/photos/123456/medium.jpeg",
	})
	assert.Equal(t, int64(123456), row["photo.id"])

	// no URL, no derived ID
	row = normalizeRecord(columns, []string{"2", ""})
	assert.False(t, row.Has("photo.id"))
}
