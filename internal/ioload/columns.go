package ioload

import (
	"strconv"
	"strings"
)

// renameColumns maps CSV bulk-export headers to their internal dotted
// names. Every rename is an exact header match; headers absent from this
// table and from dropColumns are kept verbatim.
var renameColumns = map[string]string{
	"common_name":       "taxon.preferred_common_name",
	"iconic_taxon_name": "taxon.iconic_taxon_name",
	"image_url":         "photo.url",
	"species_guess":     "taxon.species_guess",
	"taxon_id":          "taxon.id",
	"user_id":           "user.id",
	"user_login":        "user.login",
	"user_name":         "user.name",
}

// dropColumns lists export headers with no use downstream. Private
// coordinates never leave the loader.
var dropColumns = map[string]struct{}{
	"oauth_application_id": {},
	"observed_on_string":   {},
	"positioning_device":   {},
	"positioning_method":   {},
	"private_latitude":     {},
	"private_longitude":    {},
	"private_place_guess":  {},
	"scientific_name":      {},
	"time_observed_at":     {},
	"time_zone":            {},
}

type columnKind int

const (
	kindString columnKind = iota
	kindInt
	kindFloat
	kindBool
)

// columnTypes is the per-column coercion table, keyed by internal name.
// Columns not listed here stay strings.
var columnTypes = map[string]columnKind{
	"coordinates_obscured":                     kindBool,
	"id":                                       kindInt,
	"latitude":                                 kindFloat,
	"longitude":                                kindFloat,
	"num_identification_agreements":            kindInt,
	"num_identification_disagreements":         kindInt,
	"photo.id":                                 kindInt,
	"photo.iqa_aesthetic":                      kindFloat,
	"photo.iqa_technical":                      kindFloat,
	"positional_accuracy":                      kindFloat,
	"public_positional_accuracy":               kindFloat,
	"taxon.id":                                 kindInt,
	"user.activity_count":                      kindInt,
	"user.iconic_taxon_identifications_count":  kindInt,
	"user.iconic_taxon_rg_observations_count":  kindInt,
	"user.id":                                  kindInt,
	"user.identifications_count":               kindInt,
	"user.journal_posts_count":                 kindInt,
	"user.observations_count":                  kindInt,
	"user.site_id":                             kindInt,
	"user.spam":                                kindBool,
	"user.species_count":                       kindInt,
	"user.suspended":                           kindBool,
}

// coerce converts a CSV cell to the column's declared type. An empty cell
// or an unparsable value yields the type's zero value, keeping malformed
// exports loadable.
func coerce(column, value string) any {
	kind, ok := columnTypes[column]
	if !ok {
		return value
	}

	value = strings.TrimSpace(value)
	switch kind {
	case kindInt:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			// exports write counts as "12.0" on occasion
			if f, ferr := strconv.ParseFloat(value, 64); ferr == nil {
				return int64(f)
			}
			return int64(0)
		}
		return i
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return float64(0)
		}
		return f
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		return b
	default:
		return value
	}
}
