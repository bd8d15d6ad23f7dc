package inat

import (
	"github.com/gnames/inatrank/pkg/dataset"
)

// ObservationsPage is the envelope returned by paginated endpoints.
type ObservationsPage struct {
	TotalResults int           `json:"total_results"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	Results      []Observation `json:"results"`
}

// CountResponse carries only the size of a result set (per_page=0 queries).
type CountResponse struct {
	TotalResults int `json:"total_results"`
}

// UserResponse is the envelope of the /users/{id} endpoint.
type UserResponse struct {
	TotalResults int    `json:"total_results"`
	Results      []User `json:"results"`
}

// Observation is a single sighting record as returned by the API.
type Observation struct {
	ID                              int64   `json:"id"`
	QualityGrade                    string  `json:"quality_grade"`
	ObservedOn                      string  `json:"observed_on"`
	CreatedAt                       string  `json:"created_at"`
	UpdatedAt                       string  `json:"updated_at"`
	Location                        string  `json:"location"`
	PositionalAccuracy              float64 `json:"positional_accuracy"`
	PublicPositionalAccuracy        float64 `json:"public_positional_accuracy"`
	Obscured                        bool    `json:"obscured"`
	NumIdentificationAgreements     int64   `json:"num_identification_agreements"`
	NumIdentificationDisagreements  int64   `json:"num_identification_disagreements"`
	Description                     string  `json:"description"`
	URI                             string  `json:"uri"`
	Taxon                           *Taxon  `json:"taxon"`
	User                            *User   `json:"user"`
	Photos                          []Photo `json:"photos"`
}

// Taxon is the taxonomic identification attached to an observation.
type Taxon struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Rank                string `json:"rank"`
	PreferredCommonName string `json:"preferred_common_name"`
	IconicTaxonName     string `json:"iconic_taxon_name"`
}

// User is an observer profile. The same shape is reused for checkpointed
// statistics records, extended with taxon-scoped counts computed by the
// enrichment fetcher.
type User struct {
	ID                   int64  `json:"id,omitempty"`
	Login                string `json:"login"`
	Name                 string `json:"name"`
	CreatedAt            string `json:"created_at"`
	SiteID               int64  `json:"site_id"`
	Spam                 bool   `json:"spam"`
	Suspended            bool   `json:"suspended"`
	ObservationsCount    int64  `json:"observations_count"`
	IdentificationsCount int64  `json:"identifications_count"`
	SpeciesCount         int64  `json:"species_count"`
	JournalPostsCount    int64  `json:"journal_posts_count"`
	ActivityCount        int64  `json:"activity_count"`

	// Taxon-scoped counts are not part of the API profile; the
	// enrichment fetcher fills them with separate count queries.
	IconicTaxonRGObservationsCount  int64 `json:"iconic_taxon_rg_observations_count"`
	IconicTaxonIdentificationsCount int64 `json:"iconic_taxon_identifications_count"`
}

// Photo is one image attached to an observation.
type Photo struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Row flattens an observation into the dotted-key tabular schema shared
// with CSV exports. Only the first photo is kept, matching the export
// format which carries a single image URL per record.
func (o Observation) Row() dataset.Row {
	row := dataset.Row{
		"id":                               o.ID,
		"quality_grade":                    o.QualityGrade,
		"observed_on":                      o.ObservedOn,
		"created_at":                       o.CreatedAt,
		"updated_at":                       o.UpdatedAt,
		"coordinates_obscured":             o.Obscured,
		"positional_accuracy":              o.PositionalAccuracy,
		"public_positional_accuracy":       o.PublicPositionalAccuracy,
		"num_identification_agreements":    o.NumIdentificationAgreements,
		"num_identification_disagreements": o.NumIdentificationDisagreements,
		"description":                      o.Description,
	}

	if o.Taxon != nil {
		row["taxon.id"] = o.Taxon.ID
		row["taxon.name"] = o.Taxon.Name
		row["taxon.rank"] = o.Taxon.Rank
		if o.Taxon.PreferredCommonName != "" {
			row["taxon.preferred_common_name"] = o.Taxon.PreferredCommonName
		}
		row["taxon.iconic_taxon_name"] = o.Taxon.IconicTaxonName
	}

	if o.User != nil {
		o.User.MergeInto(row)
	}

	if len(o.Photos) > 0 {
		row["photo.id"] = o.Photos[0].ID
		row["photo.url"] = o.Photos[0].URL
	}

	return row
}

// MergeInto writes the user's fields into a row under "user." keys.
// Used both when flattening API observations and when merging checkpointed
// statistics back into a dataset.
func (u User) MergeInto(row dataset.Row) {
	if u.ID != 0 {
		row["user.id"] = u.ID
	}
	row["user.login"] = u.Login
	row["user.name"] = u.Name
	row["user.created_at"] = u.CreatedAt
	row["user.site_id"] = u.SiteID
	row["user.spam"] = u.Spam
	row["user.suspended"] = u.Suspended
	row["user.observations_count"] = u.ObservationsCount
	row["user.identifications_count"] = u.IdentificationsCount
	row["user.species_count"] = u.SpeciesCount
	row["user.journal_posts_count"] = u.JournalPostsCount
	row["user.activity_count"] = u.ActivityCount
	row["user.iconic_taxon_rg_observations_count"] = u.IconicTaxonRGObservationsCount
	row["user.iconic_taxon_identifications_count"] = u.IconicTaxonIdentificationsCount
}
