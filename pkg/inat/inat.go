// Package inat defines the data types of the iNaturalist API v1 and the
// contract of its client. The implementation lives in internal/ioapi.
package inat

import (
	"context"
	"time"
)

// Client talks to the iNaturalist API. Implementations are expected to
// throttle their own requests; all calls block until the response arrives
// or ctx is cancelled.
type Client interface {
	// Observations fetches one page of an observation search.
	Observations(
		ctx context.Context, params SearchParams,
	) (*ObservationsPage, error)

	// AllObservations follows pagination until every matching
	// observation is collected.
	AllObservations(
		ctx context.Context, params SearchParams,
	) ([]Observation, error)

	// ObservationsCount returns only the number of observations
	// matching the search, without fetching records.
	ObservationsCount(ctx context.Context, params SearchParams) (int, error)

	// IdentificationsCount returns the number of identifications made
	// by a user, optionally scoped to an iconic taxon.
	IdentificationsCount(
		ctx context.Context, params SearchParams,
	) (int, error)

	// UserByID fetches an observer's profile.
	UserByID(ctx context.Context, userID int64) (*User, error)
}

// SearchParams describes an observation or identification search.
// Zero-valued fields are omitted from the request.
type SearchParams struct {
	// IconicTaxa limits results to a coarse taxonomic group, e.g.
	// "Arachnida".
	IconicTaxa string

	// IconicTaxonID is the numeric form used by the identifications
	// endpoint.
	IconicTaxonID int64

	// QualityGrade is "needs_id", "research" or "casual".
	QualityGrade string

	// UserID limits results to one observer.
	UserID int64

	// IDs limits results to specific observation IDs.
	IDs []int64

	// ObservedSince bounds the observation date from below (d1).
	ObservedSince time.Time

	// UpdatedSince limits results to records changed after this moment.
	UpdatedSince time.Time

	// Page and PerPage control pagination. PerPage is capped at 200 by
	// the API.
	Page    int
	PerPage int
}
