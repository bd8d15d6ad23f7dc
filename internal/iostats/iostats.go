// Package iostats fetches per-observer statistics from the API,
// checkpointing results so an interrupted run resumes where it stopped.
//
// Three API calls are needed per observer: the profile (skipped when an
// embedded profile is supplied), the research-grade observation count for
// the configured iconic taxon, and the identification count for the same
// taxon. With the default request throttling a large observer list takes
// hours, which is why the checkpoint file exists.
package iostats

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inat"
	"github.com/gnames/inatrank/pkg/inatrank"
)

type iostats struct {
	cfg    *config.Config
	client inat.Client
}

func New(cfg *config.Config, client inat.Client) inatrank.Enricher {
	res := iostats{cfg: cfg, client: client}
	return &res
}

// Enrich fetches statistics for every observer in the dataset and merges
// them into the rows by observer ID. Observers with the most observations
// in the dataset are fetched first, so an interrupted run still covers
// the users with the biggest impact on ranking.
func (s *iostats) Enrich(ctx context.Context, ds dataset.Dataset) error {
	userIDs := ds.UniqueInts("user.id")
	embedded := embeddedUsers(ds)

	stats, err := s.FetchAll(ctx, userIDs, embedded)
	if len(stats) > 0 {
		merge(ds, stats)
	}
	return err
}

// FetchAll returns statistics for the given observers. IDs already in the
// checkpoint file are skipped. Each remaining ID takes up to three
// throttled calls; the first failure halts the loop. Whatever was
// accumulated, old results included, is written back to the checkpoint
// before FetchAll returns, on success and on failure alike.
func (s *iostats) FetchAll(
	ctx context.Context,
	userIDs []int64,
	embedded map[int64]*inat.User,
) (map[int64]*inat.User, error) {
	taxonID, ok := inat.IconicTaxonID(s.cfg.IconicTaxon)
	if !ok {
		return nil, BadTaxonError(s.cfg.IconicTaxon)
	}

	stats, err := s.loadCheckpoint()
	if err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		slog.Info("Loaded checkpointed observer stats", "users", len(stats))
	}

	var remaining int
	for _, id := range userIDs {
		if _, ok := stats[id]; !ok {
			remaining++
		}
	}
	s.logEstimate(remaining, len(embedded) > 0)
	if remaining == 0 {
		return stats, nil
	}

	bar := pb.Full.Start(remaining)
	bar.Set("prefix", "Fetching observer stats: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var fetchErr error
	for _, id := range userIDs {
		if _, ok := stats[id]; ok {
			continue
		}

		user, err := s.fetchUser(ctx, id, taxonID, embedded[id])
		if err != nil {
			fetchErr = err
			break
		}
		stats[id] = user
		bar.Increment()
	}

	if err = s.saveCheckpoint(stats); err != nil {
		if fetchErr != nil {
			return stats, fetchErr
		}
		return stats, err
	}
	return stats, fetchErr
}

// fetchUser collects the three statistics for one observer. Either all
// calls succeed and a complete record returns, or the error returns with
// no partial record.
func (s *iostats) fetchUser(
	ctx context.Context,
	userID int64,
	taxonID int64,
	embedded *inat.User,
) (*inat.User, error) {
	user := embedded
	if user == nil {
		var err error
		user, err = s.client.UserByID(ctx, userID)
		if err != nil {
			return nil, FetchError(userID, err)
		}
	}

	obsCount, err := s.client.ObservationsCount(ctx, inat.SearchParams{
		UserID:       userID,
		IconicTaxa:   s.cfg.IconicTaxon,
		QualityGrade: "research",
	})
	if err != nil {
		return nil, FetchError(userID, err)
	}

	idCount, err := s.client.IdentificationsCount(ctx, inat.SearchParams{
		UserID:        userID,
		IconicTaxonID: taxonID,
	})
	if err != nil {
		return nil, FetchError(userID, err)
	}

	res := *user
	res.ID = userID
	res.IconicTaxonRGObservationsCount = int64(obsCount)
	res.IconicTaxonIdentificationsCount = int64(idCount)
	return &res, nil
}

func (s *iostats) logEstimate(remaining int, haveEmbedded bool) {
	callsPerUser := 3
	if haveEmbedded {
		callsPerUser = 2
	}
	est := time.Duration(remaining*callsPerUser) * s.cfg.API.Throttle

	slog.Info("Fetching stats for observers", "users", remaining)
	if est > time.Minute {
		slog.Warn("Estimated time with API request throttling",
			"estimate", est.Round(time.Minute).String())
	}
}

// embeddedUsers collects complete observer profiles already present in
// the dataset. API-loaded observations embed them; CSV exports carry only
// a couple of user columns, not enough to spare the profile call.
func embeddedUsers(ds dataset.Dataset) map[int64]*inat.User {
	res := make(map[int64]*inat.User)
	for _, row := range ds {
		id := row.Int("user.id")
		if id == 0 {
			continue
		}
		if _, ok := res[id]; ok {
			continue
		}
		if !row.Has("user.observations_count") ||
			!row.Has("user.identifications_count") {
			continue
		}
		res[id] = &inat.User{
			ID:                   id,
			Login:                row.String("user.login"),
			Name:                 row.String("user.name"),
			CreatedAt:            row.String("user.created_at"),
			SiteID:               row.Int("user.site_id"),
			Spam:                 row.Bool("user.spam"),
			Suspended:            row.Bool("user.suspended"),
			ObservationsCount:    row.Int("user.observations_count"),
			IdentificationsCount: row.Int("user.identifications_count"),
			SpeciesCount:         row.Int("user.species_count"),
			JournalPostsCount:    row.Int("user.journal_posts_count"),
			ActivityCount:        row.Int("user.activity_count"),
		}
	}
	return res
}

func merge(ds dataset.Dataset, stats map[int64]*inat.User) {
	var merged int
	for _, row := range ds {
		user, ok := stats[row.Int("user.id")]
		if !ok {
			continue
		}
		user.MergeInto(row)
		merged++
	}
	slog.Info("Merged observer stats into observations",
		"users", len(stats), "rows", merged)
}
