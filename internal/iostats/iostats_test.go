package iostats

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingClient serves canned stats and fails after a set number of
// profile fetches to simulate interruption mid-run.
type countingClient struct {
	profileCalls int
	obsCalls     int
	identCalls   int
	failAfter    int
}

func (c *countingClient) Observations(
	ctx context.Context, params inat.SearchParams,
) (*inat.ObservationsPage, error) {
	return &inat.ObservationsPage{}, nil
}

func (c *countingClient) AllObservations(
	ctx context.Context, params inat.SearchParams,
) ([]inat.Observation, error) {
	return nil, nil
}

func (c *countingClient) ObservationsCount(
	ctx context.Context, params inat.SearchParams,
) (int, error) {
	c.obsCalls++
	return 11, nil
}

func (c *countingClient) IdentificationsCount(
	ctx context.Context, params inat.SearchParams,
) (int, error) {
	c.identCalls++
	return 7, nil
}

func (c *countingClient) UserByID(
	ctx context.Context, userID int64,
) (*inat.User, error) {
	c.profileCalls++
	if c.failAfter > 0 && c.profileCalls > c.failAfter {
		return nil, errors.New("rate limited")
	}
	return &inat.User{ID: userID, Login: "observer"}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDataDir(t.TempDir())})
	return cfg
}

func TestFetchAll(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{}
	s := New(cfg, client).(*iostats)

	stats, err := s.FetchAll(context.Background(), []int64{1, 2, 3}, nil)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, 3, client.profileCalls)
	assert.Equal(t, 3, client.obsCalls)
	assert.Equal(t, 3, client.identCalls)
	assert.Equal(t, int64(11), stats[1].IconicTaxonRGObservationsCount)
	assert.Equal(t, int64(7), stats[1].IconicTaxonIdentificationsCount)
}

func TestFetchAllCheckpointSkips(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{}
	s := New(cfg, client).(*iostats)

	_, err := s.FetchAll(context.Background(), []int64{1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, client.profileCalls)

	// a second run over the same IDs makes zero API calls
	s2 := New(cfg, client).(*iostats)
	stats, err := s2.FetchAll(context.Background(), []int64{1, 2}, nil)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 2, client.profileCalls)
	assert.Equal(t, 2, client.obsCalls)
}

func TestFetchAllPersistsOnFailure(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{failAfter: 2}
	s := New(cfg, client).(*iostats)

	stats, err := s.FetchAll(context.Background(), []int64{1, 2, 3, 4}, nil)
	require.Error(t, err)
	// two complete records, none for the failed ID
	assert.Len(t, stats, 2)

	// re-run resumes from the checkpoint: only the remaining IDs fetch
	client2 := &countingClient{}
	s2 := New(cfg, client2).(*iostats)
	stats, err = s2.FetchAll(context.Background(), []int64{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	assert.Len(t, stats, 4)
	assert.Equal(t, 2, client2.profileCalls)
}

func TestFetchAllUnknownTaxon(t *testing.T) {
	cfg := testConfig(t)
	// bypass option validation to simulate a hand-built config
	cfg.IconicTaxon = "Arachnid"

	client := &countingClient{}
	s := New(cfg, client).(*iostats)

	_, err := s.FetchAll(context.Background(), []int64{1, 2}, nil)
	require.Error(t, err)

	// no call runs, so no unscoped count can reach the checkpoint
	assert.Equal(t, 0, client.profileCalls)
	assert.Equal(t, 0, client.obsCalls)
	assert.Equal(t, 0, client.identCalls)
	assert.NoFileExists(t, cfg.UserStatsFile())
}

func TestFetchAllEmbeddedSkipsProfile(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{}
	s := New(cfg, client).(*iostats)

	embedded := map[int64]*inat.User{
		1: {ID: 1, Login: "resident", ObservationsCount: 500},
	}
	stats, err := s.FetchAll(context.Background(), []int64{1}, embedded)
	require.NoError(t, err)

	assert.Equal(t, 0, client.profileCalls)
	assert.Equal(t, 1, client.obsCalls)
	assert.Equal(t, "resident", stats[1].Login)
	assert.Equal(t, int64(500), stats[1].ObservationsCount)
	assert.Equal(t, int64(11), stats[1].IconicTaxonRGObservationsCount)
}

func TestEnrich(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{}
	s := New(cfg, client)

	ds := dataset.Dataset{
		{"id": int64(101), "user.id": int64(1)},
		{"id": int64(102), "user.id": int64(1)},
		{"id": int64(103), "user.id": int64(2)},
	}
	err := s.Enrich(context.Background(), ds)
	require.NoError(t, err)

	// 2 unique observers, CSV rows have no embedded profiles
	assert.Equal(t, 2, client.profileCalls)
	for _, row := range ds {
		assert.Equal(t, int64(11),
			row.Int("user.iconic_taxon_rg_observations_count"))
		assert.Equal(t, int64(7),
			row.Int("user.iconic_taxon_identifications_count"))
		assert.Equal(t, "observer", row.String("user.login"))
	}
}

func TestEnrichUsesEmbeddedProfiles(t *testing.T) {
	cfg := testConfig(t)
	client := &countingClient{}
	s := New(cfg, client)

	// API-loaded rows carry full observer profiles
	ds := dataset.Dataset{
		{
			"id":                         int64(101),
			"user.id":                    int64(1),
			"user.login":                 "resident",
			"user.observations_count":    int64(500),
			"user.identifications_count": int64(90),
		},
	}
	err := s.Enrich(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 0, client.profileCalls)
	assert.Equal(t, 1, client.obsCalls)
	assert.Equal(t, "resident", ds[0].String("user.login"))
}
