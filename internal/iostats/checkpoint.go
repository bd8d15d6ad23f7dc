package iostats

import (
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/pkg/inat"
)

// loadCheckpoint reads previously fetched observer stats. A missing file
// means a fresh start, not an error.
func (s *iostats) loadCheckpoint() (map[int64]*inat.User, error) {
	path := s.cfg.UserStatsFile()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[int64]*inat.User), nil
		}
		return nil, CheckpointError(path, err)
	}

	res := make(map[int64]*inat.User)
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, CheckpointError(path, err)
	}
	return res, nil
}

// saveCheckpoint overwrites the checkpoint file with the full stats map.
func (s *iostats) saveCheckpoint(stats map[int64]*inat.User) error {
	path := s.cfg.UserStatsFile()

	enc := gnfmt.GNjson{}
	data, err := enc.Encode(stats)
	if err != nil {
		return CheckpointError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return CheckpointError(path, err)
	}

	slog.Info("Saved observer stats checkpoint",
		"path", path, "users", len(stats))
	return nil
}
