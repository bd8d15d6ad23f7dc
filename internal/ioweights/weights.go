// Package ioweights loads the ranking weight table from weights.yaml.
package ioweights

import (
	"log/slog"
	"os"

	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/ranking"
	"gopkg.in/yaml.v3"
)

type ioweights struct {
	cfg *config.Config
}

// Weights loads and validates the ranking weight table.
type Weights interface {
	Load() (ranking.Weights, error)
}

func New(cfg *config.Config) Weights {
	res := ioweights{cfg: cfg}
	return &res
}

// Load reads weights.yaml from the config directory. A missing file falls
// back to the stock weight table; a malformed one is an error.
func (w *ioweights) Load() (ranking.Weights, error) {
	path := config.WeightsFilePath(w.cfg.HomeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No weights.yaml found, using default weights",
				"path", path)
			return ranking.Default(), nil
		}
		return ranking.Weights{}, WeightsConfigError(path, err)
	}

	var res ranking.Weights
	if err = yaml.Unmarshal(data, &res); err != nil {
		return ranking.Weights{}, WeightsConfigError(path, err)
	}

	if err = res.Validate(); err != nil {
		return ranking.Weights{}, WeightsConfigError(path, err)
	}

	slog.Info("Loaded ranking weights",
		"path", path, "columns", len(res.Columns))
	return res, nil
}
