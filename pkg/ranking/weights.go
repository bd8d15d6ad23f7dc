package ranking

import (
	"fmt"
	"slices"
)

// Weights is the ranking weight table: a fixed mapping from column name to
// a positive or negative weight, plus the subset of columns that get
// natural-log treatment before normalization. It is configuration, loaded
// once per run from weights.yaml, and does not change at runtime.
type Weights struct {
	// Columns maps a dataset column name to its ranking weight.
	Columns map[string]float64 `yaml:"weights"`

	// LogScale lists columns replaced by their natural logarithm before
	// z-score normalization. Meant for long-tailed counts such as a
	// user's total observations.
	LogScale []string `yaml:"log_scale"`
}

// Default returns the stock weight table. Image-quality columns dominate;
// observer experience acts as a tie-breaker.
func Default() Weights {
	return Weights{
		Columns: map[string]float64{
			"photo.iqa_technical":                     9.0,
			"photo.iqa_aesthetic":                     7.0,
			"user.iconic_taxon_rg_observations_count": 0.3,
			"user.iconic_taxon_identifications_count": 0.5,
			"user.observations_count":                 0.1,
			"user.identifications_count":              0.1,
		},
		LogScale: []string{
			"user.iconic_taxon_identifications_count",
			"user.iconic_taxon_rg_observations_count",
			"user.observations_count",
			"user.identifications_count",
		},
	}
}

// Validate checks the weight table for fatal configuration mistakes.
func (w Weights) Validate() error {
	if len(w.Columns) == 0 {
		return fmt.Errorf("no ranking weights specified")
	}
	for col, weight := range w.Columns {
		if col == "" {
			return fmt.Errorf("empty column name in weight table")
		}
		if weight == 0 {
			return fmt.Errorf("column %q has zero weight", col)
		}
	}
	for _, col := range w.LogScale {
		if _, ok := w.Columns[col]; !ok {
			return fmt.Errorf(
				"log-scale column %q is not in the weight table", col)
		}
	}
	return nil
}

// IsLogScale reports whether a column gets natural-log treatment.
func (w Weights) IsLogScale(col string) bool {
	return slices.Contains(w.LogScale, col)
}
