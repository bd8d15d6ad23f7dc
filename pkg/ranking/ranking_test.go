package ranking_test

import (
	"math"
	"testing"

	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSortsDescending(t *testing.T) {
	ds := dataset.Dataset{
		{"id": int64(1), "score": 10.0},
		{"id": int64(2), "score": 20.0},
		{"id": int64(3), "score": 30.0},
	}
	w := ranking.Weights{Columns: map[string]float64{"score": 1.0}}

	res := ranking.Rank(ds, w)

	require.Equal(t, 3, res.Len(), "ranking never drops rows")
	var ids []int64
	for _, row := range res {
		ids = append(ids, row.Int("id"))
	}
	assert.Equal(t, []int64{3, 2, 1}, ids)

	// z-scores with sample std: (10,20,30) -> (-1, 0, 1)
	assert.InDelta(t, 1.0, res[0].Float("rank"), 1e-9)
	assert.InDelta(t, 0.0, res[1].Float("rank"), 1e-9)
	assert.InDelta(t, -1.0, res[2].Float("rank"), 1e-9)
}

func TestRankAbsentColumn(t *testing.T) {
	ds := dataset.Dataset{
		{"id": int64(1), "score": 10.0},
		{"id": int64(2), "score": 20.0},
	}
	withAbsent := ranking.Weights{Columns: map[string]float64{
		"score":               1.0,
		"photo.iqa_technical": 9.0, // not in any row
	}}
	onlyScore := ranking.Weights{Columns: map[string]float64{"score": 1.0}}

	res1 := ranking.Rank(cloneDataset(ds), withAbsent)
	res2 := ranking.Rank(cloneDataset(ds), onlyScore)

	require.Equal(t, res2.Len(), res1.Len())
	for i := range res1 {
		assert.Equal(t, res2[i].Int("id"), res1[i].Int("id"))
		assert.InDelta(t, res2[i].Float("rank"), res1[i].Float("rank"), 1e-9)
	}
}

func TestRankZeroVariance(t *testing.T) {
	ds := dataset.Dataset{
		{"id": int64(1), "flat": 5.0, "score": 1.0},
		{"id": int64(2), "flat": 5.0, "score": 2.0},
		{"id": int64(3), "flat": 5.0, "score": 3.0},
	}
	w := ranking.Weights{Columns: map[string]float64{
		"flat":  100.0,
		"score": 1.0,
	}}

	res := ranking.Rank(ds, w)

	// the zero-variance column contributes nothing; order follows "score"
	assert.Equal(t, int64(3), res[0].Int("id"))
	assert.Equal(t, int64(1), res[2].Int("id"))
	for _, row := range res {
		assert.False(t, math.IsNaN(row.Float("rank")))
		assert.False(t, math.IsInf(row.Float("rank"), 0))
	}
}

func TestRankLogScale(t *testing.T) {
	// values [1, e, e^2] become [0, 1, 2] after ln; with weight 1.0
	// the pre-z-score contributions are exactly those
	ds := dataset.Dataset{
		{"id": int64(1), "count": 1.0},
		{"id": int64(2), "count": math.E},
		{"id": int64(3), "count": math.E * math.E},
	}
	w := ranking.Weights{
		Columns:  map[string]float64{"count": 1.0},
		LogScale: []string{"count"},
	}

	res := ranking.Rank(ds, w)

	// ln values are [0,1,2] -> z-scores [-1,0,1]
	assert.Equal(t, int64(3), res[0].Int("id"))
	assert.InDelta(t, 1.0, res[0].Float("rank"), 1e-9)
	assert.InDelta(t, 0.0, res[1].Float("rank"), 1e-9)
	assert.InDelta(t, -1.0, res[2].Float("rank"), 1e-9)
}

func TestRankLogScaleClampsNonPositive(t *testing.T) {
	ds := dataset.Dataset{
		{"id": int64(1), "count": 0.0},
		{"id": int64(2), "count": -3.0},
		{"id": int64(3), "count": 1.0},
	}
	w := ranking.Weights{
		Columns:  map[string]float64{"count": 1.0},
		LogScale: []string{"count"},
	}

	res := ranking.Rank(ds, w)
	for _, row := range res {
		assert.False(t, math.IsNaN(row.Float("rank")))
	}
	// ln(0) and ln(-3) clamp to 0, same as ln(1): full tie, stable order
	assert.Equal(t, int64(1), res[0].Int("id"))
	assert.Equal(t, int64(2), res[1].Int("id"))
	assert.Equal(t, int64(3), res[2].Int("id"))
}

func TestRankMissingValues(t *testing.T) {
	ds := dataset.Dataset{
		{"id": int64(1), "score": 10.0},
		{"id": int64(2)}, // no score at all
		{"id": int64(3), "score": 30.0},
	}
	w := ranking.Weights{Columns: map[string]float64{"score": 1.0}}

	res := ranking.Rank(ds, w)

	require.Equal(t, 3, res.Len())
	// missing value contributes 0, placing the row between the z-scored ones
	assert.Equal(t, int64(3), res[0].Int("id"))
	assert.Equal(t, int64(2), res[1].Int("id"))
	assert.Equal(t, int64(1), res[2].Int("id"))
	assert.Zero(t, res[1].Float("rank"))
}

func TestRankEmptyDataset(t *testing.T) {
	res := ranking.Rank(dataset.Dataset{}, ranking.Default())
	assert.Empty(t, res)
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name      string
		weights   ranking.Weights
		wantError bool
	}{
		{
			name:      "default table is valid",
			weights:   ranking.Default(),
			wantError: false,
		},
		{
			name:      "empty table",
			weights:   ranking.Weights{},
			wantError: true,
		},
		{
			name: "zero weight",
			weights: ranking.Weights{
				Columns: map[string]float64{"score": 0},
			},
			wantError: true,
		},
		{
			name: "log-scale column absent from weights",
			weights: ranking.Weights{
				Columns:  map[string]float64{"score": 1},
				LogScale: []string{"other"},
			},
			wantError: true,
		},
		{
			name: "negative weight is allowed",
			weights: ranking.Weights{
				Columns: map[string]float64{"user.spam": -5},
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func cloneDataset(ds dataset.Dataset) dataset.Dataset {
	res := make(dataset.Dataset, len(ds))
	for i, row := range ds {
		res[i] = row.Clone()
	}
	return res
}
