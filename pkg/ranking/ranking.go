// Package ranking combines normalized, weighted observation attributes into
// a single score and sorts a dataset by it.
//
// The computation is pure and synchronous: no I/O, no error returns. An
// empty dataset yields an empty result.
package ranking

import (
	"math"

	"github.com/gnames/inatrank/pkg/dataset"
)

// RankColumn is the name of the derived score column added by Rank.
// The column is recomputed on every run and is never authoritative.
const RankColumn = "rank"

// Rank adds a "rank" score column to every row and sorts the dataset
// descending by it. The sort is stable, so ties keep their input order.
//
// Per weighted column the values are optionally log-transformed, z-score
// normalized over the whole dataset, and multiplied by the column weight;
// a row's score is the sum over all weighted columns.
//
// Columns absent from the dataset are skipped silently: the weight table
// may reference columns that only exist after an enrichment pass. A
// missing value, or a column with zero variance, contributes exactly zero
// to the affected rows instead of propagating an undefined score.
func Rank(ds dataset.Dataset, w Weights) dataset.Dataset {
	if len(ds) == 0 {
		return ds
	}

	scores := make([]float64, len(ds))
	for col, weight := range w.Columns {
		if !ds.HasColumn(col) {
			continue
		}
		contrib := columnContribution(ds, col, w.IsLogScale(col))
		for i := range scores {
			scores[i] += contrib[i] * weight
		}
	}

	for i, row := range ds {
		score := scores[i]
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		row[RankColumn] = score
	}

	ds.SortDescBy(RankColumn)
	return ds
}

// columnContribution returns the normalized per-row values of one column.
// Rows with a missing value, and all rows of a zero-variance column,
// contribute 0.
func columnContribution(
	ds dataset.Dataset, col string, logScale bool,
) []float64 {
	vals, present := ds.Column(col)

	if logScale {
		for i, v := range vals {
			if !present[i] {
				continue
			}
			if v > 0 {
				vals[i] = math.Log(v)
			} else {
				// ln is undefined here; clamp instead of poisoning
				// the whole column
				vals[i] = 0
			}
		}
	}

	mean, std := meanStd(vals, present)

	res := make([]float64, len(vals))
	if std == 0 {
		return res
	}
	for i, v := range vals {
		if !present[i] {
			continue
		}
		res[i] = (v - mean) / std
	}
	return res
}

// meanStd computes the mean and sample standard deviation over present
// values only.
func meanStd(vals []float64, present []bool) (float64, float64) {
	var sum float64
	var n int
	for i, v := range vals {
		if present[i] {
			sum += v
			n++
		}
	}
	if n < 2 {
		return sum, 0
	}
	mean := sum / float64(n)

	var sqDiff float64
	for i, v := range vals {
		if present[i] {
			d := v - mean
			sqDiff += d * d
		}
	}
	return mean, math.Sqrt(sqDiff / float64(n-1))
}
