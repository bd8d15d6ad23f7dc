// Package dataset provides a small in-memory tabular model for observation
// records. It is the internal interchange format between the loader, the
// enrichment fetchers, the ranking engine and the report generator.
//
// The model is deliberately loose: rows are maps with dotted column names,
// and column sets may differ between rows (image-quality columns, for
// example, appear only after an enrichment pass).
package dataset

import (
	"sort"
)

// Dataset is an ordered collection of rows.
type Dataset []Row

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d)
}

// HasColumn reports whether any row carries the column.
func (d Dataset) HasColumn(key string) bool {
	for _, row := range d {
		if row.Has(key) {
			return true
		}
	}
	return false
}

// Column extracts a numeric column. The second slice flags, per row,
// whether the value was present and numeric.
func (d Dataset) Column(key string) ([]float64, []bool) {
	vals := make([]float64, len(d))
	ok := make([]bool, len(d))
	for i, row := range d {
		vals[i], ok[i] = row.FloatOK(key)
	}
	return vals, ok
}

// SortDescBy sorts rows in place, descending by the given numeric column.
// The sort is stable: ties keep their dataset order.
func (d Dataset) SortDescBy(key string) {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Float(key) > d[j].Float(key)
	})
}

// Top returns the first n rows (or all rows when n exceeds the length).
func (d Dataset) Top(n int) Dataset {
	if n >= len(d) {
		n = len(d)
	}
	res := make(Dataset, n)
	copy(res, d[:n])
	return res
}

// Bottom returns the last n rows.
func (d Dataset) Bottom(n int) Dataset {
	if n >= len(d) {
		n = len(d)
	}
	res := make(Dataset, n)
	copy(res, d[len(d)-n:])
	return res
}

// Filter returns rows for which keep returns true, preserving order.
func (d Dataset) Filter(keep func(Row) bool) Dataset {
	var res Dataset
	for _, row := range d {
		if keep(row) {
			res = append(res, row)
		}
	}
	return res
}

// UniqueInts returns distinct int64 values of a column ordered by
// descending frequency in the dataset. Rows without the column are
// skipped. Ties keep first-seen order.
//
// Used to enrich the most impactful observers first: if a long fetch is
// interrupted, the users with the most observations are already done.
func (d Dataset) UniqueInts(key string) []int64 {
	counts := make(map[int64]int)
	var order []int64
	for _, row := range d {
		if !row.Has(key) {
			continue
		}
		id := row.Int(key)
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// UniqueStrings returns distinct non-empty string values of a column,
// sorted lexically.
func (d Dataset) UniqueStrings(key string) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, row := range d {
		s := row.String(key)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	sort.Strings(res)
	return res
}

// MergeByID merges updated rows into the dataset, matched on the "id"
// column. Columns present in an updated row overwrite the original ones;
// rows without a match are ignored.
func (d Dataset) MergeByID(updates Dataset) {
	byID := make(map[int64]Row, len(updates))
	for _, row := range updates {
		if row.Has("id") {
			byID[row.Int("id")] = row
		}
	}
	for _, row := range d {
		upd, ok := byID[row.Int("id")]
		if !ok {
			continue
		}
		for k, v := range upd {
			row[k] = v
		}
	}
}
