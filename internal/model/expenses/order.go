package expenses

import (
	"sort"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// normalize drops repeated IDs, keeping the first occurrence, and
// stable-sorts by date descending.
func normalize(in []expense.Record) []expense.Record {
	seen := make(map[string]struct{}, len(in))
	res := make([]expense.Record, 0, len(in))
	for _, rec := range in {
		if _, ok := seen[rec.ID]; ok {
			continue
		}
		seen[rec.ID] = struct{}{}
		res = append(res, rec)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})
	return res
}

// insertSorted places rec before the first record that is not newer, so
// the most recently inserted record leads among equal dates.
func (r *Reconciler) insertSorted(rec expense.Record) {
	idx := sort.Search(len(r.records), func(i int) bool {
		return !r.records[i].Date.After(rec.Date)
	})
	r.records = append(r.records, expense.Record{})
	copy(r.records[idx+1:], r.records[idx:])
	r.records[idx] = rec
}

func (r *Reconciler) removeAt(idx int) {
	r.records = append(r.records[:idx], r.records[idx+1:]...)
}

func (r *Reconciler) indexOf(id string) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
