// Package query derives the visible view from a record collection and the
// current filter/sort state. Everything here is pure: the same inputs always
// produce the same result, and input slices are never mutated.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

// Stats are aggregate counts over the unfiltered collection. They never
// depend on the active filters.
type Stats struct {
	Total    int                   `json:"total"`
	ByStatus map[models.Status]int `json:"by_status"`
}

// Result is the derived view the client renders.
type Result struct {
	Visible     []models.ApplicationRecord
	HiddenCount int
	Stats       Stats
}

// Run applies the text filter, the status filter and the sort, and computes
// the aggregate counts.
func Run(records []models.ApplicationRecord, qs models.QueryState) Result {
	res := Result{Stats: statsFor(records)}

	q := strings.ToLower(strings.TrimSpace(qs.Query))
	visible := make([]models.ApplicationRecord, 0, len(records))
	for _, rec := range records {
		if q != "" {
			hay := strings.ToLower(strings.Join([]string{
				rec.Company, rec.Role, rec.Source, string(rec.Status), rec.Notes,
			}, " "))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if qs.Status != "" && qs.Status != models.StatusFilterAll && string(rec.Status) != qs.Status {
			continue
		}
		visible = append(visible, rec)
	}

	sortRecords(visible, qs.Sort)
	res.Visible = visible
	if hidden := len(records) - len(visible); hidden > 0 {
		res.HiddenCount = hidden
	}
	return res
}

// statsFor counts the whole collection. All four statuses are always present
// in the map, even at zero; statuses smuggled in by an import are counted too.
func statsFor(records []models.ApplicationRecord) Stats {
	st := Stats{Total: len(records), ByStatus: make(map[models.Status]int, 4)}
	for _, s := range models.Statuses() {
		st.ByStatus[s] = 0
	}
	for _, rec := range records {
		st.ByStatus[rec.Status]++
	}
	return st
}

// sortRecords sorts in place. Dates are ISO day strings, so lexicographic
// order is chronological order. Company names compare collation-aware, the
// way the browser's localeCompare did. Unknown modes leave the order as-is.
func sortRecords(records []models.ApplicationRecord, mode models.SortMode) {
	switch mode {
	case models.SortCompanyAsc, models.SortCompanyDesc:
		// collate.Collator is not safe for concurrent use, so each sort
		// gets its own.
		c := collate.New(language.Und)
		sort.SliceStable(records, func(i, j int) bool {
			cmp := c.CompareString(records[i].Company, records[j].Company)
			if mode == models.SortCompanyDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case models.SortDateAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date < records[j].Date
		})
	case models.SortDateDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date > records[j].Date
		})
	}
}
