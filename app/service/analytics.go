package service

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"placement-dashboard/app/models"
)

// RecruiterLimit is the number of bars in the top recruiter chart.
const RecruiterLimit = 10

// ErrEmptyView is returned by aggregations that need at least one row.
var ErrEmptyView = errors.New("no data available for the selected view")

// YearOptions returns the selector values: the sentinel first, then every
// distinct year ascending.
func YearOptions(table *models.PlacementTable) []string {
	seen := make(map[string]bool)
	var out []string
	for _, y := range years(table) {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return lessYear(out[i], out[j]) })
	return append([]string{models.AllYears}, out...)
}

// Filter returns the rows whose Year equals selection. The sentinel and the
// empty selection return the table itself.
func Filter(table *models.PlacementTable, selection string) *models.PlacementTable {
	selection = strings.TrimSpace(selection)
	if selection == "" || selection == models.AllYears {
		return table
	}

	var idx []int
	for i, y := range years(table) {
		if y == selection {
			idx = append(idx, i)
		}
	}
	return table.Subset(idx)
}

// Summary computes the headline counts. Students, branches and recruiters
// come from the whole table; placements from the view.
func Summary(table, view *models.PlacementTable) models.SummaryCounts {
	return models.SummaryCounts{
		TotalStudents:   table.Len(),
		TotalBranches:   distinct(table.Column(models.ColumnBranch)),
		TotalRecruiters: distinct(table.Column(models.ColumnEmployer)),
		TotalPlacements: view.Len(),
	}
}

// TopBranch returns the branch with the most rows in view. Among tied
// branches the one seen first in the view wins.
func TopBranch(view *models.PlacementTable) (models.GroupCount, error) {
	counts := BranchHistogram(view)
	if counts.Empty() {
		return models.GroupCount{}, ErrEmptyView
	}
	return counts[0], nil
}

// YearHistogram counts rows per year over the table, ordered by year.
func YearHistogram(table *models.PlacementTable) models.GroupCounts {
	counts := countBy(years(table))
	sort.SliceStable(counts, func(i, j int) bool { return lessYear(counts[i].Key, counts[j].Key) })
	return counts
}

// BranchHistogram counts rows per branch, most frequent first.
func BranchHistogram(view *models.PlacementTable) models.GroupCounts {
	return byCountDesc(countBy(view.Column(models.ColumnBranch)))
}

// TopRecruiters returns at most limit employers, most placements first.
func TopRecruiters(view *models.PlacementTable, limit int) models.GroupCounts {
	counts := byCountDesc(countBy(view.Column(models.ColumnEmployer)))
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// years returns the Year column with surrounding blanks removed. Year is
// the only column normalised before comparison.
func years(table *models.PlacementTable) []string {
	values := table.Column(models.ColumnYear)
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

// countBy tallies values exactly as stored, in first-seen order.
func countBy(values []string) models.GroupCounts {
	counts := models.GroupCounts{}
	pos := make(map[string]int)
	for _, v := range values {
		if i, ok := pos[v]; ok {
			counts[i].Count++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, models.GroupCount{Key: v, Count: 1})
	}
	return counts
}

func byCountDesc(counts models.GroupCounts) models.GroupCounts {
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

func distinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// lessYear orders integer years numerically and anything else lexically.
func lessYear(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	}
	return a < b
}
