package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-dashboard/app/models"
)

var header = []string{"Name", "Year", "Branch", "Name of the Employer"}

func newTable(t *testing.T, rows ...[]string) *models.PlacementTable {
	t.Helper()
	tbl, err := models.NewPlacementTable(header, rows)
	require.NoError(t, err)
	return tbl
}

// 2020: 3 rows, 2021: 5 rows.
func scenarioTable(t *testing.T) *models.PlacementTable {
	return newTable(t,
		[]string{"Asha", "2020", "CSE", "Infosys"},
		[]string{"Ravi", "2020", "CSE", "TCS"},
		[]string{"Meena", "2020", "ECE", "Infosys"},
		[]string{"Kiran", "2021", "ECE", "Wipro"},
		[]string{"Latha", "2021", "ECE", "TCS"},
		[]string{"Arjun", "2021", "MECH", "TCS"},
		[]string{"Divya", "2021", "IT", "Accenture"},
		[]string{"Sai", "2021", "CSE", "Infosys"},
	)
}

func TestYearOptions(t *testing.T) {
	t.Run("Success: sentinel then ascending years", func(t *testing.T) {
		tbl := newTable(t,
			[]string{"a", "2021", "CSE", "X"},
			[]string{"b", "2019", "CSE", "X"},
			[]string{"c", "2021", "CSE", "X"},
			[]string{"d", "2020", "CSE", "X"},
		)
		assert.Equal(t, []string{"All", "2019", "2020", "2021"}, YearOptions(tbl))
	})

	t.Run("Success: numeric order beats lexical order", func(t *testing.T) {
		tbl := newTable(t,
			[]string{"a", "10", "CSE", "X"},
			[]string{"b", "9", "CSE", "X"},
		)
		assert.Equal(t, []string{"All", "9", "10"}, YearOptions(tbl))
	})

	t.Run("Success: empty table only offers the sentinel", func(t *testing.T) {
		assert.Equal(t, []string{"All"}, YearOptions(newTable(t)))
	})
}

func TestFilter(t *testing.T) {
	tbl := scenarioTable(t)

	t.Run("Success: All is the identity", func(t *testing.T) {
		assert.Same(t, tbl, Filter(tbl, models.AllYears))
		assert.Same(t, tbl, Filter(tbl, ""))
	})

	t.Run("Success: per-year counts add up to the table", func(t *testing.T) {
		sum := 0
		for _, y := range YearOptions(tbl)[1:] {
			view := Filter(tbl, y)
			want := 0
			for _, v := range tbl.Column(models.ColumnYear) {
				if v == y {
					want++
				}
			}
			assert.Equal(t, want, view.Len(), "year %s", y)
			for _, v := range view.Column(models.ColumnYear) {
				assert.Equal(t, y, v)
			}
			sum += view.Len()
		}
		assert.Equal(t, tbl.Len(), sum)
	})

	t.Run("Success: unknown year gives an empty view", func(t *testing.T) {
		view := Filter(tbl, "1999")
		assert.True(t, view.Empty())
		assert.Equal(t, header, view.Columns())
	})

	t.Run("Success: filtering an empty table", func(t *testing.T) {
		assert.True(t, Filter(newTable(t), "2020").Empty())
	})
}

func TestSummary(t *testing.T) {
	tbl := scenarioTable(t)

	all := Summary(tbl, Filter(tbl, models.AllYears))
	assert.Equal(t, models.SummaryCounts{
		TotalStudents: 8, TotalBranches: 4, TotalRecruiters: 4, TotalPlacements: 8,
	}, all)

	y2020 := Summary(tbl, Filter(tbl, "2020"))
	assert.Equal(t, 8, y2020.TotalStudents)
	assert.Equal(t, 4, y2020.TotalBranches)
	assert.Equal(t, 4, y2020.TotalRecruiters)
	assert.Equal(t, 3, y2020.TotalPlacements)
}

func TestTopBranch(t *testing.T) {
	tbl := scenarioTable(t)

	t.Run("Success: only the selected year counts", func(t *testing.T) {
		top, err := TopBranch(Filter(tbl, "2020"))
		require.NoError(t, err)
		assert.Equal(t, models.GroupCount{Key: "CSE", Count: 2}, top)

		top, err = TopBranch(Filter(tbl, "2021"))
		require.NoError(t, err)
		assert.Equal(t, models.GroupCount{Key: "ECE", Count: 2}, top)
	})

	t.Run("Success: tie resolves to a tied branch", func(t *testing.T) {
		view := newTable(t,
			[]string{"a", "2022", "IT", "X"},
			[]string{"b", "2022", "CSE", "X"},
		)
		top, err := TopBranch(view)
		require.NoError(t, err)
		assert.Contains(t, []string{"IT", "CSE"}, top.Key)
		assert.Equal(t, 1, top.Count)
	})

	t.Run("Error: empty view", func(t *testing.T) {
		_, err := TopBranch(Filter(tbl, "1999"))
		assert.True(t, errors.Is(err, ErrEmptyView))
	})
}

func TestHistograms(t *testing.T) {
	tbl := scenarioTable(t)

	t.Run("Success: year histogram over the whole table", func(t *testing.T) {
		assert.Equal(t, models.GroupCounts{
			{Key: "2020", Count: 3},
			{Key: "2021", Count: 5},
		}, YearHistogram(tbl))
	})

	t.Run("Success: branch histogram sums to the view", func(t *testing.T) {
		for _, y := range YearOptions(tbl) {
			view := Filter(tbl, y)
			h := BranchHistogram(view)
			assert.Equal(t, view.Len(), h.Total(), "year %s", y)
			for i := 1; i < len(h); i++ {
				assert.GreaterOrEqual(t, h[i-1].Count, h[i].Count)
			}
		}
	})

	t.Run("Success: empty view gives empty histograms", func(t *testing.T) {
		view := Filter(tbl, "1999")
		assert.True(t, BranchHistogram(view).Empty())
		assert.True(t, TopRecruiters(view, RecruiterLimit).Empty())
		assert.True(t, YearHistogram(newTable(t)).Empty())
	})
}

func TestTopRecruiters(t *testing.T) {
	t.Run("Success: sorted and limited", func(t *testing.T) {
		var rows [][]string
		// Employer i gets i+1 placements.
		for i := 0; i < 12; i++ {
			for j := 0; j <= i; j++ {
				rows = append(rows, []string{"s", "2023", "CSE", fmt.Sprintf("Employer %02d", i)})
			}
		}
		got := TopRecruiters(newTable(t, rows...), RecruiterLimit)

		require.Len(t, got, 10)
		assert.Equal(t, models.GroupCount{Key: "Employer 11", Count: 12}, got[0])
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
		}
	})

	t.Run("Success: fewer employers than the limit", func(t *testing.T) {
		got := TopRecruiters(scenarioTable(t), RecruiterLimit)
		assert.Equal(t, models.GroupCounts{
			{Key: "Infosys", Count: 3},
			{Key: "TCS", Count: 3},
			{Key: "Wipro", Count: 1},
			{Key: "Accenture", Count: 1},
		}, got)
	})
}

func TestWhitespaceHandling(t *testing.T) {
	tbl := newTable(t,
		[]string{"a", " 2020", "CSE", "X"},
		[]string{"b", "2020 ", "CSE ", "X "},
		[]string{"c", "2021", " CSE", "Y"},
	)

	t.Run("Success: padded years match the trimmed selection", func(t *testing.T) {
		view := Filter(tbl, "2020")
		assert.Equal(t, 2, view.Len())
		assert.Equal(t, []string{" 2020", "2020 "}, view.Column(models.ColumnYear))
		assert.Equal(t, []string{"All", "2020", "2021"}, YearOptions(tbl))
		assert.Equal(t, models.GroupCounts{
			{Key: "2020", Count: 2},
			{Key: "2021", Count: 1},
		}, YearHistogram(tbl))
	})

	t.Run("Success: branches and employers are counted as stored", func(t *testing.T) {
		assert.Equal(t, models.GroupCounts{
			{Key: "CSE", Count: 1},
			{Key: "CSE ", Count: 1},
			{Key: " CSE", Count: 1},
		}, BranchHistogram(tbl))

		s := Summary(tbl, tbl)
		assert.Equal(t, 3, s.TotalBranches)
		assert.Equal(t, 3, s.TotalRecruiters)
		assert.Len(t, TopRecruiters(tbl, RecruiterLimit), 3)
	})

	t.Run("Success: CSE and CSE with a trailing blank stay apart", func(t *testing.T) {
		view := Filter(tbl, "2020")
		top, err := TopBranch(view)
		require.NoError(t, err)
		assert.Equal(t, models.GroupCount{Key: "CSE", Count: 1}, top)
		assert.Len(t, BranchHistogram(view), 2)
	})
}
