package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-dashboard/app/models"
)

func TestBuildDashboard(t *testing.T) {
	tbl := scenarioTable(t)

	t.Run("Success: All years", func(t *testing.T) {
		d := BuildDashboard(tbl, models.AllYears)

		assert.Equal(t, "All", d.SelectedYear)
		assert.Equal(t, []string{"All", "2020", "2021"}, d.YearOptions)
		assert.Equal(t, 8, d.Summary.TotalPlacements)
		assert.Equal(t, models.GroupCounts{{Key: "2020", Count: 3}, {Key: "2021", Count: 5}}, d.YearHistogram)
		assert.Nil(t, d.TopBranch)
		assert.Nil(t, d.Banner)
		assert.NotNil(t, d.BranchTreemap)
		assert.NotNil(t, d.RecruiterChart)
		assert.Len(t, d.Table.Rows, 8)
	})

	t.Run("Success: empty selection defaults to All", func(t *testing.T) {
		d := BuildDashboard(tbl, "  ")
		assert.Equal(t, models.AllYears, d.SelectedYear)
		assert.False(t, d.YearSelected())
	})

	t.Run("Success: a single year", func(t *testing.T) {
		d := BuildDashboard(tbl, "2020")

		assert.Equal(t, 3, d.Summary.TotalPlacements)
		assert.Equal(t, 8, d.Summary.TotalStudents)
		require.NotNil(t, d.TopBranch)
		assert.Equal(t, models.GroupCount{Key: "CSE", Count: 2}, *d.TopBranch)
		require.NotNil(t, d.Banner)
		assert.Equal(t, "success", d.Banner.Level)
		assert.Contains(t, d.Banner.Message, "CSE")
		assert.Contains(t, d.Banner.Message, "2020")
		// The year chart always shows every year.
		assert.Equal(t, 8, d.YearHistogram.Total())
		assert.Equal(t, 3, d.BranchHistogram.Total())
		assert.Len(t, d.Table.Rows, 3)
	})

	t.Run("Success: year without rows", func(t *testing.T) {
		d := BuildDashboard(tbl, "1999")

		assert.Equal(t, 0, d.Summary.TotalPlacements)
		assert.Nil(t, d.TopBranch)
		require.NotNil(t, d.Banner)
		assert.Equal(t, "warning", d.Banner.Level)
		assert.Nil(t, d.BranchTreemap)
		assert.Nil(t, d.RecruiterChart)
		assert.NotEmpty(t, d.TreemapMessage)
		assert.NotEmpty(t, d.RecruiterMessage)
		assert.Empty(t, d.Table.Rows)
		assert.Equal(t, header, d.Table.Columns)
	})

	t.Run("Success: empty table", func(t *testing.T) {
		d := BuildDashboard(newTable(t), models.AllYears)

		assert.Equal(t, models.SummaryCounts{}, d.Summary)
		assert.True(t, d.YearHistogram.Empty())
		assert.Nil(t, d.BranchTreemap)
		assert.Nil(t, d.RecruiterChart)
	})
}
