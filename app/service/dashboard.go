package service

import (
	"fmt"
	"strings"

	"placement-dashboard/app/models"
)

// BuildDashboard runs filter, aggregation and rendering for one selection.
func BuildDashboard(table *models.PlacementTable, selection string) models.Dashboard {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		selection = models.AllYears
	}

	view := Filter(table, selection)
	d := models.Dashboard{
		SelectedYear:    selection,
		YearOptions:     YearOptions(table),
		Summary:         Summary(table, view),
		YearHistogram:   YearHistogram(table),
		BranchHistogram: BranchHistogram(view),
		TopRecruiters:   TopRecruiters(view, RecruiterLimit),
		Table:           models.TableView{Columns: view.Columns(), Rows: view.Rows()},
	}

	if d.YearSelected() {
		top, err := TopBranch(view)
		if err != nil {
			d.Banner = &models.Banner{Level: "warning", Message: "No data available for the selected year."}
		} else {
			d.TopBranch = &top
			d.Banner = &models.Banner{
				Level: "success",
				Message: fmt.Sprintf("🎓 %s achieved the highest placements in %s with %d students.",
					top.Key, selection, top.Count),
			}
		}
	}

	d.YearChart = YearChart(d.YearHistogram)
	d.BranchPie = BranchPie(d.BranchHistogram, selection)

	if d.BranchHistogram.Empty() {
		d.TreemapMessage = "No treemap available for the selected year."
	} else {
		tm := BranchTreemap(d.BranchHistogram, selection)
		d.BranchTreemap = &tm
	}

	if d.TopRecruiters.Empty() {
		d.RecruiterMessage = "No recruiter data available for the selected year."
	} else {
		rc := RecruiterChart(d.TopRecruiters, selection)
		d.RecruiterChart = &rc
	}

	return d
}
