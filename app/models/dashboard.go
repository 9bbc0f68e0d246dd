package models

// AllYears is the selector value meaning no year filter.
const AllYears = "All"

type SummaryCounts struct {
	TotalStudents   int `json:"totalStudents"`
	TotalBranches   int `json:"totalBranches"`
	TotalRecruiters int `json:"totalRecruiters"`
	TotalPlacements int `json:"totalPlacements"`
}

type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupCounts is an ordered key -> count mapping.
type GroupCounts []GroupCount

func (g GroupCounts) Empty() bool { return len(g) == 0 }

// Total sums every count.
func (g GroupCounts) Total() int {
	total := 0
	for _, c := range g {
		total += c.Count
	}
	return total
}

func (g GroupCounts) Keys() []string {
	keys := make([]string, len(g))
	for i, c := range g {
		keys[i] = c.Key
	}
	return keys
}

func (g GroupCounts) Counts() []int {
	counts := make([]int, len(g))
	for i, c := range g {
		counts[i] = c.Count
	}
	return counts
}

// Banner is the message shown under the metrics when a year is selected.
type Banner struct {
	Level   string `json:"level"` // success, warning, info
	Message string `json:"message"`
}

// Figure is a Plotly figure: a list of traces plus a layout.
type Figure struct {
	Data   []map[string]any `json:"data"`
	Layout map[string]any   `json:"layout"`
}

type TableView struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Dashboard is everything rendered for one year selection.
type Dashboard struct {
	SelectedYear string        `json:"selectedYear"`
	YearOptions  []string      `json:"yearOptions"`
	Summary      SummaryCounts `json:"summary"`
	TopBranch    *GroupCount   `json:"topBranch,omitempty"`
	Banner       *Banner       `json:"banner,omitempty"`

	YearHistogram   GroupCounts `json:"yearHistogram"`
	BranchHistogram GroupCounts `json:"branchHistogram"`
	TopRecruiters   GroupCounts `json:"topRecruiters"`

	YearChart      Figure  `json:"yearChart"`
	BranchPie      Figure  `json:"branchPie"`
	BranchTreemap  *Figure `json:"branchTreemap,omitempty"`
	RecruiterChart *Figure `json:"recruiterChart,omitempty"`

	TreemapMessage   string `json:"treemapMessage,omitempty"`
	RecruiterMessage string `json:"recruiterMessage,omitempty"`

	Table TableView `json:"table"`
}

// PeriodLabel is the chart title suffix for the selection.
func (d Dashboard) PeriodLabel() string {
	return PeriodLabel(d.SelectedYear)
}

func PeriodLabel(year string) string {
	if year == "" || year == AllYears {
		return "All Years"
	}
	return year
}

func (d Dashboard) YearSelected() bool {
	return d.SelectedYear != "" && d.SelectedYear != AllYears
}

// SelectionListed reports whether the selected year is one of the options.
func (d Dashboard) SelectionListed() bool {
	for _, y := range d.YearOptions {
		if y == d.SelectedYear {
			return true
		}
	}
	return false
}
