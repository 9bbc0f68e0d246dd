package service

import (
	"strconv"

	"placement-dashboard/app/models"
)

const transparent = "rgba(0,0,0,0)"

// Plotly's qualitative Pastel palette.
var pastel = []string{
	"rgb(102, 197, 204)", "rgb(246, 207, 113)", "rgb(248, 156, 116)",
	"rgb(220, 176, 242)", "rgb(135, 197, 95)", "rgb(158, 185, 243)",
	"rgb(254, 136, 177)", "rgb(201, 219, 116)", "rgb(139, 224, 164)",
	"rgb(180, 151, 231)", "rgb(179, 179, 179)",
}

// YearChart is the bar chart of placements per year, coloured by year.
func YearChart(counts models.GroupCounts) models.Figure {
	keys := counts.Keys()
	colors := make([]float64, len(keys))
	for i, k := range keys {
		if y, err := strconv.ParseFloat(k, 64); err == nil {
			colors[i] = y
		} else {
			colors[i] = float64(i)
		}
	}

	return models.Figure{
		Data: []map[string]any{{
			"type": "bar",
			"x":    keys,
			"y":    counts.Counts(),
			"marker": map[string]any{
				"color":      colors,
				"colorscale": "Viridis",
				"showscale":  true,
			},
			"hovertemplate": "Year: %{x}<br>Number of Placements: %{y}<extra></extra>",
		}},
		Layout: transparentLayout(map[string]any{
			"title": map[string]any{"text": "📊 Year-wise Placement Count"},
			"xaxis": map[string]any{"title": map[string]any{"text": "Year"}, "type": "category"},
			"yaxis": map[string]any{"title": map[string]any{"text": "Number of Placements"}},
		}),
	}
}

// BranchPie is the share of placements per branch.
func BranchPie(counts models.GroupCounts, year string) models.Figure {
	colors := make([]string, len(counts))
	for i := range colors {
		colors[i] = pastel[i%len(pastel)]
	}
	return models.Figure{
		Data: []map[string]any{{
			"type":   "pie",
			"labels": counts.Keys(),
			"values": counts.Counts(),
			"marker": map[string]any{"colors": colors},
			"sort":   false,
		}},
		Layout: transparentLayout(map[string]any{
			"title": map[string]any{"text": "🧭 Branch-wise Distribution (" + models.PeriodLabel(year) + ")"},
		}),
	}
}

// BranchTreemap is a single level treemap of branches sized and coloured by
// placement count.
func BranchTreemap(counts models.GroupCounts, year string) models.Figure {
	parents := make([]string, len(counts))
	return models.Figure{
		Data: []map[string]any{{
			"type":    "treemap",
			"labels":  counts.Keys(),
			"parents": parents,
			"values":  counts.Counts(),
			"marker": map[string]any{
				"colors":     counts.Counts(),
				"colorscale": "Sunset",
				"showscale":  true,
				"line":       map[string]any{"color": "white", "width": 2},
			},
			"textinfo":      "label+value",
			"hovertemplate": "<b>%{label}</b><br>Placements: %{value}<extra></extra>",
		}},
		Layout: transparentLayout(map[string]any{
			"title":  map[string]any{"text": "🌿 Branch-wise Placement Treemap (" + models.PeriodLabel(year) + ")"},
			"margin": map[string]any{"t": 50, "l": 10, "r": 10, "b": 10},
			"font":   map[string]any{"color": "black", "size": 14},
		}),
	}
}

// RecruiterChart is the bar chart of the busiest recruiters.
func RecruiterChart(counts models.GroupCounts, year string) models.Figure {
	if len(counts) > RecruiterLimit {
		counts = counts[:RecruiterLimit]
	}
	return models.Figure{
		Data: []map[string]any{{
			"type": "bar",
			"x":    counts.Keys(),
			"y":    counts.Counts(),
			"marker": map[string]any{
				"color":      counts.Counts(),
				"colorscale": "Sunsetdark",
				"showscale":  true,
			},
			"hovertemplate": "Recruiter: %{x}<br>Placements: %{y}<extra></extra>",
		}},
		Layout: transparentLayout(map[string]any{
			"title": map[string]any{"text": "Top 10 Recruiters (" + models.PeriodLabel(year) + ")"},
			"xaxis": map[string]any{"title": map[string]any{"text": "Recruiter"}},
			"yaxis": map[string]any{"title": map[string]any{"text": "Placements"}},
		}),
	}
}

func transparentLayout(layout map[string]any) map[string]any {
	layout["paper_bgcolor"] = transparent
	layout["plot_bgcolor"] = transparent
	return layout
}
