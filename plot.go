package hpi

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot renders report output as an HTML chart. It is a thin layer over
// go-plotly; the report functions never touch it.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type PlotOpt func(plot *Plot) *Plot

func NewPlot(opt ...PlotOpt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) PlotOpt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) PlotOpt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) PlotOpt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithXlabel(label string) PlotOpt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) PlotOpt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

func WithLegend(show bool) PlotOpt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

// GrowthBars adds one bar per growth row, in report order.
func (p *Plot) GrowthBars(rows []GrowthRow, color string) {
	x := make([]string, len(rows))
	y := make([]float64, len(rows))
	for ind := 0; ind < len(rows); ind++ {
		x[ind] = rows[ind].Entity
		y[ind] = rows[ind].PctChange
	}

	tr := &grob.Bar{X: x, Y: y, Marker: &grob.BarMarker{Color: color}}
	p.Fig.AddTraces(tr)
}

// PivotLines adds one line per pivot column across the pivot's years. Years
// where an entity has no entry are left out of its line rather than drawn as 0.
func (p *Plot) PivotLines(tab *PivotTable) {
	for col := 0; col < len(tab.Entities); col++ {
		var (
			x []int
			y []float64
		)
		for row := 0; row < len(tab.Years); row++ {
			if cell := tab.Cells[row][col]; cell != nil {
				x = append(x, tab.Years[row])
				y = append(y, *cell)
			}
		}

		tr := &grob.Scatter{Name: tab.Entities[col], X: x, Y: y, Mode: grob.ScatterModeLines}
		p.Fig.AddTraces(tr)
	}
}

// Save writes the chart as a self-contained HTML file.
func (p *Plot) Save(fileName string) error {
	offline.ToHtml(p.Fig, fileName)

	return nil
}
