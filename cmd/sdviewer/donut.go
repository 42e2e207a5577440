package main

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
)

// donutSplit is the two-group partition of the record set by the legendary
// flag. Wedge angles are proportional to the counts.
type donutSplit struct {
	Legendary int
	Ordinary  int
}

func splitByLegendary(records []dataset.Record) donutSplit {
	var s donutSplit
	for i := range records {
		if records[i].Legendary {
			s.Legendary++
		} else {
			s.Ordinary++
		}
	}
	return s
}

// Angles returns each wedge's angle in radians. They always sum to a full
// circle when the set is non-empty.
func (s donutSplit) Angles() (legendary, ordinary float64) {
	total := s.Legendary + s.Ordinary
	if total == 0 {
		return 0, 0
	}
	legendary = 2 * math.Pi * float64(s.Legendary) / float64(total)
	ordinary = 2 * math.Pi * float64(s.Ordinary) / float64(total)
	return legendary, ordinary
}

// donutValues builds the two labelled wedges with the fixed two-color
// mapping. Zero-count wedges are kept so the label census stays complete.
func donutValues(s donutSplit) []chart.Value {
	return []chart.Value{
		{
			Value: float64(s.Ordinary),
			Label: fmt.Sprintf("Ordinary (%d)", s.Ordinary),
			Style: chart.Style{FillColor: dataset.OrdinaryColor, FontColor: chart.ColorWhite},
		},
		{
			Value: float64(s.Legendary),
			Label: fmt.Sprintf("Legendary (%d)", s.Legendary),
			Style: chart.Style{FillColor: dataset.LegendaryColor, FontColor: chart.ColorWhite},
		},
	}
}

// renderDonutChart draws the legendary/ordinary split. The view is static:
// it never participates in selection, filtering or highlighting.
func renderDonutChart(state *uiState, w, h int) image.Image {
	if len(state.records) == 0 {
		return blank(w, h)
	}
	ch := chart.DonutChart{
		Title:  "Legendary Split",
		Width:  w,
		Height: h,
		Values: donutValues(splitByLegendary(state.records)),
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[viewer] donut render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[viewer] donut decode error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return img
}
