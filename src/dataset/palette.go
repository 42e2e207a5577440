package dataset

import (
	"sort"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// typeColorCycle is the fixed color wheel assigned to primary types in sorted
// order. Wraps around if the dataset has more types than entries.
var typeColorCycle = []drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	{R: 0xae, G: 0xc7, B: 0xe8, A: 0xff},
	{R: 0xff, G: 0xbb, B: 0x78, A: 0xff},
	{R: 0x98, G: 0xdf, B: 0x8a, A: 0xff},
	{R: 0xff, G: 0x98, B: 0x96, A: 0xff},
	{R: 0xc5, G: 0xb0, B: 0xd5, A: 0xff},
	{R: 0xc4, G: 0x9c, B: 0x94, A: 0xff},
	{R: 0xf7, G: 0xb6, B: 0xd2, A: 0xff},
	{R: 0xc7, G: 0xc7, B: 0xc7, A: 0xff},
	{R: 0xdb, G: 0xdb, B: 0x8d, A: 0xff},
	{R: 0x9e, G: 0xda, B: 0xe5, A: 0xff},
}

// fallbackColor is used for types outside the palette domain (should not
// happen when the palette was built from the same record set).
var fallbackColor = drawing.Color{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

// Two-color mapping for the legendary donut split.
var (
	LegendaryColor = drawing.Color{R: 0xf2, G: 0x8e, B: 0x2c, A: 0xff}
	OrdinaryColor  = drawing.Color{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff}
)

// Palette is the immutable mapping from primary type to display color. Its
// domain is the sorted set of distinct types observed at build time.
type Palette struct {
	order  []string
	colors map[string]drawing.Color
}

// BuildPalette derives the palette from the full record set. Same input set
// always yields the same mapping.
func BuildPalette(records []Record) *Palette {
	seen := map[string]struct{}{}
	for i := range records {
		seen[records[i].PrimaryType] = struct{}{}
	}
	order := make([]string, 0, len(seen))
	for t := range seen {
		order = append(order, t)
	}
	sort.Strings(order)
	colors := make(map[string]drawing.Color, len(order))
	for i, t := range order {
		colors[t] = typeColorCycle[i%len(typeColorCycle)]
	}
	return &Palette{order: order, colors: colors}
}

// Color returns the display color for a primary type.
func (p *Palette) Color(primaryType string) drawing.Color {
	if c, ok := p.colors[primaryType]; ok {
		return c
	}
	return fallbackColor
}

// Types returns the palette domain in sorted order.
func (p *Palette) Types() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of types in the domain.
func (p *Palette) Len() int { return len(p.order) }
