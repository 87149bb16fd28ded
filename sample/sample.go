// Package sample generates datasets for demos and tests.
//
// Every dataset is a pure function of the generator's seed and the index
// asked for, so the same index always yields the same data.
package sample

import (
	"math"
	"math/rand"

	"github.com/susji/lilchart/layout"
)

var (
	Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	Months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	seriesTitles = []string{"Steps", "Sleep", "Running", "Cycling", "Swimming", "Heart rate"}
	itemLabels   = []string{"Rent", "Food", "Transport", "Fun", "Savings", "Health", "Gifts"}
	units        = []string{"EUR", "km", "kcal", "h"}
)

type Generator struct {
	Seed int64
}

func New(seed int64) *Generator {
	return &Generator{Seed: seed}
}

func (g *Generator) rand(index int) *rand.Rand {
	return rand.New(rand.NewSource(g.Seed + int64(index)*7919))
}

// Title returns the series title belonging to index.
func (g *Generator) Title(index int) string {
	return seriesTitles[index%len(seriesTitles)]
}

// Weekly is one week of steps in thousands.
func Weekly() *layout.LinearData {
	return layout.NewLinearData(Weekdays, layout.MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6))
}

// Linear returns nseries series over the given X labels with values
// between 0 and top, rounded to halves.
func (g *Generator) Linear(index, nseries int, xLabels []string, top float64) *layout.LinearData {
	r := g.rand(index)
	series := make([]*layout.Series, nseries)
	for i := range series {
		values := make([]float64, len(xLabels))
		for k := range values {
			values[k] = math.Round(r.Float64()*top*2) / 2
		}
		series[i] = layout.MustSeries(g.Title(index+i), values...)
	}
	return layout.NewLinearData(xLabels, series...)
}

// List returns n items with values from 1 to 1000.
func (g *Generator) List(index, n int) *layout.ListData {
	r := g.rand(index)
	items := make([]layout.Item, n)
	for i := range items {
		items[i] = layout.Item{
			Label: itemLabels[(index+i)%len(itemLabels)],
			Value: float64(1 + r.Intn(1000)),
		}
	}
	return layout.NewListData(units[index%len(units)], items...)
}

// Target returns a target between 1000 and 10000 that is achieved by 0
// to 120 percent.
func (g *Generator) Target(index int) *layout.TargetData {
	r := g.rand(index)
	target := float64(1000 + r.Intn(9001))
	achieved := math.Round(target * r.Float64() * 1.2)
	return layout.NewTargetData(target, achieved, units[index%len(units)])
}
