package sample

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for index := 0; index < 5; index++ {
		t.Run(fmt.Sprintf("%d_linear", index), func(t *testing.T) {
			da := a.Linear(index, 2, Weekdays, 10)
			db := b.Linear(index, 2, Weekdays, 10)
			for i := range da.Series {
				if !reflect.DeepEqual(da.Series[i].Values(), db.Series[i].Values()) {
					t.Error("series differ:", da.Series[i].Values(), db.Series[i].Values())
				}
				if da.Series[i].Title != db.Series[i].Title {
					t.Error("titles differ:", da.Series[i].Title, db.Series[i].Title)
				}
			}
		})
		t.Run(fmt.Sprintf("%d_list", index), func(t *testing.T) {
			if !reflect.DeepEqual(a.List(index, 4).Items(), b.List(index, 4).Items()) {
				t.Error("items differ")
			}
		})
	}
}

func TestRanges(t *testing.T) {
	g := New(1)
	d := g.Linear(3, 3, Months, 20)
	if len(d.Series) != 3 || len(d.XAxisLabels) != 12 {
		t.Fatal("wrong shape:", len(d.Series), len(d.XAxisLabels))
	}
	for _, s := range d.Series {
		if s.Min < 0 || s.Max > 20 {
			t.Error("values out of range:", s.Values())
		}
	}
	for _, it := range g.List(0, 7).Items() {
		if it.Value < 1 || it.Value > 1000 {
			t.Error("item out of range:", it)
		}
	}
	td := g.Target(2)
	if td.Target < 1000 || td.Target > 10000 || td.Achieved < 0 || td.Achieved > td.Target*1.2 {
		t.Error("target out of range:", td.Target, td.Achieved)
	}
}

func TestTitlesCycle(t *testing.T) {
	g := New(0)
	if g.Title(0) != g.Title(len(seriesTitles)) {
		t.Error("titles do not cycle")
	}
	if g.Title(0) == g.Title(1) {
		t.Error("neighbouring titles are equal")
	}
}

func TestWeekly(t *testing.T) {
	d := Weekly()
	want := []float64{6, 5, 4, 6, 7.5, 7, 6}
	if !reflect.DeepEqual(d.Series[0].Values(), want) {
		t.Error("wrong weekly values:", d.Series[0].Values())
	}
}
