package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/chart"
	"github.com/susji/lilchart/layout"
	"github.com/susji/lilchart/sample"
)

func numbered_labels(n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = strconv.Itoa(i + 1)
	}
	return ret
}

func chart_linear_data(def *chart_def, gen *sample.Generator, index int) (*layout.LinearData, error) {
	var d *layout.LinearData
	x := def.options.x_labels
	if def.data == DATA_SAMPLE {
		if len(x) == 0 {
			x = sample.Weekdays
		}
		top := 10.0
		if len(def.options.y_categories) > 0 {
			top = float64(len(def.options.y_categories) - 1)
		}
		d = gen.Linear(index, 1, x, top)
	} else {
		series, err := data_parse_series(def.data)
		if err != nil {
			return nil, err
		}
		if len(x) == 0 {
			x = numbered_labels(layout.NewLinearData(nil, series...).MaxSeriesSize())
		}
		d = layout.NewLinearData(x, series...)
	}
	if def.options.y_labels > 0 {
		d.NumOfYLabels = def.options.y_labels
	}
	d.YCategories = def.options.y_categories
	switch {
	case def.options.kilo:
		d.Format = layout.KiloTicks
	case def.options.kibi:
		d.Format = layout.KibiTicks
	}
	return d, nil
}

func chart_list_data(def *chart_def, gen *sample.Generator, index int) (*layout.ListData, error) {
	if def.data == DATA_SAMPLE {
		return gen.List(index, 4), nil
	}
	items, err := data_parse_items(def.data)
	if err != nil {
		return nil, err
	}
	return layout.NewListData(def.options.unit, items...), nil
}

func chart_target_data(def *chart_def, gen *sample.Generator, index int) (*layout.TargetData, error) {
	if def.data == DATA_SAMPLE {
		return gen.Target(index), nil
	}
	target, achieved, err := data_parse_target(def.data)
	if err != nil {
		return nil, err
	}
	return layout.NewTargetData(target, achieved, def.options.unit), nil
}

// chart_build creates a fresh chart for def. Data is parsed again on
// every call so that no two renders share positions.
func chart_build(def *chart_def, gen *sample.Generator, index int, logger *slog.Logger) (chart.Renderer, error) {
	switch def.kind {
	case CHART_LINE, CHART_GRADIENT, CHART_BAR:
		d, err := chart_linear_data(def, gen, index)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.name, err)
		}
		var ch *chart.LinearChart
		switch def.kind {
		case CHART_LINE:
			ch = chart.NewLineChart(def.name, d)
		case CHART_GRADIENT:
			ch = chart.NewGradientChart(def.name, d)
			if def.options.emoji {
				ch.Plot = chart.GradientPlot{StrokeWidth: chart.DefaultStrokeWidth, EmojiLabels: true}
			}
		case CHART_BAR:
			ch = chart.NewBarChart(def.name, d)
		}
		ch.Labels = chart.AxisLabels{Gridlines: def.options.grid}
		if def.options.legend {
			ch.Legend = chart.SeriesLegend{}
		}
		ch.Logger = logger
		return ch, nil
	case CHART_DONUT, CHART_RING:
		d, err := chart_list_data(def, gen, index)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.name, err)
		}
		ch := chart.NewDonutChart(def.name, d)
		if def.kind == CHART_RING {
			ch = chart.NewRingChart(def.name, d)
		}
		if def.options.legend {
			ch.Legend = chart.ValueLegend{}
		}
		ch.Logger = logger
		return ch, nil
	case CHART_TARGET:
		d, err := chart_target_data(def, gen, index)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.name, err)
		}
		ch := chart.NewTargetChart(def.name, d)
		if def.options.legend {
			ch.Legend = chart.ValueLegend{}
		}
		ch.Logger = logger
		return ch, nil
	}
	return nil, fmt.Errorf("%s: unknown chart kind: %q", def.name, def.kind)
}

func chart_render(r chart.Renderer, width, height int, format string, w io.Writer) error {
	c, err := canvas.NewFormatted(float64(width), float64(height), format)
	if err != nil {
		return err
	}
	c.Fill(COLOR_BG)
	if err := r.Render(c, layout.Size{Width: float64(width), Height: float64(height)}); err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

// chart_generate builds and renders def into a buffer, so that nothing is
// written out for a chart that fails.
func chart_generate(def *chart_def, index int, common *config_common, width, height int, format string,
	logger *slog.Logger) (*bytes.Buffer, error) {

	t0 := time.Now()
	r, err := chart_build(def, sample.New(common.seed), index, logger)
	if err != nil {
		return nil, err
	}
	b := &bytes.Buffer{}
	if err := chart_render(r, width, height, format, b); err != nil {
		return nil, err
	}
	logger.Debug("chart generated", "name", def.name, "took", time.Since(t0), "bytes", b.Len())
	return b, nil
}

func gallery_render(charts []*chart_def, common *config_common, logger *slog.Logger) error {
	if err := os.MkdirAll(common.output_dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	in_err := false
	for n, def := range charts {
		b, err := chart_generate(def, n, common, common.width, common.height, common.format, logger)
		if err != nil {
			logger.Error("rendering chart failed", "name", def.name, "err", err)
			in_err = true
			continue
		}
		path := filepath.Join(common.output_dir, def.name+"."+common.format)
		if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
			logger.Error("writing chart failed", "path", path, "err", err)
			in_err = true
			continue
		}
		logger.Info("chart written", "path", path)
	}
	if in_err {
		return errors.New("one or more charts failed")
	}
	return nil
}

func gallery_new(common *config_common, serve *config_serve, charts []*chart_def) *gallery {
	return &gallery{common: common, serve: serve, charts: charts}
}

func (g *gallery) snapshot() (*config_common, *config_serve, []*chart_def, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.common, g.serve, g.charts, g.version
}

func (g *gallery) replace(common *config_common, serve *config_serve, charts []*chart_def) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.common = common
	g.serve = serve
	g.charts = charts
	g.version++
}

// gallery_load reads every section the gallery needs from the file at
// path.
func gallery_load(path string) (*config_common, *config_serve, []*chart_def, error) {
	c, err := config_load_file(path)
	if err != nil {
		return nil, nil, nil, err
	}
	common, err := c.parse_common()
	if err != nil {
		return nil, nil, nil, err
	}
	serve, err := c.parse_serve()
	if err != nil {
		return nil, nil, nil, err
	}
	charts, err := c.parse_charts()
	if err != nil {
		return nil, nil, nil, err
	}
	return common, serve, charts, nil
}

// sample_gallery defines one chart of every kind on generated data.
func sample_gallery() []*chart_def {
	return []*chart_def{
		{name: "sample_line", kind: CHART_LINE, data: DATA_SAMPLE, options: chart_options{grid: true}},
		{name: "sample_gradient", kind: CHART_GRADIENT, data: DATA_SAMPLE, options: chart_options{grid: true}},
		{name: "sample_bar", kind: CHART_BAR, data: DATA_SAMPLE, options: chart_options{legend: true}},
		{name: "sample_donut", kind: CHART_DONUT, data: DATA_SAMPLE, options: chart_options{legend: true}},
		{name: "sample_ring", kind: CHART_RING, data: DATA_SAMPLE},
		{name: "sample_target", kind: CHART_TARGET, data: DATA_SAMPLE},
	}
}
