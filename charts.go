package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/susji/lilchart/layout"
)

func is_chart_name_valid(name string) bool {
	return RE_NAME.MatchString(name)
}

func validate_charts(charts []*chart_def) error {
	in_err := false
	seen := map[string]bool{}
	for n, c := range charts {
		slog.Debug("validating chart", "n", n+1, "of", len(charts), "name", c.name)
		if !is_chart_name_valid(c.name) {
			slog.Error("chart name is not valid", "name", c.name)
			in_err = true
		}
		if seen[c.name] {
			slog.Error("chart name is not unique", "name", c.name)
			in_err = true
		}
		seen[c.name] = true
	}
	if in_err {
		return errors.New("one or more charts did not validate")
	}
	return nil
}

func chart_find(charts []*chart_def, name string) *chart_def {
	for _, cur := range charts {
		if cur.name == name {
			return cur
		}
	}
	return nil
}

// data_split splits "title: v1 v2; other: v3" into its titled parts.
func data_split(data string) ([][2]string, error) {
	ret := [][2]string{}
	for n, part := range strings.Split(data, DATA_DELIM) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		split := strings.SplitN(part, ":", 2)
		if len(split) != 2 {
			return nil, fmt.Errorf("data part %d has no title: %q", n+1, part)
		}
		ret = append(ret, [2]string{strings.TrimSpace(split[0]), strings.TrimSpace(split[1])})
	}
	if len(ret) == 0 {
		return nil, errors.New("no data")
	}
	return ret, nil
}

func data_parse_values(raw string) ([]float64, error) {
	ret := []float64{}
	for _, field := range strings.Fields(raw) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func data_parse_series(data string) ([]*layout.Series, error) {
	parts, err := data_split(data)
	if err != nil {
		return nil, err
	}
	ret := []*layout.Series{}
	for _, part := range parts {
		values, err := data_parse_values(part[1])
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", part[0], err)
		}
		s, err := layout.NewSeries(part[0], values...)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}

func data_parse_items(data string) ([]layout.Item, error) {
	parts, err := data_split(data)
	if err != nil {
		return nil, err
	}
	ret := []layout.Item{}
	for _, part := range parts {
		v, err := strconv.ParseFloat(part[1], 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", part[0], err)
		}
		ret = append(ret, layout.Item{Label: part[0], Value: v})
	}
	return ret, nil
}

// data_parse_target reads "achieved: N; target: M" in either order.
func data_parse_target(data string) (target, achieved float64, err error) {
	items, err := data_parse_items(data)
	if err != nil {
		return 0, 0, err
	}
	got := 0
	for _, it := range items {
		switch strings.ToLower(it.Label) {
		case "target":
			target = it.Value
			got |= 1
		case "achieved":
			achieved = it.Value
			got |= 2
		default:
			return 0, 0, fmt.Errorf("unknown target data item: %q", it.Label)
		}
	}
	if got != 3 {
		return 0, 0, errors.New("target data needs both target and achieved")
	}
	return target, achieved, nil
}
