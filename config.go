package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/susji/tinyini"
)

func config_load(r io.Reader) (*config, error) {
	sections, errs := tinyini.Parse(r)
	if len(errs) != 0 {
		slog.Error("errors when reading configuration file")
		for n, err := range errs {
			slog.Error("configuration", "n", n+1, "err", err)
		}
		return nil, errors.New("invalid configuration file")
	}
	ret := &config{
		sections: map[string]map[string][]config_pair{},
	}
	for name, section := range sections {
		ret.sections[name] = map[string][]config_pair{}
		for k, pairs := range section {
			for _, pair := range pairs {
				ret.sections[name][k] = append(ret.sections[name][k], config_pair{
					value:  pair.Value,
					lineno: int(pair.Lineno),
				})
			}
		}
	}
	return ret, nil
}

func config_load_file(filepath string) (*config, error) {
	slog.Debug("attempting to read settings", "path", filepath)
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot open configuration file for reading: %w", err)
	}
	defer f.Close()
	c, err := config_load(f)
	if err != nil {
		return nil, fmt.Errorf("unable to handle configuration file %q: %w", filepath, err)
	}
	return c, nil
}

func config_parse_words(value string) []string {
	return strings.Fields(value)
}

func config_parse_chart_options(options string) (chart_options, []error) {
	ret := chart_options{}
	errs := []error{}
	for _, option := range strings.Split(strings.TrimSpace(options), OPTION_DELIM) {
		split := strings.SplitN(option, "=", 2)
		key := strings.TrimSpace(strings.ToLower(split[0]))

		if len(key) == 0 {
			continue
		}

		var value string
		if len(split) == 2 {
			value = strings.TrimSpace(split[1])
		}

		switch key {
		case "kibi":
			ret.kibi = true
		case "kilo":
			ret.kilo = true
		case "grid":
			ret.grid = true
		case "legend":
			ret.legend = true
		case "emoji":
			ret.emoji = true
		case "unit":
			ret.unit = value
		case "y_labels":
			val, err := strconv.Atoi(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("bad y_labels value: %w", err))
			}
			ret.y_labels = val
		case "x":
			ret.x_labels = config_parse_words(value)
		case "y":
			ret.y_categories = config_parse_words(value)
		default:
			errs = append(errs, fmt.Errorf("unrecognized chart option: %s", key))
		}
	}
	if ret.kilo && ret.kibi {
		errs = append(errs, errors.New("kilo and kibi are mutually exclusive"))
	}
	return ret, errs
}

func config_parse_chart_line(line string) (*chart_def, error) {
	vals := strings.SplitN(line, CONFIG_DELIM, 4)
	if len(vals) < 4 {
		return nil, fmt.Errorf(
			"line does not contain four %s-separated values, got %d",
			CONFIG_DELIM, len(vals))
	}
	options, errs := config_parse_chart_options(vals[2])
	if len(errs) > 0 {
		return nil, fmt.Errorf(
			"%s: invalid chart options: %v", vals[0], errs)
	}

	kind := strings.TrimSpace(strings.ToLower(vals[1]))
	switch kind {
	case CHART_LINE, CHART_GRADIENT, CHART_BAR, CHART_DONUT, CHART_RING, CHART_TARGET:
	default:
		return nil, fmt.Errorf("%s: unknown chart kind: %q", vals[0], vals[1])
	}

	return &chart_def{
		name:    strings.TrimSpace(vals[0]),
		kind:    kind,
		options: options,
		data:    strings.TrimSpace(vals[3]),
	}, nil
}

func (c *config) parse_charts() ([]*chart_def, error) {
	charts := []*chart_def{}
	in_err := false
	for k, pairs := range c.sections["charts"] {
		for _, pair := range pairs {
			switch k {
			case "chart":
				def, err := config_parse_chart_line(pair.value)
				if err != nil {
					slog.Error("parsing chart line failed", "line", pair.lineno, "err", err)
					in_err = true
					continue
				}
				charts = append(charts, def)
			default:
				slog.Error(
					"charts section supports only 'chart' definitions",
					"line", pair.lineno, "key", k)
				in_err = true
			}
		}
	}

	if err := validate_charts(charts); err != nil {
		return nil, err
	}
	if in_err {
		return nil, errors.New("charts section contained errors")
	}
	return charts, nil
}

func (c *config) parse_common() (*config_common, error) {
	ret := &config_common{
		output_dir: DEFAULT_OUTPUT_DIR,
		format:     DEFAULT_CHART_FORMAT,
		width:      DEFAULT_CHART_WIDTH,
		height:     DEFAULT_CHART_HEIGHT,
		seed:       DEFAULT_SEED,
	}

	in_err := false

	for k, pairs := range c.sections[""] {
		for _, pair := range pairs {
			var err error
			switch k {
			case "output_dir":
				ret.output_dir = pair.value
			case "format":
				ret.format = strings.ToLower(pair.value)
				if _, ok := MIMETYPES[ret.format]; !ok {
					err = fmt.Errorf("unsupported format %q", pair.value)
				}
			case "width":
				ret.width, err = config_parse_side(pair.value)
			case "height":
				ret.height, err = config_parse_side(pair.value)
			case "seed":
				ret.seed, err = strconv.ParseInt(pair.value, 10, 64)
			default:
				err = fmt.Errorf("%d: unrecognized config item: %s",
					pair.lineno, k)
			}
			if err != nil {
				slog.Error("invalid value", "key", k, "err", err)
				in_err = true
			}
		}
	}
	if in_err {
		return nil, errors.New("errors in common section")
	}
	return ret, nil
}

func config_parse_side(value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err == nil && (v < 1 || v > MAX_CHART_SIDE) {
		err = fmt.Errorf("must be within [1, %d]", MAX_CHART_SIDE)
	}
	return v, err
}

func (c *config) parse_serve() (*config_serve, error) {
	ret := &config_serve{
		listen_addr:        DEFAULT_ADDR,
		autorefresh_period: DEFAULT_REFRESH_PERIOD,
	}

	in_err := false

	for k, pairs := range c.sections["serve"] {
		for _, pair := range pairs {
			var err error
			switch k {
			case "listen_addr":
				ret.listen_addr = pair.value
			case "autorefresh_period":
				ret.autorefresh_period, err = time.ParseDuration(pair.value)
				if err == nil && ret.autorefresh_period < time.Second {
					err = errors.New("must be at least 1 second")
				}
			default:
				err = fmt.Errorf(
					"%d: unrecognized config item: %s",
					pair.lineno, k)
			}
			if err != nil {
				slog.Error("invalid value", "key", k, "err", err)
				in_err = true
			}
		}
	}
	if in_err {
		return nil, errors.New("parsing serve config failed")
	}

	return ret, nil
}
