package main

import (
	"image/color"
	"regexp"
	"time"
)

const (
	FLAG_CONFIG_PATH    = "config-path"
	DEFAULT_CONFIG_PATH = "/etc/lilchart/lilchart.ini"
	HELP_CONFIG_PATH    = "Filepath to lilchart gallery configuration file"

	FLAG_LOG_LEVEL    = "log-level"
	DEFAULT_LOG_LEVEL = "info"
	HELP_LOG_LEVEL    = "Logging level: debug, info, warn or error"

	FLAG_OUTPUT_DIR = "output-dir"
	HELP_OUTPUT_DIR = "Directory to write charts into, overrides configuration"

	FLAG_ADDR    = "addr"
	DEFAULT_ADDR = "localhost:15525"
	HELP_ADDR    = "Address to listen at, overrides configuration"

	FLAG_SEED    = "seed"
	DEFAULT_SEED = 1
	HELP_SEED    = "Seed for the sample data generator"

	FLAG_FORMAT = "format"
	HELP_FORMAT = "Output format, svg or png"
)

const (
	DEFAULT_OUTPUT_DIR     = "."
	DEFAULT_CHART_WIDTH    = 360
	DEFAULT_CHART_HEIGHT   = 200
	DEFAULT_CHART_FORMAT   = "svg"
	DEFAULT_REFRESH_PERIOD = 2 * time.Minute
	MAX_CHART_SIDE         = 4096
	CONFIG_DELIM           = "|"
	OPTION_DELIM           = ","
	DATA_DELIM             = ";"
)

const (
	CHART_LINE     = "line"
	CHART_GRADIENT = "gradient"
	CHART_BAR      = "bar"
	CHART_DONUT    = "donut"
	CHART_RING     = "ring"
	CHART_TARGET   = "target"
)

// DATA_SAMPLE in place of chart data asks for generated sample data.
const DATA_SAMPLE = "sample"

var (
	COLOR_BG = color.RGBA{255, 255, 255, 255}

	MIMETYPES = map[string]string{
		"svg": "image/svg+xml",
		"png": "image/png",
	}
)

var (
	RE_NAME = regexp.MustCompile("^[_a-zA-Z0-9]{1,512}$")
)
