package main

import (
	"sync"
	"time"
)

type params_common struct {
	config_path string
	log_level   string
}

type params_render struct {
	params_common
	output_dir string
	format     string
}

type params_serve struct {
	params_common
	addr string
}

type params_sample struct {
	params_common
	output_dir string
	format     string
	seed       int64
}

type config_pair struct {
	value  string
	lineno int
}

type config struct {
	sections map[string]map[string][]config_pair
}

type config_common struct {
	output_dir string
	format     string
	width      int
	height     int
	seed       int64
}

type config_serve struct {
	listen_addr        string
	autorefresh_period time.Duration
}

type chart_options struct {
	y_labels     int
	kilo         bool
	kibi         bool
	grid         bool
	legend       bool
	emoji        bool
	unit         string
	x_labels     []string
	y_categories []string
}

type chart_def struct {
	name    string
	kind    string
	options chart_options
	data    string
}

// gallery is the set of charts currently being served. Definitions are
// swapped as a whole when the configuration changes.
type gallery struct {
	mu      sync.RWMutex
	common  *config_common
	serve   *config_serve
	charts  []*chart_def
	version int
}
