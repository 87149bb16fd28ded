package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
)

func make_sure_not_root() {
	if syscall.Geteuid() == 0 && os.Getenv("LILCHART_PERMIT_ROOT") != "live_dangerously" {
		slog.Error("This program will not run as root.")
		os.Exit(20)
	}
}

func log_level_parse(level string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(level)))
	return l, err
}

func logger_setup(level string) *slog.Logger {
	l, err := log_level_parse(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad log level %q, using info\n", level)
		l = slog.LevelInfo
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      l,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)
	return logger
}

func render(p *params_render, logger *slog.Logger) error {
	common, _, charts, err := gallery_load(p.config_path)
	if err != nil {
		return err
	}
	if p.output_dir != "" {
		common.output_dir = p.output_dir
	}
	if p.format != "" {
		common.format = p.format
	}
	if _, ok := MIMETYPES[common.format]; !ok {
		return fmt.Errorf("unsupported format %q", common.format)
	}
	if err := protect_render(common.output_dir); err != nil {
		return fmt.Errorf("cannot protect render: %w", err)
	}
	return gallery_render(charts, common, logger)
}

func render_samples(p *params_sample, logger *slog.Logger) error {
	common := &config_common{
		output_dir: p.output_dir,
		format:     p.format,
		width:      DEFAULT_CHART_WIDTH,
		height:     DEFAULT_CHART_HEIGHT,
		seed:       p.seed,
	}
	if _, ok := MIMETYPES[common.format]; !ok {
		return fmt.Errorf("unsupported format %q", common.format)
	}
	if err := protect_render(common.output_dir); err != nil {
		return fmt.Errorf("cannot protect render: %w", err)
	}
	return gallery_render(sample_gallery(), common, logger)
}

func main() {
	var p_render params_render
	var p_serve params_serve
	var p_sample params_sample

	if len(os.Args) <= 1 {
		fmt.Printf("usage: %s [subcommand]\n", filepath.Base(os.Args[0]))
		fmt.Println("subcommand is either `render', `serve', `sample', or `help'.")
		os.Exit(1)
	}

	cmd_render := flag.NewFlagSet("render", flag.ExitOnError)
	cmd_render.StringVar(&p_render.config_path, FLAG_CONFIG_PATH, DEFAULT_CONFIG_PATH, HELP_CONFIG_PATH)
	cmd_render.StringVar(&p_render.log_level, FLAG_LOG_LEVEL, DEFAULT_LOG_LEVEL, HELP_LOG_LEVEL)
	cmd_render.StringVar(&p_render.output_dir, FLAG_OUTPUT_DIR, "", HELP_OUTPUT_DIR)
	cmd_render.StringVar(&p_render.format, FLAG_FORMAT, "", HELP_FORMAT)

	cmd_serve := flag.NewFlagSet("serve", flag.ExitOnError)
	cmd_serve.StringVar(&p_serve.config_path, FLAG_CONFIG_PATH, DEFAULT_CONFIG_PATH, HELP_CONFIG_PATH)
	cmd_serve.StringVar(&p_serve.log_level, FLAG_LOG_LEVEL, DEFAULT_LOG_LEVEL, HELP_LOG_LEVEL)
	cmd_serve.StringVar(&p_serve.addr, FLAG_ADDR, "", HELP_ADDR)

	cmd_sample := flag.NewFlagSet("sample", flag.ExitOnError)
	cmd_sample.StringVar(&p_sample.log_level, FLAG_LOG_LEVEL, DEFAULT_LOG_LEVEL, HELP_LOG_LEVEL)
	cmd_sample.StringVar(&p_sample.output_dir, FLAG_OUTPUT_DIR, DEFAULT_OUTPUT_DIR, HELP_OUTPUT_DIR)
	cmd_sample.StringVar(&p_sample.format, FLAG_FORMAT, DEFAULT_CHART_FORMAT, HELP_FORMAT)
	cmd_sample.Int64Var(&p_sample.seed, FLAG_SEED, DEFAULT_SEED, HELP_SEED)

	var err error
	switch os.Args[1] {
	case "render":
		cmd_render.Parse(os.Args[2:])
		make_sure_not_root()
		err = render(&p_render, logger_setup(p_render.log_level))
	case "serve":
		cmd_serve.Parse(os.Args[2:])
		make_sure_not_root()
		err = serve(&p_serve, logger_setup(p_serve.log_level))
	case "sample":
		cmd_sample.Parse(os.Args[2:])
		make_sure_not_root()
		err = render_samples(&p_sample, logger_setup(p_sample.log_level))
	case "help":
		fmt.Println("The subcommands are:")
		fmt.Println()
		fmt.Println("    render           render the configured charts into files")
		fmt.Println("    serve            display the configured charts via HTTP")
		fmt.Println("    sample           render one chart of every kind on sample data")
		fmt.Println("    help             show this help")
		fmt.Println()
		os.Exit(0)
	default:
		fmt.Println("unknown subcommand: ", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		slog.Error("failed", "subcommand", os.Args[1], "err", err)
		os.Exit(3)
	}
}
