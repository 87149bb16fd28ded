package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"
)

func serve_index_gen(g *gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		_, sconfig, charts, version := g.snapshot()
		refresh := int(sconfig.autorefresh_period.Seconds())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `
<html>
  <head>
    <meta http-equiv="refresh" content="%d">
  </head>
  <body>
`, refresh)
		indent := `    `
		for n, c := range charts {
			fmt.Fprintln(w, indent, "<div>")
			fmt.Fprintln(
				w,
				indent, "<pre>", n, ": ",
				html.EscapeString(c.name), " (", c.kind, ")</pre>")
			fmt.Fprintf(
				w,
				`%s<img src="/chart?name=%s&v=%d">`,
				indent,
				c.name, version)
			fmt.Fprintln(w)
			fmt.Fprintln(w, indent, "</div>")
		}
		fmt.Fprintf(w, `
    <hr>
    <pre>lilchart</pre>
    <pre>%s (autorefresh @ %d sec)</pre>
  </body>
</html>
`, time.Now().Format(time.RFC3339), refresh)
	}
}

func serve_parse_side(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return config_parse_side(v)
}

func serve_chart_gen(g *gallery, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		v := req.URL.Query()
		name := v.Get("name")
		if name == "" {
			logger.Warn("serve_chart: chart name missing")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "missing chart name")
			return
		}
		if !is_chart_name_valid(name) {
			logger.Warn("serve_chart: chart name invalid", "name", name)
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "bad chart name")
			return
		}

		common, _, charts, _ := g.snapshot()
		def := chart_find(charts, name)
		if def == nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(w, "no such chart")
			return
		}

		width, err := serve_parse_side(v.Get("width"), common.width)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "bad width")
			return
		}
		height, err := serve_parse_side(v.Get("height"), common.height)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "bad height")
			return
		}
		format := common.format
		if f := v.Get("format"); f != "" {
			format = f
		}
		mimetype, ok := MIMETYPES[format]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "bad format")
			return
		}

		index := 0
		for n, c := range charts {
			if c == def {
				index = n
			}
		}
		b, err := chart_generate(def, index, common, width, height, format, logger)
		if err != nil {
			logger.Error("serve_chart: chart generation failed", "name", name, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintln(w, "chart generation failed")
			return
		}
		gb := b.Bytes()
		w.Header().Set("Content-Type", mimetype)
		w.Header().Set("Content-Length", strconv.Itoa(len(gb)))
		w.WriteHeader(http.StatusOK)
		w.Write(gb)
	}
}

func serve_mux(g *gallery, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", serve_index_gen(g))
	mux.HandleFunc("/chart", serve_chart_gen(g, logger))
	return mux
}

func serve(p *params_serve, logger *slog.Logger) error {
	common, sconfig, charts, err := gallery_load(p.config_path)
	if err != nil {
		return err
	}
	if p.addr != "" {
		sconfig.listen_addr = p.addr
	}
	if err := protect_serve(p.config_path); err != nil {
		return fmt.Errorf("cannot protect serve: %w", err)
	}
	g := gallery_new(common, sconfig, charts)

	ctx, cf := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cf()

	if err := gallery_watch(ctx, p.config_path, g, logger.With("module", "watch")); err != nil {
		logger.Warn("configuration will not be reloaded", "err", err)
	}

	srv := &http.Server{
		Addr:              sconfig.listen_addr,
		Handler:           serve_mux(g, logger.With("module", "serve")),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		logger.Info("got SIGINT, shutting down")
		sctx, scf := context.WithTimeout(context.Background(), 5*time.Second)
		defer scf()
		srv.Shutdown(sctx)
	}()

	logger.Info("listening", "addr", sconfig.listen_addr, "charts", len(charts))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
