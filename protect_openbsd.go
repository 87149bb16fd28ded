//go:build openbsd

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	promises_serve     = "inet stdio rpath tmppath"
	promises_render    = "stdio rpath wpath cpath tmppath"
	execpromises       = ""
	unveilflags_config = "r"
	unveilflags_output = "rwc"
	unveilflags_tmp    = "rwc"
)

func unveil(path, flags string) error {
	slog.Debug("unveil", "path", path, "flags", flags)
	return unix.Unveil(path, flags)
}

func pledge(promises string) error {
	slog.Debug("pledge", "promises", promises, "execpromises", execpromises)
	return unix.Pledge(promises, execpromises)
}

// protect_serve limits serve to reading its configuration directory and
// the temp directory.
func protect_serve(path_config string) error {
	if err := unveil(filepath.Dir(path_config), unveilflags_config); err != nil {
		return err
	}
	if err := unveil(os.TempDir(), unveilflags_tmp); err != nil {
		return err
	}
	if err := unix.UnveilBlock(); err != nil {
		return err
	}
	return pledge(promises_serve)
}

func protect_render(path_output string) error {
	if err := os.MkdirAll(path_output, 0o755); err != nil {
		return err
	}
	if err := unveil(path_output, unveilflags_output); err != nil {
		return err
	}
	if err := unveil(os.TempDir(), unveilflags_tmp); err != nil {
		return err
	}
	if err := unix.UnveilBlock(); err != nil {
		return err
	}
	return pledge(promises_render)
}
