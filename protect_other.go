//go:build !openbsd

package main

func protect_serve(path_config string) error {
	return nil
}

func protect_render(path_output string) error {
	return nil
}
