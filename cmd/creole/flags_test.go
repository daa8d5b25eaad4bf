package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		f, args, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
		if f.output != "" || f.baseURL != "" || f.workers != 0 || f.showVersion {
			t.Errorf("unexpected non-default flags: %+v", f)
		}
		if f.render.xhtml || f.render.fullPage || f.render.title != "" {
			t.Errorf("unexpected non-default render flags: %+v", f.render)
		}
	})

	t.Run("all flags and positional args", func(t *testing.T) {
		t.Parallel()
		f, args, err := parseFlags([]string{
			"--output", "out",
			"--base-url", "https://wiki.example.com",
			"--workers", "4",
			"--xhtml",
			"--full-page",
			"--title", "My Wiki",
			"--css", "style.css",
			"--highlight", "go",
			"--config", "myconfig",
			"--verbose",
			"page.creole", "notes.wiki",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.output != "out" {
			t.Errorf("output = %q, want %q", f.output, "out")
		}
		if f.baseURL != "https://wiki.example.com" {
			t.Errorf("baseURL = %q", f.baseURL)
		}
		if f.workers != 4 {
			t.Errorf("workers = %d, want 4", f.workers)
		}
		if !f.render.xhtml || !f.render.fullPage {
			t.Errorf("render booleans not set: %+v", f.render)
		}
		if f.render.title != "My Wiki" || f.render.cssPath != "style.css" || f.render.highlight != "go" {
			t.Errorf("render strings = %+v", f.render)
		}
		if f.common.config != "myconfig" || !f.common.verbose || f.common.quiet {
			t.Errorf("common flags = %+v", f.common)
		}
		if len(args) != 2 || args[0] != "page.creole" || args[1] != "notes.wiki" {
			t.Errorf("args = %v, want [page.creole notes.wiki]", args)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseFlags([]string{"-o", "dir", "-w", "2", "-q"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.output != "dir" || f.workers != 2 || !f.common.quiet {
			t.Errorf("shorthand flags not applied: %+v", f)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseFlags([]string{"--bogus"})
		if err == nil {
			t.Error("parseFlags() expected error for unknown flag")
		}
	})
}
