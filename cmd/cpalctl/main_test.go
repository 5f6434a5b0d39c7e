package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/cpalctl/internal/cpal"
	"github.com/danmuck/cpalctl/internal/testutil/testlog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestEncodeThenDecode(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "palette.toml")
	bin := filepath.Join(dir, "cpal.bin")

	if err := run([]string{"template", "-kind", "palette", "-output", src}, nil); err != nil {
		t.Fatalf("template: %v", err)
	}
	if err := run([]string{"encode", "-in", src, "-out", bin}, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := run([]string{"encode", "-in", src, "-out", bin}, nil); err == nil {
		t.Fatalf("expected encode to refuse overwriting without -force")
	}

	data, err := os.ReadFile(bin)
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	tbl, err := cpal.Decode(data, 0)
	if err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if tbl.NumPalettes() != 2 || tbl.NumPaletteEntries != 3 || len(tbl.ColorRecords) != 5 {
		t.Fatalf("unexpected table: %+v", tbl)
	}

	var out bytes.Buffer
	if err := run([]string{"decode", "-in", bin, "-strict"}, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{"num_palette_entries = 3", "#ff0000ff", "derived_palettes"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("decode output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDecodeWarnsWhenPaletteSizeWillBeInferred(t *testing.T) {
	testlog.Start(t)
	var logs bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() { log.Logger = prev })

	// num_palette_entries = 0 over a pool of one record
	table := []byte{0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 14, 0, 0, 3, 2, 1, 4}
	bin := filepath.Join(t.TempDir(), "zero.bin")
	if err := os.WriteFile(bin, table, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := run([]string{"decode", "-in", bin}, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(logs.String(), "num_palette_entries is 0") {
		t.Fatalf("expected inference warning, got %s", logs.String())
	}
	if !strings.Contains(out.String(), "0 is inferred as len(colors) on encode") {
		t.Fatalf("expected dump comment, got:\n%s", out.String())
	}
}

func TestDecodeReportsTruncation(t *testing.T) {
	testlog.Start(t)
	bin := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(bin, []byte{0, 0, 0}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := run([]string{"decode", "-in", bin}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "truncated") {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestValidateServerTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "server.toml")
	if err := run([]string{"template", "-kind", "server", "-output", path}, nil); err != nil {
		t.Fatalf("template: %v", err)
	}
	if err := run([]string{"validate", "-input", path}, nil); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run(nil, nil); err == nil {
		t.Fatalf("expected missing command error")
	}
	if err := run([]string{"explode"}, nil); err == nil {
		t.Fatalf("expected unknown command error")
	}
}
