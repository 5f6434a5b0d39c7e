package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/cpalctl/internal/config"
	"github.com/danmuck/cpalctl/internal/cpal"
	"github.com/danmuck/cpalctl/internal/observability"
	"github.com/danmuck/cpalctl/internal/server"
	"github.com/rs/zerolog/log"
)

func runDecode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	input := fs.String("in", "", "binary CPAL table to decode")
	offset := fs.Int("offset", 0, "byte offset of the table within the input")
	strict := fs.Bool("strict", false, "reject tables whose palettes run past the color pool")
	output := fs.String("out", "", "palette source output path (defaults to stdout)")
	withPalettes := fs.Bool("palettes", true, "include the derived palettes in the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("decode: -in is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	tbl, err := cpal.Decode(data, *offset)
	if err == nil && *strict {
		err = tbl.Validate()
	}
	observability.RecordCodec(observability.OpDecode, len(data)-*offset, err)
	if err != nil {
		return fmt.Errorf("decode %s: %w", *input, err)
	}
	if tbl.NumPaletteEntries == 0 && len(tbl.ColorRecords) > 0 {
		log.Warn().
			Str("path", *input).
			Int("color_records", len(tbl.ColorRecords)).
			Msg("num_palette_entries is 0; encoding the dump infers len(colors) instead")
	}
	if verr := tbl.Validate(); verr != nil && !*strict {
		log.Warn().Err(verr).Str("path", *input).Msg("table decoded leniently")
	}
	log.Info().
		Str("path", *input).
		Int("palettes", tbl.NumPalettes()).
		Int("color_records", len(tbl.ColorRecords)).
		Msg("decoded CPAL table")

	var buf bytes.Buffer
	if err := config.WriteSource(&buf, tbl, *withPalettes); err != nil {
		return err
	}
	if *output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(*output, buf.Bytes(), 0o644)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	input := fs.String("in", "", "palette source (TOML)")
	output := fs.String("out", "", "binary CPAL table output path")
	force := fs.Bool("force", false, "overwrite an existing output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" || *output == "" {
		return fmt.Errorf("encode: -in and -out are required")
	}
	if !*force {
		if _, err := os.Stat(*output); err == nil {
			return fmt.Errorf("encode: output already exists: %s", *output)
		}
	}

	req, err := config.LoadSource(*input)
	if err != nil {
		return err
	}
	data, err := cpal.Marshal(req)
	observability.RecordCodec(observability.OpEncode, len(data), err)
	if err != nil {
		return fmt.Errorf("encode %s: %w", *input, err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	log.Info().
		Str("path", *output).
		Int("bytes", len(data)).
		Int("palettes", max(len(req.ColorRecordIndices), 1)).
		Msg("encoded CPAL table")
	return nil
}

func runTemplate(args []string) error {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	kind := fs.String("kind", "palette", "template kind: palette|palettes|server")
	output := fs.String("output", "", "output path (defaults to <kind>.toml)")
	force := fs.Bool("force", false, "overwrite existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	target := *output
	if target == "" {
		target = *kind + ".toml"
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		return err
	}
	log.Info().Str("kind", *kind).Str("path", target).Msg("wrote template")
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	input := fs.String("input", "server.toml", "server config path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := config.LoadServerConfig(*input); err != nil {
		return err
	}
	log.Info().Str("path", *input).Msg("validated server config")
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "server config path (defaults are used when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg := config.DefaultServerConfig()
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded server config")
	}
	return server.New(cfg).Serve()
}
