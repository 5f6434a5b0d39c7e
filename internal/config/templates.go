package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "palette":
		return paletteTemplate, nil
	case "palettes":
		return palettesTemplate, nil
	case "server":
		return serverTemplate, nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const paletteTemplate = `# Two overlapping palettes of three colors over a pool of five.
version = 0
num_palette_entries = 3
color_record_indices = [0, 2]
colors = [
  "#000000ff",
  "#ffffffff",
  "#ff0000ff",
  "#00ff00ff",
  "#0000ffff",
]
`

const palettesTemplate = `# Palettes are pooled; repeated runs of colors are stored once.
version = 0
palettes = [
  ["#1b1b1b", "#f5f5f5", "#e63946"],
  ["#f5f5f5", "#e63946", "#457b9d"],
  ["#1b1b1b", "#f5f5f5", "#e63946"],
]
`

const serverTemplate = `name = "cpalctl"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
max_table_bytes = 1048576
`
