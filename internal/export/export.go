// Package export renders a review collection for line-mode output and export files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/reviews/internal/model"
)

// Format selects an output representation.
type Format string

const (
	FormatPanel Format = "panel"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Options tune panel output.
type Options struct {
	Group bool // group panel output by sentiment
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPanel, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatPanel, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want panel, table, json or yaml)", s)
}

// FormatForPath picks the file format from the extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("cannot infer export format from %q (use .json, .yaml or .yml)", path)
}

// Write renders items to w.
func Write(w io.Writer, items []model.Item, f Format, opt Options) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(items))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(items)); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(items))
		return err
	default:
		writePanel(w, items, opt)
		return nil
	}
}

// WriteFile saves items to path in the format implied by its extension.
func WriteFile(path string, items []model.Item) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	var b strings.Builder
	if err := Write(&b, items, f, Options{}); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func nonNil(items []model.Item) []model.Item {
	if items == nil {
		return []model.Item{}
	}
	return items
}
