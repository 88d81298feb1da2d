// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package printer renders command results as tables, JSON or YAML.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/pflag"
)

type OutputFormat string

const (
	// every format must be handled by Print()
	Table       OutputFormat = "table"
	PrettyJSON  OutputFormat = "json"
	CompactJSON OutputFormat = "compact-json"
	YAML        OutputFormat = "yaml"
)

var _ pflag.Value = (*OutputFormat)(nil)

// FormatsHelp describes every format, one per line, for flag usage.
func FormatsHelp() string {
	return strings.Join([]string{
		Table.ToString() + ": human readable table (default)",
		PrettyJSON.ToString() + ": indented JSON",
		CompactJSON.ToString() + ": JSON on a single line",
		YAML.ToString() + ": YAML",
	}, "\n")
}

func (o OutputFormat) ToString() string {
	return string(o)
}
func (o *OutputFormat) String() string {
	return string(*o)
}
func (o *OutputFormat) Set(v string) error {
	var err error
	*o, err = FormatAs(v)
	return err
}
func (o *OutputFormat) Type() string {
	return "format"
}

// FormatAs parses s. The empty string is the table format.
func FormatAs(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return Table, nil
	case "json", "pretty-json", "prettyjson":
		return PrettyJSON, nil
	case "compact-json", "compactjson":
		return CompactJSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Table, fmt.Errorf("invalid output format %q: must be one of: table, json, compact-json, yaml", s)
	}
}

// Print writes data to out in the given format. Table output uses the
// value's own table when it implements Tabler.
func Print(out io.Writer, data any, format OutputFormat) error {
	switch format {
	case Table:
		return PrintTable(out, data)
	case PrettyJSON:
		return PrintPrettyJSON(out, data)
	case CompactJSON:
		return PrintJSON(out, data)
	case YAML:
		return PrintYAML(out, data)
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}

func PrintJSON(out io.Writer, data any) error {
	return printJSON(out, data, json.Marshal)
}

func PrintPrettyJSON(out io.Writer, data any) error {
	return printJSON(out, data, func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
}

func printJSON(out io.Writer, data any, marshal func(any) ([]byte, error)) error {
	if data == nil {
		return nil
	}
	dataByte, err := marshal(data)
	if err != nil {
		return fmt.Errorf("error converting to json: %w", err)
	}
	_, err = fmt.Fprintln(out, string(dataByte))
	return err
}

// PrintYAML honors json struct tags, so YAML and JSON keys match.
func PrintYAML(out io.Writer, data any) error {
	if data == nil {
		return nil
	}
	dataByte, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("error converting to yaml: %w", err)
	}
	_, err = out.Write(dataByte)
	return err
}
