// Package output renders CLI command results as tables, JSON, or YAML.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Format selects how command output is rendered.
type Format string

const (
	// FormatTable renders a human-readable table (the default).
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a --output flag value to a Format. An empty string
// means the table default; "yml" is accepted as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
}

func (f Format) String() string {
	return string(f)
}

// Printer writes status lines (success, error, warning) with optional
// ANSI color. Structured data goes through PrintJSON/PrintYAML/PrintTable
// instead.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer. The format argument is accepted for
// call-site symmetry with the data printers but only color matters here.
func NewPrinter(out io.Writer, _ Format, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) statusLine(code, msg string) {
	if p.color {
		_, _ = fmt.Fprintf(p.out, "\033[%sm%s\033[0m\n", code, msg)
		return
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

// Success prints msg in green when color is enabled.
func (p *Printer) Success(msg string) {
	p.statusLine("32", msg)
}

// Error prints msg in red when color is enabled.
func (p *Printer) Error(msg string) {
	p.statusLine("31", msg)
}

// Warning prints msg in yellow when color is enabled.
func (p *Printer) Warning(msg string) {
	p.statusLine("33", msg)
}
