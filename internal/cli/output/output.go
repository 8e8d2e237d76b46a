// Package output renders CLI results — the DCMA panel, critical-path
// lists, query results — in whichever Mode the caller's configuration or
// --output flag selected.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	gojson "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
)

// Mode selects a rendering format.
type Mode string

const (
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeMarkdown Mode = "markdown"
)

// Renderer writes styled or machine-readable output to out, and
// diagnostics/errors to errw.
type Renderer struct {
	out  io.Writer
	errw io.Writer
	mode Mode

	styleOK   lipgloss.Style
	styleWarn lipgloss.Style
	styleBad  lipgloss.Style
}

// NewRenderer builds a Renderer. color enables ANSI styling; pass false
// (e.g. when output isn't a terminal) to render plain text.
func NewRenderer(out, errw io.Writer, mode Mode, color bool) *Renderer {
	r := &Renderer{out: out, errw: errw, mode: mode}
	if color && !termenv.EnvNoColor() {
		r.styleOK = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		r.styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		r.styleBad = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
	return r
}

// Mode reports the renderer's configured output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Table renders a header/rows grid: a styled box in text mode, a GFM table
// in markdown mode, or an array-of-objects in JSON mode.
func (r *Renderer) Table(headers []string, rows [][]string) error {
	switch r.mode {
	case ModeJSON:
		return r.encodeTableJSON(headers, rows)
	case ModeMarkdown:
		return r.renderTable(headers, rows, table.StyleLight, true)
	default:
		return r.renderTable(headers, rows, table.StyleRounded, false)
	}
}

func (r *Renderer) renderTable(headers []string, rows [][]string, style table.Style, markdown bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(style)

	hdr := make(table.Row, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	t.AppendHeader(hdr)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	if markdown {
		_, err := fmt.Fprintln(r.out, t.RenderMarkdown())
		return err
	}
	t.Render()
	return nil
}

func (r *Renderer) encodeTableJSON(headers []string, rows [][]string) error {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		out = append(out, obj)
	}
	enc := gojson.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// JSON encodes v to the output stream regardless of Mode — used by
// commands whose result has no natural tabular shape.
func (r *Renderer) JSON(v any) error {
	enc := gojson.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Success and Warning print a one-line status message to the output
// stream, styled in text mode and plain otherwise. Bad prints to the error
// stream and is styled in every mode when color is enabled.
func (r *Renderer) Success(format string, args ...any) {
	r.printStyled(r.styleOK, format, args...)
}

func (r *Renderer) Warning(format string, args ...any) {
	r.printStyled(r.styleWarn, format, args...)
}

func (r *Renderer) Bad(format string, args ...any) {
	fmt.Fprintln(r.errw, r.styleBad.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) printStyled(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.mode != ModeText {
		fmt.Fprintln(r.out, msg)
		return
	}
	fmt.Fprintln(r.out, style.Render(msg))
}
