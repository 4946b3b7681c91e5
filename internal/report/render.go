// Package report turns integer-property results into typed records and
// writes them as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by NewRenderer for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Styler decorates verdict words. The zero value leaves text untouched.
type Styler struct {
	enabled bool
	yes     lipgloss.Style
	no      lipgloss.Style
	title   lipgloss.Style
}

// NewStyler returns a Styler rendering for w. When color is false the
// styler is a no-op; otherwise lipgloss picks the color profile of w.
func NewStyler(w io.Writer, color bool) Styler {
	if !color {
		return Styler{}
	}
	r := lipgloss.NewRenderer(w)

	return Styler{
		enabled: true,
		yes:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		no:      r.NewStyle().Foreground(lipgloss.Color("203")),
		title:   r.NewStyle().Bold(true),
	}
}

// Yes styles a positive verdict.
func (s Styler) Yes(text string) string { return s.apply(s.yes, text) }

// No styles a negative verdict.
func (s Styler) No(text string) string { return s.apply(s.no, text) }

// Title styles a heading.
func (s Styler) Title(text string) string { return s.apply(s.title, text) }

func (s Styler) apply(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}

// Renderer writes records to an output stream in a fixed format.
type Renderer struct {
	w       io.Writer
	format  string
	style   Styler
	yamlEnc *yaml.Encoder
}

// NewRenderer returns a Renderer for format ("text", "json" or "yaml").
// Color only affects the text format.
func NewRenderer(w io.Writer, format string, color bool) (*Renderer, error) {
	format = strings.ToLower(format)
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Renderer{w: w, format: format, style: NewStyler(w, color && format == FormatText)}, nil
}

// Format reports the renderer's output format.
func (r *Renderer) Format() string { return r.format }

// Render writes one record. In JSON mode each record is one line; in YAML
// mode records are separated by document markers and Close must be called
// once all records are written.
func (r *Renderer) Render(rec Record) error {
	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.w).Encode(rec)
	case FormatYAML:
		if r.yamlEnc == nil {
			r.yamlEnc = yaml.NewEncoder(r.w)
			r.yamlEnc.SetIndent(2)
		}
		if err := r.yamlEnc.Encode(rec); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	default:
		for _, line := range rec.Lines(r.style) {
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return err
			}
		}

		return nil
	}
}

// RenderAll writes records in order and stops at the first error.
func (r *Renderer) RenderAll(recs ...Record) error {
	for _, rec := range recs {
		if err := r.Render(rec); err != nil {
			return err
		}
	}

	return nil
}

// Blank writes an empty separator line in text mode and nothing otherwise.
func (r *Renderer) Blank() error {
	if r.format != FormatText {
		return nil
	}
	_, err := fmt.Fprintln(r.w)

	return err
}

// Text writes a free-form message in text mode only. Structured formats
// skip it so their output stays parseable.
func (r *Renderer) Text(msg string) error {
	if r.format != FormatText {
		return nil
	}
	_, err := fmt.Fprintln(r.w, msg)

	return err
}

// Close flushes a pending YAML stream. It is a no-op for other formats and
// safe to call more than once.
func (r *Renderer) Close() error {
	if r.yamlEnc == nil {
		return nil
	}
	err := r.yamlEnc.Close()
	r.yamlEnc = nil

	return err
}
