// Package inspect prints store snapshots for humans.
package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-store/store"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultStyle is the chroma style used when Options.Style is empty.
const DefaultStyle = "monokai"

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown format")

// Options control Render.
type Options struct {
	Format string
	Style  string
	Color  bool
}

// Report is the document Render writes.
type Report struct {
	State          store.State `json:"state" yaml:"state"`
	CounterSquared int         `json:"counterSquared" yaml:"counterSquared"`
	LastAction     string      `json:"lastAction,omitempty" yaml:"lastAction,omitempty"`
	LastMutationID string      `json:"lastMutationId,omitempty" yaml:"lastMutationId,omitempty"`
}

// NewReport captures the current state of s.
func NewReport(s *store.Store) Report {
	r := Report{
		State:          s.State().Snapshot(),
		CounterSquared: s.CounterSquared(),
	}
	if m, ok := s.LastMutation(); ok {
		r.LastAction = m.Action.String()
		r.LastMutationID = m.ID.String()
	}
	return r
}

// Encode serializes r in the requested format.
func Encode(r Report, format string) ([]byte, error) {
	switch normalizeFormat(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
}

// Render writes r to w, highlighted for a 256-color terminal when
// opts.Color is set.
func Render(w io.Writer, r Report, opts Options) error {
	data, err := Encode(r, opts.Format)
	if err != nil {
		return err
	}
	if !opts.Color {
		_, err := w.Write(data)
		return err
	}
	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(w, string(data), normalizeFormat(opts.Format), "terminal256", style); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

func normalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", FormatJSON:
		return FormatJSON
	case FormatYAML, "yml":
		return FormatYAML
	default:
		return f
	}
}
