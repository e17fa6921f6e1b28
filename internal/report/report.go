// Package report renders comparisons and strategies as Markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format is the rendering requested by the HTTP layer and the CLI.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat maps a query value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders Markdown with GitHub tables.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// ContentType is the HTTP media type for f.
func ContentType(f Format) string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Render produces the document for f from the Markdown source.
func Render(markdown string, f Format) (string, error) {
	if f == FormatHTML {
		return HTML(markdown)
	}
	return markdown, nil
}

type table struct {
	b *strings.Builder
}

func newTable(b *strings.Builder, headers ...string) table {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	return table{b: b}
}

func (t table) row(cells ...string) {
	for i, c := range cells {
		cells[i] = escape(c)
	}
	t.b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func sortedCountries(cs []string) []string {
	return slices.Sorted(slices.Values(cs))
}
