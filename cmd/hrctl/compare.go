package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hr-assistant/internal/app"
	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
	"hr-assistant/internal/report"

	"github.com/spf13/cobra"
)

func newCompareCmd(e *env) *cobra.Command {
	var (
		countries []string
		domains   []string
		focus     map[string]string
		format    string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare employment conditions across countries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			weights, err := parseFocus(focus)
			if err != nil {
				return err
			}

			a, err := app.New(ctx, e.cfg, e.l)
			if err != nil {
				return err
			}
			defer a.Close()

			input := comparison.CompareInput{CountryIDs: countries, FocusAreas: weights}
			for _, d := range domains {
				input.Domains = append(input.Domains, model.Domain(strings.ToLower(d)))
			}
			result, err := a.Comparisons.Compare(ctx, input)
			if err != nil {
				return err
			}
			return writeDocument(e.out, result, report.ComparisonMarkdown(result), f)
		},
	}
	cmd.Flags().StringSliceVar(&countries, "countries", nil, "country ids, e.g. TW,US")
	cmd.Flags().StringSliceVar(&domains, "domains", nil, "legal,tax,insurance,cost,risk (default: all)")
	cmd.Flags().StringToStringVar(&focus, "focus", nil, "focus area weights, e.g. cost=2")
	cmd.Flags().StringVar(&format, "format", string(report.FormatJSON), "json, markdown or html")
	cmd.MarkFlagRequired("countries")
	return cmd
}

// parseFocus converts --focus area=weight pairs.
func parseFocus(kv map[string]string) (map[string]float64, error) {
	if len(kv) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(kv))
	for k, v := range kv {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("focus %s: %w", k, err)
		}
		out[k] = w
	}
	return out, nil
}

// writeDocument prints v as indented JSON or renders markdown for the other formats.
func writeDocument(w io.Writer, v any, markdown string, f report.Format) error {
	if f == report.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
	doc, err := report.Render(markdown, f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, doc)
	return err
}
