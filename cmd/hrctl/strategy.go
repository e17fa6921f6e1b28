package main

import (
	"strconv"

	"hr-assistant/internal/app"
	"hr-assistant/internal/report"
	"hr-assistant/internal/strategy"

	"github.com/spf13/cobra"
)

func newStrategyCmd(e *env) *cobra.Command {
	var (
		company      string
		countries    []string
		requirements map[string]string
		focus        map[string]string
		format       string
	)
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Generate an employment strategy for a company",
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

			result, err := a.Strategies.Generate(ctx, strategy.GenerateInput{
				CompanyName:     company,
				TargetCountries: countries,
				Requirements:    parseRequirements(requirements),
				FocusAreas:      weights,
			})
			if err != nil {
				return err
			}
			return writeDocument(e.out, result, report.StrategyMarkdown(result), f)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringSliceVar(&countries, "countries", nil, "target country ids, e.g. TW,US")
	cmd.Flags().StringToStringVar(&requirements, "requirements", nil, "requirements as key=value pairs")
	cmd.Flags().StringToStringVar(&focus, "focus", nil, "focus area weights, e.g. cost=2")
	cmd.Flags().StringVar(&format, "format", string(report.FormatJSON), "json, markdown or html")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("countries")
	return cmd
}

// parseRequirements keeps numbers and booleans typed so they fingerprint the
// same way as JSON requests do.
func parseRequirements(kv map[string]string) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	out := make(map[string]any, len(kv))
	for k, v := range kv {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			out[k] = n
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			out[k] = b
			continue
		}
		out[k] = v
	}
	return out
}
