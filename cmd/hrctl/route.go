package main

import (
	"fmt"

	"hr-assistant/internal/modelregistry"
	registryUC "hr-assistant/internal/modelregistry/usecase"
	"hr-assistant/internal/router"

	"github.com/spf13/cobra"
)

func newRouteCmd(e *env) *cobra.Command {
	var query, task string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the model variant a query would be routed to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs, variants, def, err := modelregistry.ConfigsFromConfig(e.cfg.Models)
			if err != nil {
				return err
			}
			// Routing only reads the capability table, so no handles are built.
			registry := registryUC.New(modelregistry.Options{Configs: configs, Variants: variants, Default: def}, e.l)
			r := router.New(registry, router.Options{}, e.l)

			id := r.Route(cmd.Context(), router.RouteInput{Query: query, TaskType: task})
			fmt.Fprintf(e.out, "model: %s\n", id)
			if features, err := router.ExtractFeatures(query, task); err == nil {
				fmt.Fprintf(e.out, "features: %+v\n", features)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "query text")
	cmd.Flags().StringVar(&task, "task", "general", "task type")
	cmd.MarkFlagRequired("query")
	return cmd
}
