package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hr-assistant/internal/app"
	"hr-assistant/internal/model"

	"github.com/spf13/cobra"
)

func newSeedCmd(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load knowledge graph entities from a JSON array",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			entities, err := readEntities(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			db, repo, err := app.OpenKnowledge(e.cfg, e.l)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repo.UpsertEntities(cmd.Context(), entities); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "seeded %d entities\n", len(entities))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding an array of entities")
	cmd.MarkFlagRequired("file")
	return cmd
}

// readEntities decodes and validates a seed file.
func readEntities(r io.Reader) ([]model.Entity, error) {
	var entities []model.Entity
	if err := json.NewDecoder(r).Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	for i, ent := range entities {
		if ent.ID == "" || ent.Type == "" || ent.CountryID == "" {
			return nil, fmt.Errorf("entity %d: id, type and country_id are required", i)
		}
		if !ent.Type.Valid() {
			return nil, fmt.Errorf("entity %d: unknown type %q", i, ent.Type)
		}
	}
	return entities, nil
}
