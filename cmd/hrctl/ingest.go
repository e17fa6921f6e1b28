package main

import (
	"fmt"
	"os"

	"hr-assistant/internal/app"
	"hr-assistant/internal/rag"

	"github.com/spf13/cobra"
)

func newIngestCmd(e *env) *cobra.Command {
	var file, source, docType string
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Chunk a text document and upsert it into the vector store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			text, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			if source == "" {
				source = file
			}

			a, err := app.New(ctx, e.cfg, e.l)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.RAG.Ingest(ctx, rag.IngestInput{Text: string(text), Source: source, DocType: docType})
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "ingested %s: %d chunks\n", source, out.Chunks)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "document to ingest")
	cmd.Flags().StringVar(&source, "source", "", "source name stored with every chunk (default: file path)")
	cmd.Flags().StringVar(&docType, "type", rag.DefaultDocType, "document type")
	cmd.MarkFlagRequired("file")
	return cmd
}
