package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldtek/quotetrack/internal/restore"
)

func exportCmd() *cobra.Command {
	var outPath string
	var projectID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the xlsx project list, or one project's card with --project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := restore.NewClient(serverURL, apiKey)

			path := "/api/projects/export"
			if projectID != "" {
				path = "/api/projects/" + projectID + "/export"
			}

			raw, err := client.Download(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if outPath == "" {
				outPath = "projects.xlsx"
				if projectID != "" {
					outPath = "project_" + projectID + ".xlsx"
				}
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(raw))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	cmd.Flags().StringVar(&projectID, "project", "", "export a single project's card")
	return cmd
}
