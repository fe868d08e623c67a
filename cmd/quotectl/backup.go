package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldtek/quotetrack/internal/restore"
)

func backupCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Download the full snapshot to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := restore.NewClient(serverURL, apiKey)

			snapshot, err := client.Backup(cmd.Context())
			if err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			raw, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				fmt.Println(string(raw))
				return nil
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return err
			}

			fmt.Printf("Wrote %d projects to %s\n", len(snapshot), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
