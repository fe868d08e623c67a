package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldtek/quotetrack/internal/importer"
	"github.com/goldtek/quotetrack/internal/restore"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <sheet.xlsx>",
		Short: "Import projects from a labelled spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			items, err := importer.Parse(f)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no project rows found in %s", args[0])
			}

			if dryRun {
				for _, p := range items {
					fmt.Printf("%s  %s / %s  (%s)\n", p.ID, p.Name, p.Client, p.Status)
				}
				fmt.Printf("%d projects parsed; nothing uploaded\n", len(items))
				return nil
			}

			client := restore.NewClient(serverURL, apiKey)
			result, err := client.BulkRestore(cmd.Context(), items)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}

			fmt.Printf("Imported %d projects (%d failed)\n", result.Count, result.FailCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without uploading")
	return cmd
}
