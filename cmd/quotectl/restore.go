package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/restore"
	"github.com/goldtek/quotetrack/internal/types"
)

func restoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <snapshot.json>",
		Short: "Restore a snapshot, degrading through fallbacks when the server struggles",
		Long: "Tries the bulk restore endpoint first, then per-item creates, and finally\n" +
			"caches the snapshot locally read-only when the server is unreachable.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			// Old backup files sometimes hold a single bare object.
			var items types.FlexList[project.Project]
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("snapshot file is not valid JSON: %w", err)
			}
			if len(items) == 0 {
				return fmt.Errorf("snapshot file contains no projects")
			}

			client := restore.NewClient(serverURL, apiKey)
			strategies := []restore.Strategy{
				&restore.Bulk{Client: client},
				&restore.PerItem{Client: client},
				&restore.LocalCache{Path: cachePath},
			}

			result := restore.Run(cmd.Context(), items.Slice(), strategies, func(msg string) {
				fmt.Fprintln(os.Stderr, "Warning:", msg)
			})

			switch result.Outcome {
			case restore.OutcomeSuccess:
				fmt.Printf("%s: %s\n", result.Strategy, result.Message)
				if result.Failed > 0 {
					fmt.Fprintf(os.Stderr, "Warning: %d items were not restored\n", result.Failed)
				}
				return nil
			default:
				return fmt.Errorf("%s: %s", result.Strategy, result.Message)
			}
		},
	}

	return cmd
}

func showCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-cache",
		Short: "Print the locally cached snapshot left by a degraded restore",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := restore.LoadCache(cachePath)
			if err != nil {
				return fmt.Errorf("no usable cache at %s: %w", cachePath, err)
			}

			fmt.Printf("%-38s %-28s %-20s %s\n", "ID", "NAME", "CLIENT", "STATUS")
			for _, p := range items {
				fmt.Printf("%-38s %-28s %-20s %s\n", p.ID, p.Name, p.Client, p.Status)
			}
			fmt.Printf("\n%d projects (read-only cache; server was unreachable at restore time)\n", len(items))
			return nil
		},
	}
}
