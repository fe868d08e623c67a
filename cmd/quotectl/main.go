// quotectl is the operator CLI: snapshot backup and restore against a running
// server, spreadsheet import, and a read-only view of the local cache that
// the degraded restore path writes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	apiKey    string
	cachePath string
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Operate a quotetrack server: backup, restore, import",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", envOr("QUOTETRACK_URL", "http://localhost:4000"), "server base URL")
	root.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "x-api-key value")
	root.PersistentFlags().StringVar(&cachePath, "cache", envOr("QUOTETRACK_CACHE", defaultCachePath()), "local snapshot cache path")

	root.AddCommand(backupCmd())
	root.AddCommand(restoreCmd())
	root.AddCommand(importCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(showCacheCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quotetrack-cache.json"
	}
	return home + "/.quotetrack/snapshot.json"
}
