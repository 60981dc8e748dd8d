package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Inspect and seed a catalog store's config.db file",
	Long: `catalogctl is an operator tool for the catalog store: it opens a
store's bbolt file directly and exposes its typed fields, cluster and
index-engine descriptors, and user properties from the command line.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("catalogctl version %s (%s)\n", Version, Commit))
	rootCmd.PersistentFlags().StringP("db", "d", "config.db", "path to the catalog's bbolt file")
}
