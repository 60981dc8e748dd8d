package main

import (
	"fmt"
	"os"

	"github.com/cuemby/catalogstore/pkg/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create a new store and seed it from a YAML properties file",
	Long: `bootstrap creates a catalog store at --db (it must not already
exist) and pre-populates property_* keys from a YAML seed file.

Examples:
  # Seed a new store from properties.yaml
  catalogctl bootstrap -f properties.yaml -d config.db`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func init() {
	bootstrapCmd.Flags().StringP("file", "f", "", "YAML properties file to seed from (required)")
	_ = bootstrapCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(bootstrapCmd)
}

// bootstrapSpec is the seed file's shape: a flat map of property name to
// string value.
type bootstrapSpec struct {
	Properties map[string]string `yaml:"properties"`
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("db")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("bootstrap: %s already exists", path)
	}

	filename, _ := cmd.Flags().GetString("file")
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var spec bootstrapSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	store := catalog.NewStore(path)
	facade := catalog.NewFacade(store, catalog.NewStaticGlobalCatalog())
	life := catalog.NewLifecycle(facade)
	if err := life.Create(); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer life.Close()

	for name, value := range spec.Properties {
		if err := facade.SetProperty(name, value); err != nil {
			return fmt.Errorf("failed to set property %s: %w", name, err)
		}
	}
	fmt.Printf("bootstrapped %s with %d properties\n", path, len(spec.Properties))
	return nil
}
