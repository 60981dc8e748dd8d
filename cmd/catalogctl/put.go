package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <property-name> <value>",
	Short: "Set a user property (property_<name>)",
	Args:  cobra.ExactArgs(2),
	RunE:  runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	facade, life, err := openFacade(cmd, false)
	if err != nil {
		return err
	}
	defer life.Close()

	name, value := args[0], args[1]
	if err := facade.SetProperty(name, value); err != nil {
		return fmt.Errorf("put property %s: %w", name, err)
	}
	fmt.Printf("property_%s set\n", name)
	return nil
}
