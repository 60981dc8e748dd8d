package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the raw encoded value for a single catalog key",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	facade, life, err := openFacade(cmd, false)
	if err != nil {
		return err
	}
	defer life.Close()

	key := args[0]
	value, ok, err := facade.Store().Get(key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		fmt.Printf("%s: <absent>\n", key)
		return nil
	}
	fmt.Printf("%s: %q (%d bytes)\n", key, value, len(value))
	return nil
}
