package main

import (
	"fmt"
	"sort"

	"github.com/cuemby/catalogstore/pkg/catalog"
	"github.com/spf13/cobra"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List all user properties (property_<name> keys)",
	Args:  cobra.NoArgs,
	RunE:  runProperties,
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	facade, life, err := openFacade(cmd, false)
	if err != nil {
		return err
	}
	defer life.Close()

	entries, err := facade.Store().PrefixScan("property_")
	if err != nil {
		return fmt.Errorf("scan properties: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	for _, e := range entries {
		v, _, err := catalog.DecodeString(e.Key, e.Value, 0)
		if err != nil {
			return fmt.Errorf("decode %s: %w", e.Key, err)
		}
		name, _ := catalog.PropertyNameFromKey(e.Key)
		if v == nil {
			fmt.Printf("%s = <null>\n", name)
			continue
		}
		fmt.Printf("%s = %s\n", name, *v)
	}
	return nil
}
