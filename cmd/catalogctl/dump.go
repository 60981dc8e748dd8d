package main

import (
	"fmt"

	"github.com/cuemby/catalogstore/pkg/catalog"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the pipe-delimited text snapshot of the whole catalog",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Int("network-version", catalog.MaxNetworkVersion, "network protocol version to target")
	dumpCmd.Flags().String("charset", "UTF-8", "charset name recorded on the snapshot")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	facade, life, err := openFacade(cmd, false)
	if err != nil {
		return err
	}
	defer life.Close()

	networkVersion, _ := cmd.Flags().GetInt("network-version")
	charset, _ := cmd.Flags().GetString("charset")

	out, err := catalog.NewTextSerializer(facade).ToStream(networkVersion, charset)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	fmt.Println(out)
	return nil
}
