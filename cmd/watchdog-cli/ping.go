package main

import (
	"github.com/spf13/cobra"

	"github.com/randlabs/server-watchdog-client/console"
)

//------------------------------------------------------------------------------

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity with the server watchdog",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

//------------------------------------------------------------------------------

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	err = client.Ping()
	if err != nil {
		return err
	}

	console.PrintlnSuccess()
	return nil
}
