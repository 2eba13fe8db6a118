// Package main implements a small command line companion for the server
// watchdog client library. It reads the connection settings from a JSON
// file and exposes one subcommand per API operation.
//
// Usage:
//
//	watchdog-cli ping --settings client.json
//	watchdog-cli notify "disk is filling up" --severity warn
//	watchdog-cli watch 12345 --name myservice
//	watchdog-cli unwatch 12345
package main

import (
	"os"

	"github.com/spf13/cobra"

	watchdog "github.com/randlabs/server-watchdog-client"
	"github.com/randlabs/server-watchdog-client/console"
	"github.com/randlabs/server-watchdog-client/settings"
)

//------------------------------------------------------------------------------

var settingsFilename string

var rootCmd = &cobra.Command{
	Use:           "watchdog-cli",
	Short:         "Send notifications and process watch requests to a server watchdog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

//------------------------------------------------------------------------------

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFilename, "settings", "./settings.json",
		"path to the client settings file")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		console.Error("%v", err.Error())
		os.Exit(1)
	}
}

func createClient() (*watchdog.Client, error) {
	config, err := settings.Load(settingsFilename)
	if err != nil {
		return nil, err
	}
	return watchdog.Create(config.ToOptions())
}
