package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	watchdog "github.com/randlabs/server-watchdog-client"
	"github.com/randlabs/server-watchdog-client/console"
)

//------------------------------------------------------------------------------

var notifyCmd = &cobra.Command{
	Use:   "notify <message>",
	Short: "Send a notification to a channel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotify,
}

//------------------------------------------------------------------------------

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().StringP("severity", "s", "info", "severity of the notification (error, warn or info)")
	notifyCmd.Flags().StringP("channel", "c", "", "destination channel (defaults to the configured channel)")
}

func runNotify(cmd *cobra.Command, args []string) error {
	var err error

	client, err := createClient()
	if err != nil {
		return err
	}

	severity, _ := cmd.Flags().GetString("severity")
	channel, _ := cmd.Flags().GetString("channel")
	message := strings.Join(args, " ")

	switch watchdog.ValidateSeverity(severity) {
	case watchdog.SeverityError:
		err = client.Error(message, channel)
	case watchdog.SeverityWarn:
		err = client.Warn(message, channel)
	case watchdog.SeverityInfo:
		err = client.Info(message, channel)
	default:
		return errors.New("Invalid severity.")
	}
	if err != nil {
		return err
	}

	console.PrintlnSuccess()
	return nil
}
