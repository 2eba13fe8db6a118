package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	watchdog "github.com/randlabs/server-watchdog-client"
	"github.com/randlabs/server-watchdog-client/console"
)

//------------------------------------------------------------------------------

var watchCmd = &cobra.Command{
	Use:   "watch [pid]",
	Short: "Ask the server to watch a process (defaults to this one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

var unwatchCmd = &cobra.Command{
	Use:   "unwatch [pid]",
	Short: "Remove a process watch (defaults to this process)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnwatch,
}

//------------------------------------------------------------------------------

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(unwatchCmd)

	watchCmd.Flags().StringP("name", "n", "", "process description used in notifications")
	watchCmd.Flags().StringP("severity", "s", "error", "severity of the death notification")
	watchCmd.Flags().StringP("channel", "c", "", "destination channel (defaults to the configured channel)")
	watchCmd.Flags().String("max-mem", "", "also notify when memory usage exceeds this amount (e.g. 512mb, 80%)")

	unwatchCmd.Flags().StringP("channel", "c", "", "destination channel (defaults to the configured channel)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	pid, err := parsePidArg(args)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	severity, _ := cmd.Flags().GetString("severity")
	channel, _ := cmd.Flags().GetString("channel")
	maxMem, _ := cmd.Flags().GetString("max-mem")

	err = client.ProcessWatchEx(watchdog.ProcessWatchOptions{
		Pid:         pid,
		Name:        name,
		Severity:    severity,
		Channel:     channel,
		MaxMemUsage: maxMem,
	})
	if err != nil {
		return err
	}

	console.PrintlnSuccess()
	return nil
}

func runUnwatch(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	pid, err := parsePidArg(args)
	if err != nil {
		return err
	}

	channel, _ := cmd.Flags().GetString("channel")

	err = client.ProcessUnwatch(pid, channel)
	if err != nil {
		return err
	}

	console.PrintlnSuccess()
	return nil
}

func parsePidArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil //zero selects the calling process
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid < 1 {
		return 0, errors.New("Invalid process id.")
	}
	return pid, nil
}
