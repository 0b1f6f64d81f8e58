/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/pushtray/internal/colors"
	"github.com/cristianoliveira/pushtray/internal/config"
	"github.com/cristianoliveira/pushtray/internal/hooks"
	"github.com/cristianoliveira/pushtray/internal/logging"
	"github.com/cristianoliveira/pushtray/internal/version"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pushtray",
	Short: "A local inbox for push notifications.",
	Long:  `A local inbox for push notifications.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		colors.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(); err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize logging: %v", err))
		}
		colors.SetLogger(logging.GetGlobal())
		if err := hooks.Init(); err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize hooks: %v", err))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	defer func() {
		_ = logging.ShutdownGlobal()
	}()
	return RootCmd.Execute()
}

func init() {
	// Set version for use in help output
	RootCmd.Version = version.Version

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Set custom help function for the root command
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			_ = cmd.Usage()
			return
		}
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"add",
		"ingest",
		"list",
		"mark-read",
		"mark-all-read",
		"remove",
		"clear",
		"status",
		"follow",
		"help",
		"version",
	}

	// Build command descriptions
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-20s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`pushtray v%s

A local inbox for push notifications.

USAGE:
    pushtray [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.Version, strings.Join(cmdLines, "\n"))
	fmt.Print(helpText)
}
