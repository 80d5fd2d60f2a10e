package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/sniprrr/internal/cli"
	"github.com/studiowebux/sniprrr/internal/config"
	"github.com/studiowebux/sniprrr/internal/store"
	"github.com/studiowebux/sniprrr/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sniprrr",
	Short: "Terminal snippet manager",
	Long: `sniprrr stores short title/description snippets and copies them to the
system clipboard.

Run without arguments to start the interactive TUI. Subcommands cover
scripted use.

Examples:
  sniprrr                       # Start interactive TUI
  sniprrr list                  # Print stored snippets
  sniprrr list -o json          # As JSON
  sniprrr add "ssh" "ssh -i key.pem user@host"
  sniprrr copy 0                # Copy snippet 0's description
  sniprrr rm 2                  # Delete snippet 2`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored snippets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.List(store.New(), cli.ListOptions{OutputFormat: flagOutput})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title> <description>",
	Short: "Add a snippet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Add(store.New(), args[0], args[1])
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Delete a snippet by position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Remove(store.New(), args[0])
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <index>",
	Short: "Copy a snippet's description to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return cli.Copy(store.New(), args[0])
	},
}

var flagOutput string

func init() {
	listCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(copyCmd)
}
