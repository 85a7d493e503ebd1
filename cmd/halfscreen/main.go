// Package main provides the halfscreen command.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

func init() {
	// The status-bar menu and the macOS event loop must own the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	run := &runOptions{root: opts}

	rootCmd := &cobra.Command{
		Use:   "halfscreen",
		Short: "Snap the frontmost window to half or full screen with Ctrl+Cmd+arrows",
		Long: `halfscreen sits in the status bar and moves the frontmost window:

  Ctrl+Cmd+Left   left half of the screen
  Ctrl+Cmd+Right  right half of the screen
  Ctrl+Cmd+Up     the whole screen

On Linux the Super key stands in for Cmd.`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, run)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: ~/.config/halfscreen/config.yaml)")
	run.bindFlags(rootCmd)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}
