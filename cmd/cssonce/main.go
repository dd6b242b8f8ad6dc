package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cssonce",
		Short: "Render embedded component styles only once per page",
		Long: `cssonce demonstrates emit-once styling for server-rendered components.

A component that carries its own <style> block would normally repeat it
for every instance on a page. cssonce gates the block behind a shared
per-scope tracker so it is written exactly once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cssonce %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
