// Rsx-launcher is the simple launcher for the RSX robotic arm.
//
// It shows one button per arm view plus an emergency stop toggle. Each
// button only reports in the status line what it would open.
//
// Usage:
//
//	rsx-launcher [command] [flags]
//
// Running without arguments opens the launcher.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsx-robotics/arm-control/internal/app"
	"github.com/rsx-robotics/arm-control/internal/cli"
	"github.com/rsx-robotics/arm-control/internal/launcher"
	"github.com/rsx-robotics/arm-control/internal/version"
)

const programName = "rsx-launcher"

var flags cli.GlobalFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           programName,
	Short:         "RSX Arm Control launcher",
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := app.New(app.Options{
			Name:       programName,
			ConfigPath: flags.ConfigPath,
			Stylesheet: flags.Stylesheet,
			LogLevel:   flags.LogLevel,
			AltScreen:  true,
		})
		if err != nil {
			return err
		}
		defer ctx.Close()

		return ctx.Run(launcher.New(launcher.Options{Sheet: ctx.Sheet}))
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags.Bind(rootCmd)

	rootCmd.AddCommand(cli.NewVersionCmd(programName))
	rootCmd.AddCommand(cli.NewStylesheetCmd())
	rootCmd.AddCommand(cli.NewConfigCmd(&flags))
}
