// Rsx-dashboard is the full control dashboard for the RSX robotic arm.
//
// It shows the camera topic selector, the path planning toggle, the joint
// angle and joint state panels, the camera and 3D placeholders, and the
// emergency stop toggle in one terminal window.
//
// Usage:
//
//	rsx-dashboard [command] [flags]
//
// Running without arguments opens the dashboard.
// See 'rsx-dashboard --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsx-robotics/arm-control/internal/app"
	"github.com/rsx-robotics/arm-control/internal/cli"
	"github.com/rsx-robotics/arm-control/internal/dashboard"
	"github.com/rsx-robotics/arm-control/internal/version"
)

const programName = "rsx-dashboard"

var flags cli.GlobalFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   programName,
	Short: "RSX Arm Control System dashboard",
	Long: `Full control dashboard for the RSX robotic arm.

The window reads ./styles.yaml (or --stylesheet) at startup. A missing or
invalid stylesheet leaves the default appearance in place.

Set RSX_LOG_LEVEL=debug to record control events. While the window is open
they go to RSX_LOG_FILE, or to rsx-dashboard.log in the settings directory.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags.Bind(rootCmd)

	rootCmd.AddCommand(cli.NewVersionCmd(programName))
	rootCmd.AddCommand(cli.NewStylesheetCmd())
	rootCmd.AddCommand(cli.NewConfigCmd(&flags))
	rootCmd.AddCommand(jointsCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	return ctx.Run(dashboard.New(dashboard.Options{
		Sheet:        ctx.Sheet,
		CameraTopics: ctx.Config.CameraTopics,
	}))
}
