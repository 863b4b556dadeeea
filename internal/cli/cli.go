// Package cli holds the cobra commands shared by the dashboard and launcher
// binaries.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rsx-robotics/arm-control/internal/config"
	"github.com/rsx-robotics/arm-control/internal/stylesheet"
	"github.com/rsx-robotics/arm-control/internal/ui"
	"github.com/rsx-robotics/arm-control/internal/version"
)

// GlobalFlags are the persistent flags every binary accepts. None are
// required; running with no arguments opens the window with defaults.
type GlobalFlags struct {
	ConfigPath string
	Stylesheet string
	LogLevel   string
}

// Bind registers the flags on cmd as persistent flags.
func (f *GlobalFlags) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/rsx-arm/config.yaml)")
	cmd.PersistentFlags().StringVar(&f.Stylesheet, "stylesheet", "", "Stylesheet file (default ./styles.yaml)")
	cmd.PersistentFlags().StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default silent)")
}

// NewVersionCmd prints the build version for program.
func NewVersionCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", program, version.Full())
		},
	}
}

// NewStylesheetCmd validates stylesheet files.
func NewStylesheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stylesheet",
		Short: "Inspect stylesheet files",
	}

	check := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a stylesheet file",
		Long: `Validate a stylesheet file and list the controls it styles.

The windows never fail on a bad stylesheet; they fall back to the default
appearance. Use this command to find out why a sheet was not applied.`,
		Example: `  # Check ./styles.yaml
  rsx-dashboard stylesheet check

  # Check a specific file
  rsx-launcher stylesheet check ~/panel.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stylesheet.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			return checkStylesheet(ui.NewPrinter(cmd.OutOrStdout()), path)
		},
	}

	cmd.AddCommand(check)
	return cmd
}

func checkStylesheet(p *ui.Printer, path string) error {
	sheet, err := stylesheet.Load(path)
	if err != nil {
		p.PrintError("Stylesheet not usable", err, []string{
			"Top-level keys are control object names such as title or estop_button",
			"Colors are #rgb, #rrggbb, or ANSI numbers 0-255",
			"Borders are normal, rounded, double, thick, or hidden",
		})
		return fmt.Errorf("stylesheet check failed: %w", err)
	}

	result := ui.NewSuccessResult("Stylesheet valid",
		ui.Detail{Key: "Path", Value: path},
		ui.Detail{Key: "Rules", Value: strconv.Itoa(sheet.Len())},
	)
	for _, name := range sheet.Names() {
		result.AddDetail("Styles", name)
	}
	p.PrintResult(result)
	return nil
}

// NewConfigCmd shows and initializes the settings file.
func NewConfigCmd(flags *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the settings file",
		Long: `Validate the settings file.

The windows ignore a broken settings file and start with the defaults. Use
this command to see why the file was not applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			return checkConfig(ui.NewPrinter(cmd.OutOrStdout()), path)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Settings written", ui.Detail{Key: "Path", Value: path})
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func checkConfig(p *ui.Printer, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		p.PrintError("Settings not usable", err, []string{
			"version must be 1 or left out",
			"camera_topics is a list of topic names",
			"Run 'config init --force' to start over from the defaults",
		})
		return fmt.Errorf("config check failed: %w", err)
	}

	sheet := cfg.Stylesheet
	if sheet == "" {
		sheet = stylesheet.DefaultPath
	}
	result := ui.NewSuccessResult("Settings valid",
		ui.Detail{Key: "Path", Value: path},
		ui.Detail{Key: "Stylesheet", Value: sheet},
	)
	for _, topic := range cfg.CameraTopics {
		result.AddDetail("Camera topic", topic)
	}
	p.PrintResult(result)
	return nil
}

func configPath(flags *GlobalFlags) (string, error) {
	if flags.ConfigPath != "" {
		return flags.ConfigPath, nil
	}
	return config.Path()
}
