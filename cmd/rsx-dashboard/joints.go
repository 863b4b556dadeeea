package main

import (
	"github.com/spf13/cobra"

	"github.com/rsx-robotics/arm-control/internal/joints"
	"github.com/rsx-robotics/arm-control/internal/ui"
)

var jointsCmd = &cobra.Command{
	Use:   "joints",
	Short: "Print the joint tables once without opening the window",
	Long: `Print the joint state and joint angle tables exactly as the dashboard
panels show them, then exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printJoints(ui.NewPrinter(cmd.OutOrStdout()), joints.SampleStates())
	},
}

func printJoints(p *ui.Printer, states map[string]joints.JointState) {
	p.Print(joints.FormatStates(states))
	p.Println("")
	p.Print(joints.FormatAngles(joints.AnglesFromStates(states)))
}
