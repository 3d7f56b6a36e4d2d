/*
Copyright © 2022 Daniils Petrovs <thedanpetrov@gmail.com>

*/
package cmd

import (
	"context"
	"os"

	"github.com/DaniruKun/circle-tracker/actuator"
	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "circle-tracker",
	Short: "Circle Tracker",
	Long: `Finds colored circles in a camera feed, picks the one closest to the
screen center and streams aim corrections to a microcontroller over serial.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return run(cmd.Context(), opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	serialDefaults := actuator.DefaultConfig()

	rootCmd.Flags().StringP("port", "p", serialDefaults.Port, "Serial port of the microcontroller (env "+actuator.PortEnvVariable+")")
	rootCmd.Flags().IntP("baud", "b", serialDefaults.Baud, "Serial baud rate")
	rootCmd.Flags().IntP("camera", "c", 0, "Camera device id")
	rootCmd.Flags().StringP("file", "f", "", "Video file to run on instead of a camera")
	rootCmd.Flags().Bool("screen", false, "Capture the primary screen instead of a camera")
	rootCmd.Flags().Int("center-x", aim.DefaultReference.X, "Horizontal pixel of the aim point")
	rootCmd.Flags().Int("center-y", aim.DefaultReference.Y, "Vertical pixel of the aim point")
	rootCmd.Flags().Bool("auto-center", false, "Aim at the center of the frame source instead of --center-x/--center-y")
	rootCmd.Flags().Uint32("hue", 220, "Target hue in degrees")
	rootCmd.Flags().Uint32("hue-tolerance", 40, "Accepted hue deviation in degrees")
	rootCmd.Flags().BoolP("gui", "g", true, "Show GUI with preview, press q to quit")
	rootCmd.Flags().Bool("dry-run", false, "Print commands to stdout instead of opening the serial port")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("json", false, "Log in JSON")
}
