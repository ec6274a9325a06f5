package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger defaults to a nop so handlers stay usable from tests; Execute
// swaps in a real one before any command runs.
var logger = zap.NewNop()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "jianpu",
	Short: "Compiles jianpu scores into MIDI",
	Long:  `Compiles numbered musical notation (jianpu) into standard MIDI files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail")
}

func initLogger() error {
	build := zap.NewProduction
	if verbose {
		build = zap.NewDevelopment
	}
	l, err := build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func Execute() {
	defer func() {
		_ = logger.Sync()
	}()
	cobra.CheckErr(rootCmd.Execute())
}
