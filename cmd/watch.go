package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchOut string

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output .mid path")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <score>",
	Short: "Re-renders a score whenever it changes",
	Long:  `Re-renders a score whenever it changes`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(args[0], watchOut)
	},
}

func watch(in, out string) error {
	if out == "" {
		out = midPath(in)
	}
	if _, err := os.Stat(in); err != nil {
		return err
	}
	if err := convertFile(in, out); err != nil {
		logger.Warn("initial render failed", zap.Error(err))
	}

	// editors fire several stat changes per save; collapse them
	rebuild := debounce.New(300 * time.Millisecond)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	last := modTime(in)
	logger.Info("watching", zap.String("score", in), zap.String("out", out))
	for {
		select {
		case <-interrupt:
			logger.Info("stopping watch")
			return nil
		case <-ticker.C:
			mt := modTime(in)
			if !mt.After(last) {
				continue
			}
			last = mt
			rebuild(func() {
				if err := convertFile(in, out); err != nil {
					logger.Warn("render failed", zap.Error(err))
				}
			})
		}
	}
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
