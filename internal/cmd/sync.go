package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wabot-sh/wabot/internal/log"
	"github.com/wabot-sh/wabot/internal/session"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull remote session state into the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		service := session.NewService(cfg.DataDir, cfg.SessionURL)
		defer service.Shutdown()

		status, err := service.Sync(cmd.Context(), cfg.SessionID)
		if err != nil {
			// The user gets one generic outcome; the cause goes to the
			// debug log only.
			slog.Debug("session sync failed",
				"session", log.MaskSessionID(cfg.SessionID), "error", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), status.Notice())
		return nil
	},
}
