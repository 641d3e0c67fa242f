package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/wabot-sh/wabot/internal/chat"
	"github.com/wabot-sh/wabot/internal/command"
	"github.com/wabot-sh/wabot/internal/db"
)

func init() {
	reportCmd.Flags().StringP("group", "g", "", "Group jid for the member reports")
}

var reportCmd = &cobra.Command{
	Use:       "report [chatsdm|chatsgc|gactive|inactive]",
	Short:     "Run a summary command against the local store",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"chatsdm", "chatsgc", "gactive", "inactive"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		conn, err := db.Connect(ctx, cfg.DataDir)
		if err != nil {
			return err
		}
		defer conn.Close()

		handlers := &command.Handlers{
			Chats: chat.NewService(db.New(conn)),
			Resolver: chat.ResolverFunc(func(context.Context, string) (string, error) {
				// Group metadata lives with the transport; offline runs
				// degrade to the placeholder name.
				return "", errors.New("group metadata unavailable")
			}),
			InactiveWindow: time.Duration(cfg.InactiveDays) * 24 * time.Hour,
		}
		registry := command.NewRegistry()
		handlers.Register(registry)

		group, _ := cmd.Flags().GetString("group")
		return registry.Dispatch(ctx, args[0], &command.Context{
			Sender:  cfg.OwnerJID,
			ChatJID: group,
			Replier: writerReplier{w: cmd.OutOrStdout()},
		})
	},
}

type writerReplier struct {
	w io.Writer
}

func (r writerReplier) Reply(text string, mentions []string) error {
	_, err := fmt.Fprintln(r.w, text)
	return err
}
