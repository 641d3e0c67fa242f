package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/wabot-sh/wabot/internal/config"
	"github.com/wabot-sh/wabot/internal/log"
	"github.com/wabot-sh/wabot/internal/version"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().StringP("data-dir", "D", "", "Custom wabot data directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(reportCmd)
}

var rootCmd = &cobra.Command{
	Use:   "wabot",
	Short: "WhatsApp automation bot core",
	Long: `Wabot keeps a WhatsApp bot's session state and message history in a local
SQLite store. It pulls remote session bundles on pairing and answers chat
summary commands (chatsdm, chatsgc, gactive, inactive) from the recorded
history.`,
	Example: `
	# Pull the configured session into the local store
	wabot sync

	# Summarize direct-message chats from the local store
	wabot report chatsdm

	# Rank the active members of one group
	wabot report gactive -g 120363041234567890@g.us

	# Run with debug logging in a custom data directory
	wabot -d -D /var/lib/wabot sync
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and initializes logging for a subcommand run.
func setup(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cwd, err := resolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	_ = loadDotEnv(cwd)

	cfg, err := config.Load(cwd, dataDir, debug)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	log.Setup(cfg.LogFile(), cfg.Debug)
	return cfg, nil
}

func resolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		if err := os.Chdir(cwd); err != nil {
			return "", fmt.Errorf("failed to change directory: %w", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return cwd, nil
}

// loadDotEnv loads KEY=VALUE pairs from a .env file in the given directory into the process environment.
// Existing environment variables are not overridden.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if fi.IsDir() {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(string(b), "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "export ") {
			line = strings.TrimSpace(line[7:])
		}
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}
		val = strings.TrimSuffix(val, "\r")
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
	return nil
}
