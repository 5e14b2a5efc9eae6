package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage nations configuration settings.

Server configuration is loaded with priority:
1. Environment variables (NATIONS_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

CLI preferences (default user, socket) are stored in ~/.nations/cli.yaml

Examples:
  nations config show
  nations config set-user 42
  nations config clear-user`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetUserCommand())
	cmd.AddCommand(newConfigClearUserCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: failed to load config: %v\nUsing default configuration.\n\n", err)
				cfg = config.Defaults()
			}

			store, err := config.NewPreferencesStore()
			if err != nil {
				return err
			}
			prefs, err := store.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: failed to load preferences: %v\n\n", err)
				prefs = &config.CLIPreferences{}
			}

			fmt.Fprintln(out, "Nations Configuration")
			fmt.Fprintln(out, "=====================")

			fmt.Fprintln(out, "CLI Preferences:")
			fmt.Fprintf(out, "  File:             %s\n", store.Path())
			fmt.Fprintf(out, "  Default User:     %s\n", orUnset(prefs.DefaultUserID))
			fmt.Fprintf(out, "  Socket:           %s\n", resolveSocketPath())

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.SQLitePath())
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(out, "  Host:             %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nServer:")
			fmt.Fprintf(out, "  Address:          %s\n", cfg.Server.Address)
			fmt.Fprintf(out, "  User Header:      %s\n", cfg.Server.UserHeader)
			fmt.Fprintf(out, "  Rate Limit:       %d req/s (burst: %d)\n", cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Burst)
			fmt.Fprintf(out, "  Gzip:             %t\n", cfg.Server.Gzip)

			fmt.Fprintln(out, "\nDaemon:")
			fmt.Fprintf(out, "  Socket Path:      %s\n", cfg.Daemon.SocketPath)
			fmt.Fprintf(out, "  PID File:         %s\n", cfg.Daemon.PIDFile)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Path:             %s\n", cfg.Metrics.Path)

			fmt.Fprintln(out, "\nGame:")
			fmt.Fprintf(out, "  Catalog:          %s\n", orDefault(cfg.Game.CatalogPath, "(embedded)"))

			return nil
		},
	}
}

func newConfigSetUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-user <USER_ID>",
		Short: "Set the default user for country commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewPreferencesStore()
			if err != nil {
				return err
			}
			if err := store.SetDefaultUser(args[0]); err != nil {
				return fmt.Errorf("failed to set default user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default user set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigClearUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-user",
		Short: "Clear the default user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewPreferencesStore()
			if err != nil {
				return err
			}
			if err := store.SetDefaultUser(""); err != nil {
				return fmt.Errorf("failed to clear default user: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Default user cleared")
			return nil
		},
	}
}

func orUnset(s string) string {
	return orDefault(s, "(not set)")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
