package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/nations-go/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	socketPath string
	userID     string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nations",
		Short: "Nations - nation building game server and admin CLI",
		Long: `Nations runs the game server (JSON API + admin daemon) and provides
admin commands that talk to a running daemon over its unix socket.

Examples:
  nations serve
  nations migrate
  nations catalog list
  nations country show --user 42
  nations country construct HOUSE --user 42
  nations config set-user 42`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./, ./configs, /etc/nations)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "",
		"Path to daemon unix socket")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "",
		"User id to act as (default from 'nations config set-user')")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewCountryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// resolveSocketPath picks the socket from --socket, NATIONS_SOCKET, preferences, then the default
func resolveSocketPath() string {
	if socketPath != "" {
		return socketPath
	}
	if path := os.Getenv("NATIONS_SOCKET"); path != "" {
		return path
	}
	if store, err := config.NewPreferencesStore(); err == nil {
		if prefs, err := store.Load(); err == nil && prefs.SocketPath != "" {
			return prefs.SocketPath
		}
	}
	return config.Defaults().Daemon.SocketPath
}

// resolveUserID returns --user or the stored default
func resolveUserID() (string, error) {
	if userID != "" {
		return userID, nil
	}

	store, err := config.NewPreferencesStore()
	if err != nil {
		return "", fmt.Errorf("no user specified and failed to load preferences: %w", err)
	}
	prefs, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("no user specified and failed to load preferences: %w", err)
	}
	if prefs.DefaultUserID != "" {
		return prefs.DefaultUserID, nil
	}

	return "", fmt.Errorf("no user specified: use --user, or set a default with 'nations config set-user'")
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
