package config

import "time"

// DaemonConfig holds the admin daemon configuration
type DaemonConfig struct {
	// Unix socket path for the admin gRPC service
	SocketPath string `mapstructure:"socket_path" validate:"required"`

	// PID file enforcing a single running server
	PIDFile string `mapstructure:"pid_file"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
