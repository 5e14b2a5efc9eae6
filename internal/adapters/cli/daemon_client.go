package cli

import (
	"context"
	"fmt"
	"time"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
)

const requestTimeout = 10 * time.Second

// withDaemon opens a client on the resolved socket and runs fn with a bounded context
func withDaemon(parent context.Context, fn func(ctx context.Context, client *grpcAdapter.DaemonClient) error) error {
	client, err := grpcAdapter.NewDaemonClient(resolveSocketPath())
	if err != nil {
		return fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer client.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, requestTimeout)
	defer cancel()

	return fn(ctx, client)
}
