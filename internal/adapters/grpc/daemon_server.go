package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
)

// DaemonServer serves the admin service on a unix domain socket
type DaemonServer struct {
	mediator   mediator.Mediator
	listener   net.Listener
	socketPath string
	logger     *slog.Logger
}

// NewDaemonServer creates the socket listener. Any stale socket file is removed first.
func NewDaemonServer(m mediator.Mediator, socketPath string, logger *slog.Logger) (*DaemonServer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create unix socket listener: %w", err)
	}

	// Owner only
	if err := os.Chmod(socketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	return &DaemonServer{
		mediator:   m,
		listener:   listener,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// SocketPath returns the path the daemon listens on
func (s *DaemonServer) SocketPath() string {
	return s.socketPath
}

// Serve handles admin requests until ctx is cancelled, then stops gracefully
func (s *DaemonServer) Serve(ctx context.Context) error {
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(s.loggingInterceptor))
	RegisterAdminServiceServer(grpcServer, newAdminService(s.mediator))

	s.logger.Info("daemon listening", "socket", s.socketPath)

	errChan := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(s.listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("stopping daemon")
		grpcServer.GracefulStop()
		_ = os.Remove(s.socketPath)
		return nil
	}
}

// loggingInterceptor attaches the daemon logger to each request context
func (s *DaemonServer) loggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	logger := s.logger.With("method", info.FullMethod)
	resp, err := handler(logging.WithLogger(ctx, logger), req)
	if err != nil {
		logger.Debug("admin request rejected", "error", err)
	}
	return resp, err
}
