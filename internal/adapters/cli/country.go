package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
)

// NewCountryCommand creates the country command with subcommands
func NewCountryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "country",
		Short: "Inspect and act on a user's country through the daemon",
		Long: `Inspect and act on a user's country.

Every subcommand brings the country up to date before reporting, exactly
like the JSON API does.

Examples:
  nations country show --user 42
  nations country production --user 42
  nations country construct PARK --user 42`,
	}

	cmd.AddCommand(newCountryShowCommand())
	cmd.AddCommand(newCountryProductionCommand())
	cmd.AddCommand(newCountryConstructCommand())

	return cmd
}

func newCountryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resources, buildings and construction queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUserID()
			if err != nil {
				return err
			}

			return withDaemon(cmd.Context(), func(ctx context.Context, client *grpcAdapter.DaemonClient) error {
				reply, err := client.GetCountry(ctx, user)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), NewCountryFormatter(time.Now).FormatCountry(reply))
				return nil
			})
		},
	}
}

func newCountryProductionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "production",
		Short: "Show the hourly production rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUserID()
			if err != nil {
				return err
			}

			return withDaemon(cmd.Context(), func(ctx context.Context, client *grpcAdapter.DaemonClient) error {
				reply, err := client.GetProduction(ctx, user)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Production per hour:")
				fmt.Fprintf(out, "  population:  %+d\n", reply.Population)
				fmt.Fprintf(out, "  economy:     %+d\n", reply.Economy)
				fmt.Fprintf(out, "  environment: %+d\n", reply.Environment)
				return nil
			})
		},
	}
}

func newCountryConstructCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "construct <BUILDING_TYPE>",
		Short: "Queue a building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUserID()
			if err != nil {
				return err
			}
			buildingType := strings.ToUpper(strings.TrimSpace(args[0]))

			return withDaemon(cmd.Context(), func(ctx context.Context, client *grpcAdapter.DaemonClient) error {
				reply, err := client.ConstructBuilding(ctx, user, buildingType)
				if err != nil {
					return fmt.Errorf("construction rejected: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "✓ %s queued (order %s)\n", reply.Order.BuildingType, reply.Order.ID)
				fmt.Fprintf(out, "  economy left: %d\n", reply.Resources.Economy)
				fmt.Fprint(out, "  queue")
				fmt.Fprint(out, NewCountryFormatter(time.Now).FormatQueue("  ", reply.ConstructionQueue))
				return nil
			})
		},
	}
}
