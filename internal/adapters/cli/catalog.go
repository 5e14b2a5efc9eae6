package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	grpcAdapter "github.com/andrescamacho/nations-go/internal/adapters/grpc"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the building catalog",
	}
	cmd.AddCommand(newCatalogListCommand())
	return cmd
}

func newCatalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List building types served by the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(cmd.Context(), func(ctx context.Context, client *grpcAdapter.DaemonClient) error {
				reply, err := client.ListBuildingTypes(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-12s %-28s %8s %6s %8s %8s  %s\n",
					"TYPE", "NAME", "COST", "HOURS", "REQ POP", "REQ ECO", "EFFECTS (pop/eco/env)")
				for _, t := range reply.Types {
					fmt.Fprintf(out, "%-12s %-28s %8d %6d %8d %8d  %+d/%+d/%+d\n",
						t.Type, t.Name, t.CostEconomy, t.BuildTimeHours,
						t.RequiredPopulation, t.RequiredEconomy,
						t.Effects.Population, t.Effects.Economy, t.Effects.Environment)
				}
				return nil
			})
		},
	}
}
