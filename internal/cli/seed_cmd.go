package cli

import (
	"fmt"

	"github.com/alexanderramin/lodestar/internal/repository"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample profiles and opportunities into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.SeedSamples(cmd.Context(), app.HistoryRepo, app.OpportunityRepo); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample profiles and opportunities are loaded.")
			return nil
		},
	}
}
