package cli

import (
	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/repository"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planner       app.PlanUseCase
	Profiles      app.ProfileUseCase
	Opportunities app.OpportunityUseCase

	// Seeding writes through the repositories directly.
	HistoryRepo     repository.HistoryRepo
	OpportunityRepo repository.OpportunityRepo
}

// NewRootCmd creates the top-level "lodestar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lodestar",
		Short: "Iterative four-year college roadmap planner",
		Long: "Lodestar builds a four-year high school roadmap from a student profile,\n" +
			"critiques it against five quality dimensions, and refines it until it\n" +
			"meets the acceptance bar.",
	}

	root.AddCommand(
		newPlanCmd(app),
		newProfileCmd(app),
		newOpportunityCmd(app),
		newSeedCmd(app),
	)

	return root
}
