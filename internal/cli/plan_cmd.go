package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/cli/formatter"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/intake"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newPlanCmd(cliApp *App) *cobra.Command {
	var (
		file          string
		maxIterations int
		minScore      float64
		similarK      int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and refine a four-year roadmap",
		Long: "Reads a student profile from --file (JSON) or collects one interactively,\n" +
			"then runs the synthesize/evaluate/refine loop and prints the accepted plan.",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(file)
			if err != nil {
				return err
			}

			resp, err := cliApp.Planner.Plan(cmd.Context(), app.PlanRequest{
				Profile:           profile,
				MaxIterations:     maxIterations,
				MinScoreThreshold: minScore,
				SimilarK:          similarK,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a student profile JSON file ('-' for stdin)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", app.DefaultMaxIterations, "Maximum refinement iterations")
	cmd.Flags().Float64Var(&minScore, "min-score", app.DefaultMinScore, "Acceptance score threshold (0-1)")
	cmd.Flags().IntVar(&similarK, "k", app.DefaultSimilarK, "Number of similar profiles to retrieve")

	return cmd
}

func loadProfile(file string) (domain.StudentProfile, error) {
	switch {
	case file == "-":
		return intake.ReadProfile(os.Stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return domain.StudentProfile{}, fmt.Errorf("opening profile file: %w", err)
		}
		defer f.Close()
		return intake.ReadProfile(f)
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return runProfileWizard()
	default:
		return intake.ReadProfile(os.Stdin)
	}
}
