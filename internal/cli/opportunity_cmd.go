package cli

import (
	"fmt"

	"github.com/alexanderramin/lodestar/internal/cli/formatter"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/intake"
	"github.com/spf13/cobra"
)

func newOpportunityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunity",
		Aliases: []string{"opp"},
		Short:   "Browse the opportunity catalog",
	}

	cmd.AddCommand(
		newOpportunityListCmd(app),
		newOpportunityRelevantCmd(app),
	)

	return cmd
}

func newOpportunityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			opps, err := app.Opportunities.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOpportunities(opps))
			return nil
		},
	}
}

func newOpportunityRelevantCmd(app *App) *cobra.Command {
	var (
		gradeStr  string
		interests string
	)

	cmd := &cobra.Command{
		Use:   "relevant",
		Short: "List opportunities relevant to a grade and interest set",
		RunE: func(cmd *cobra.Command, args []string) error {
			gradeNum, err := intake.ParseGradeString(gradeStr)
			if err != nil {
				return err
			}
			grade := domain.GradeLevel(gradeNum)
			if !grade.Valid() {
				return fmt.Errorf("grade must be between 9 and 12")
			}

			opps, err := app.Opportunities.Relevant(cmd.Context(), grade, intake.SplitList(interests))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOpportunities(opps))
			return nil
		},
	}

	cmd.Flags().StringVar(&gradeStr, "grade", "", "Grade level (9-12, or freshman/sophomore/junior/senior)")
	cmd.Flags().StringVar(&interests, "interests", "", "Interests (comma separated)")
	_ = cmd.MarkFlagRequired("grade")

	return cmd
}
