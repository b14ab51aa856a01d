package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/lodestar/internal/cli/formatter"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/intake"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the historical profile store",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileSearchCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *App) *cobra.Command {
	var (
		file       string
		admitted   string
		finalMajor string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a historical profile with its admission outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening profile file: %w", err)
			}
			defer f.Close()

			profile, err := intake.ReadProfile(f)
			if err != nil {
				return err
			}

			record := &domain.HistoricalProfile{
				ID:               uuid.NewString(),
				Profile:          profile,
				AdmittedColleges: intake.SplitList(admitted),
				FinalMajor:       finalMajor,
			}
			if err := app.Profiles.Add(cmd.Context(), record); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added profile #%d\n", record.Seq)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a student profile JSON file")
	cmd.Flags().StringVar(&admitted, "admitted", "", "Colleges the student was admitted to (comma separated)")
	cmd.Flags().StringVar(&finalMajor, "major", "", "Major the student ultimately pursued")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all historical profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoricalProfiles(profiles))
			return nil
		},
	}
}

func newProfileSearchCmd(app *App) *cobra.Command {
	var (
		major   string
		college string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search historical profiles by major or admitted college",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (major == "") == (college == "") {
				return fmt.Errorf("exactly one of --major or --college is required")
			}

			var (
				profiles []*domain.HistoricalProfile
				err      error
			)
			if major != "" {
				profiles, err = app.Profiles.SearchByMajor(cmd.Context(), major)
			} else {
				profiles, err = app.Profiles.SearchByCollege(cmd.Context(), college)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoricalProfiles(profiles))
			return nil
		},
	}

	cmd.Flags().StringVar(&major, "major", "", "Target major to search for")
	cmd.Flags().StringVar(&college, "college", "", "Admitted college to search for")

	return cmd
}
