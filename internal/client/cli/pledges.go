package cli

import (
	"fmt"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/spf13/cobra"
)

func (c *cli) pledgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pledges",
		Aliases: []string{"pledge"},
		Short:   "Browse and make pledges",
		Long: `Commands for pledges made towards projects.

Pledges can be made anonymously. When signed in, the pledge is recorded
against the signed-in user.

Examples:
  # Pledges of one project
  green-pledge pledges list --project <id>

  # Pledge 25.50 and 10 trees
  green-pledge pledges create --project <id> --amount 25.50 --trees 10 --message "For the coast"`,
	}

	cmd.AddCommand(c.pledgesListCmd(), c.pledgesCreateCmd())
	return cmd
}

func (c *cli) pledgesListCmd() *cobra.Command {
	var filter models.PledgeFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pledges",
		Long: `List pledges, newest first. --user takes precedence over --project;
with neither every pledge is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pledges, err := c.app.Services.CatalogService.ListPledges(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list pledges: %w", err)
			}

			out := cmd.OutOrStdout()
			if c.output == outputJSON {
				return writeJSON(out, pledges)
			}
			if len(pledges) == 0 {
				fmt.Fprintln(out, "No pledges found.")
				return nil
			}

			rows := make([][]string, 0, len(pledges))
			for _, p := range pledges {
				rows = append(rows, []string{
					p.ID, p.ProjectID, pledgeUser(p), p.Amount.String(), nullDecimal(p.TreesCount), formatTime(p.CreatedAt),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "PROJECT", "USER", "AMOUNT", "TREES", "CREATED"}, rows))
			fmt.Fprintf(out, "Total: %d pledge(s)\n", len(pledges))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.UserID, "user", "", "only pledges of this user id")
	cmd.Flags().StringVar(&filter.ProjectID, "project", "", "only pledges for this project id")
	return cmd
}

func (c *cli) pledgesCreateCmd() *cobra.Command {
	var (
		projectID string
		amount    string
		trees     string
		message   string
		userID    string
		copyID    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Make a pledge",
		Long: `Make a pledge towards a project. Without a session the pledge is
anonymous. --user may only name the signed-in user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			req := models.PledgeCreateRequest{
				ProjectID:  projectID,
				Amount:     models.NumericString(amount),
				TreesCount: changedNumeric(fs, "trees", trees),
				Message:    changedString(fs, "message", message),
				UserID:     changedString(fs, "user", userID),
			}

			pledge, err := c.app.Services.CatalogService.CreatePledge(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create pledge: %w", err)
			}

			out := cmd.OutOrStdout()
			if c.output == outputJSON {
				writeJSON(out, pledge)
			} else {
				fmt.Fprintln(out, renderCard("Pledge recorded", []field{
					{"ID", pledge.ID},
					{"Project", pledge.ProjectID},
					{"User", pledgeUser(pledge)},
					{"Amount", pledge.Amount.String()},
					{"Trees", nullDecimal(pledge.TreesCount)},
					{"Message", optional(pledge.Message)},
					{"Created", formatTime(pledge.CreatedAt)},
				}))
			}
			c.copyID(cmd, copyID, pledge.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "pledged amount, a positive decimal (required)")
	cmd.Flags().StringVar(&trees, "trees", "", "number of trees")
	cmd.Flags().StringVar(&message, "message", "", "message shown with the pledge")
	cmd.Flags().StringVar(&userID, "user", "", "pledge as this user id (must be the signed-in user)")
	cmd.Flags().BoolVar(&copyID, "copy-id", false, "copy the new pledge id to the clipboard")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("amount")

	return cmd
}
