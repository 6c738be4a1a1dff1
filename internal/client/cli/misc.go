package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample projects into an empty server",
		Long: `Ask the server to load its sample projects. Nothing is loaded when the
server already has projects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Services.CatalogService.Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			if c.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			msg := result.Message
			if result.Count > 0 {
				msg = fmt.Sprintf("%s (%d projects)", msg, result.Count)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(msg))
			return nil
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := c.app.Services.CatalogService.ServerVersion(cmd.Context())
			if err != nil {
				server = "unavailable (" + humanizeError(err) + ")"
			}

			if c.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": c.build.BuildVersion(),
					"date":    c.build.BuildDate(),
					"commit":  c.build.BuildCommit(),
					"server":  server,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.build.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", server)
			return nil
		},
	}
}

func (c *cli) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local response cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.CatalogService.ClearCache(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Cache cleared."))
			return nil
		},
	})
	return cmd
}
