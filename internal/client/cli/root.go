// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli contains the green-pledge command-line client.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/client"
	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// Opener builds the client runtime for one command invocation.
type Opener func(ctx context.Context, overrides config.ClientConfig) (*client.App, error)

type cli struct {
	open      Opener
	build     models.AppBuildInfo
	overrides config.ClientConfig
	output    string

	app *client.App

	promptPassword func(cmd *cobra.Command, label string) (string, error)
	copyText       func(text string) error
}

func newCLI(open Opener, build models.AppBuildInfo) *cli {
	return &cli{
		open:           open,
		build:          build,
		promptPassword: promptPassword,
		copyText:       clipboard.WriteAll,
	}
}

// Execute runs the command line in args against the runtime built by open.
// A failed command has its error printed to stderr before it is returned.
func Execute(ctx context.Context, open Opener, build models.AppBuildInfo, args []string) error {
	c := newCLI(open, build)
	defer c.close()

	root := c.command()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "green-pledge",
		Short: "Green Pledge catalog client",
		Long: `green-pledge talks to a Green Pledge server: it browses environmental
projects, records pledges against them and manages the signed-in identity.

Responses are cached locally and dropped whenever this client changes the
resource they came from.

Examples:
  # Sign in, then create a project
  green-pledge login --username alice
  green-pledge projects create --name "Mangrove belt" --lat -3.5 --lng 39.8 --type restoration

  # List pledges for one project as JSON
  green-pledge pledges list --project <id> -o json

  # Point at another server
  green-pledge --server http://pledge.example.com:8080 projects list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.output != outputTable && c.output != outputJSON {
				return fmt.Errorf("unknown output format %q (table, json)", c.output)
			}
			return c.openApp(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.overrides.Adapter.HTTPAddress, "server", "s", "", "server address (env ADAPTER_ADDRESS)")
	flags.DurationVar(&c.overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	flags.StringVar(&c.overrides.Cache.DSN, "cache", "", `response cache: SQLite file path or "memory"`)
	flags.DurationVar(&c.overrides.Cache.TTL, "cache-ttl", 0, "lifetime of a cached response")
	flags.StringVar(&c.overrides.LogLevel, "log-level", "", "log level written to the logs file")
	flags.StringVarP(&c.output, "output", "o", outputTable, "output format (table, json)")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.projectsCmd(),
		c.pledgesCmd(),
		c.seedCmd(),
		c.versionCmd(),
		c.cacheCmd(),
	)

	return root
}

func (c *cli) openApp(ctx context.Context) error {
	if c.app != nil {
		return nil
	}

	app, err := c.open(ctx, c.overrides)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

func (c *cli) close() {
	if err := c.app.Close(); err != nil && c.app.Logger != nil {
		c.app.Logger.Err(err).Str("func", "cli.close").Msg("error closing local storage")
	}
}

// copyID puts text on the system clipboard when enabled and says so.
func (c *cli) copyID(cmd *cobra.Command, enabled bool, text string) {
	if !enabled {
		return
	}
	if err := c.copyText(text); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), helpStyle.Render("could not copy to clipboard: "+err.Error()))
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), helpStyle.Render("copied to clipboard"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
