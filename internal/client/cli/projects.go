package cli

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// projectFlags holds the raw values of the project field flags shared by
// create and update.
type projectFlags struct {
	name         string
	description  string
	location     string
	latitude     string
	longitude    string
	projectType  string
	area         string
	treesPlanted string
	co2Offset    string
	imageURL     string
	startDate    string
	status       string
	geometry     string
}

func (p *projectFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&p.name, "name", "", "project name")
	fs.StringVar(&p.description, "description", "", "project description")
	fs.StringVar(&p.location, "location", "", "human readable location")
	fs.StringVar(&p.latitude, "lat", "", "latitude in degrees, -90..90")
	fs.StringVar(&p.longitude, "lng", "", "longitude in degrees, -180..180")
	fs.StringVar(&p.projectType, "type", "", "reforestation, conservation, restoration or afforestation")
	fs.StringVar(&p.area, "area", "", "area in hectares")
	fs.StringVar(&p.treesPlanted, "trees", "", "trees planted")
	fs.StringVar(&p.co2Offset, "co2", "", "CO2 offset in tonnes")
	fs.StringVar(&p.imageURL, "image-url", "", "cover image URL")
	fs.StringVar(&p.startDate, "start-date", "", "start date, YYYY-MM-DD")
	fs.StringVar(&p.status, "status", "", "active, completed or planned")
	fs.StringVar(&p.geometry, "geometry", "", "GeoJSON geometry")
}

func (p *projectFlags) geometryValue() (models.Geometry, error) {
	if p.geometry == "" {
		return nil, nil
	}
	if !json.Valid([]byte(p.geometry)) {
		return nil, fmt.Errorf("--geometry: %w", models.ErrInvalidGeometry)
	}
	return models.Geometry(p.geometry), nil
}

func (p *projectFlags) createRequest(fs *pflag.FlagSet) (models.ProjectCreateRequest, error) {
	geometry, err := p.geometryValue()
	if err != nil {
		return models.ProjectCreateRequest{}, err
	}

	return models.ProjectCreateRequest{
		Name:         p.name,
		Description:  p.description,
		Location:     p.location,
		Latitude:     models.NumericString(p.latitude),
		Longitude:    models.NumericString(p.longitude),
		ProjectType:  p.projectType,
		Area:         changedNumeric(fs, "area", p.area),
		TreesPlanted: changedNumeric(fs, "trees", p.treesPlanted),
		CO2Offset:    changedNumeric(fs, "co2", p.co2Offset),
		ImageURL:     changedString(fs, "image-url", p.imageURL),
		StartDate:    changedString(fs, "start-date", p.startDate),
		Status:       changedString(fs, "status", p.status),
		Geometry:     geometry,
	}, nil
}

// updateRequest carries only the flags given on the command line.
func (p *projectFlags) updateRequest(fs *pflag.FlagSet) (models.ProjectUpdateRequest, error) {
	geometry, err := p.geometryValue()
	if err != nil {
		return models.ProjectUpdateRequest{}, err
	}

	return models.ProjectUpdateRequest{
		Name:         changedString(fs, "name", p.name),
		Description:  changedString(fs, "description", p.description),
		Location:     changedString(fs, "location", p.location),
		Latitude:     changedNumeric(fs, "lat", p.latitude),
		Longitude:    changedNumeric(fs, "lng", p.longitude),
		ProjectType:  changedString(fs, "type", p.projectType),
		Area:         changedNumeric(fs, "area", p.area),
		TreesPlanted: changedNumeric(fs, "trees", p.treesPlanted),
		CO2Offset:    changedNumeric(fs, "co2", p.co2Offset),
		ImageURL:     changedString(fs, "image-url", p.imageURL),
		StartDate:    changedString(fs, "start-date", p.startDate),
		Status:       changedString(fs, "status", p.status),
		Geometry:     geometry,
	}, nil
}

func changedString(fs *pflag.FlagSet, name, value string) *string {
	if !fs.Changed(name) {
		return nil
	}
	return &value
}

func changedNumeric(fs *pflag.FlagSet, name, value string) *models.NumericString {
	if !fs.Changed(name) {
		return nil
	}
	n := models.NumericString(value)
	return &n
}

func (c *cli) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Browse and manage projects",
		Long: `Commands for environmental projects.

Reading is open to everyone; create, update and delete need a signed-in user.

Examples:
  # List all projects
  green-pledge projects list

  # Show one project
  green-pledge projects get <id>

  # Mark a project completed
  green-pledge projects update <id> --status completed`,
	}

	cmd.AddCommand(
		c.projectsListCmd(),
		c.projectsGetCmd(),
		c.projectsCreateCmd(),
		c.projectsUpdateCmd(),
		c.projectsDeleteCmd(),
	)
	return cmd
}

func (c *cli) projectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := c.app.Services.CatalogService.ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			out := cmd.OutOrStdout()
			if c.output == outputJSON {
				return writeJSON(out, projects)
			}
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.ID, p.Name, string(p.ProjectType), string(p.Status), orDash(p.Location), nullDecimal(p.TreesPlanted),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "NAME", "TYPE", "STATUS", "LOCATION", "TREES"}, rows))
			fmt.Fprintf(out, "Total: %d project(s)\n", len(projects))
			return nil
		},
	}
}

func (c *cli) projectsGetCmd() *cobra.Command {
	var copyID bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := c.app.Services.CatalogService.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get project: %w", err)
			}

			c.printProject(cmd, project)
			c.copyID(cmd, copyID, project.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyID, "copy-id", false, "copy the project id to the clipboard")
	return cmd
}

func (c *cli) projectsCreateCmd() *cobra.Command {
	var (
		fields projectFlags
		copyID bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long: `Create a project. Requires a signed-in user.

Example:
  green-pledge projects create --name "Mangrove belt" --description "Coastal replanting" \
    --location "Mombasa, Kenya" --lat -4.04 --lng 39.67 --type restoration --status planned`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := fields.createRequest(cmd.Flags())
			if err != nil {
				return err
			}

			project, err := c.app.Services.CatalogService.CreateProject(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}

			c.printProject(cmd, project)
			c.copyID(cmd, copyID, project.ID)
			return nil
		},
	}

	fields.bind(cmd.Flags())
	cmd.Flags().BoolVar(&copyID, "copy-id", false, "copy the new project id to the clipboard")
	return cmd
}

func (c *cli) projectsUpdateCmd() *cobra.Command {
	var fields projectFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a project",
		Long: `Change the given fields of a project and leave the rest as they are.
Requires a signed-in user.

Example:
  green-pledge projects update <id> --status completed --trees 12000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := fields.updateRequest(cmd.Flags())
			if err != nil {
				return err
			}
			if req.IsEmpty() {
				return fmt.Errorf("nothing to update, pass at least one field flag")
			}

			project, err := c.app.Services.CatalogService.UpdateProject(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("update project: %w", err)
			}

			c.printProject(cmd, project)
			return nil
		},
	}

	fields.bind(cmd.Flags())
	return cmd
}

func (c *cli) projectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long: `Delete a project. Requires a signed-in user. A project that already has
pledges cannot be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.CatalogService.DeleteProject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete project: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Project "+args[0]+" deleted."))
			return nil
		},
	}
}

func (c *cli) printProject(cmd *cobra.Command, p models.Project) {
	if c.output == outputJSON {
		writeJSON(cmd.OutOrStdout(), p)
		return
	}

	startDate := "-"
	if p.StartDate != nil {
		startDate = p.StartDate.Format("2006-01-02")
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderCard(p.Name, []field{
		{"ID", p.ID},
		{"Type", string(p.ProjectType)},
		{"Status", string(p.Status)},
		{"Location", orDash(p.Location)},
		{"Coordinates", p.Latitude.String() + ", " + p.Longitude.String()},
		{"Area (ha)", nullDecimal(p.Area)},
		{"Trees", nullDecimal(p.TreesPlanted)},
		{"CO2 (t)", nullDecimal(p.CO2Offset)},
		{"Start date", startDate},
		{"Image", optional(p.ImageURL)},
		{"Description", orDash(p.Description)},
		{"Created", formatTime(p.CreatedAt)},
	}))
}
