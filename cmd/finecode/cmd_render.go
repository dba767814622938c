package main

import (
	"fmt"

	"finecode/internal/carousel"
	"finecode/internal/markup"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
)

var (
	renderProject string
	renderIndex   int
	renderPage    bool
)

// renderCmd prints a project's carousel as HTML
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a project's carousel as HTML markup",
	Long: `Renders the carousel of one project, showing the screenshot at --index,
as the HTML the portfolio site uses. A project without screenshots renders
nothing.

Example:
  finecode render --project portfolio-site --index 1 --page > carousel.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderProject, "project", "p", "", "Project id (default: first project)")
	renderCmd.Flags().IntVarP(&renderIndex, "index", "i", 0, "Selected screenshot (0-based)")
	renderCmd.Flags().BoolVar(&renderPage, "page", false, "Wrap the markup in a standalone HTML page")
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := findProject(currentConfig(), renderProject)
	if err != nil {
		return err
	}
	if len(p.Images) > 0 && (renderIndex < 0 || renderIndex >= len(p.Images)) {
		return fmt.Errorf("index %d out of range: project %s has %d images", renderIndex, p.ID, len(p.Images))
	}

	f := carousel.Render(p.Images, p.Title, carousel.Snapshot{Index: renderIndex, State: carousel.StatePlaying})

	var c templ.Component = markup.Carousel(f)
	if renderPage {
		title := p.Title
		if title == "" {
			title = p.ID
		}
		c = markup.Page(title, c)
	}

	if err := c.Render(commandContext(cmd), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
