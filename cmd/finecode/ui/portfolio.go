package ui

import (
	"fmt"
	"strings"
	"time"

	"finecode/internal/config"
	"finecode/internal/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// PortfolioOptions configures a PortfolioModel.
type PortfolioOptions struct {
	// Interval overrides the configured carousel interval when non-zero.
	Interval time.Duration
	// Watcher, if set, feeds configuration reloads into the model.
	Watcher *ConfigWatcher
}

// PortfolioModel is the top-level TUI: project tabs, the selected project's
// carousel and its description. Exactly one carousel is mounted at a time.
type PortfolioModel struct {
	cfg      *config.Config
	opts     PortfolioOptions
	styles   Styles
	keys     keyMap
	help     help.Model
	renderer *glamour.TermRenderer

	carousel CarouselModel
	active   int

	width, height int
	status        string
	statusErr     bool
	quitting      bool
}

// NewPortfolioModel builds the model. The first project's carousel is
// mounted by Init.
func NewPortfolioModel(cfg *config.Config, opts PortfolioOptions) PortfolioModel {
	styles := NewStyles(ThemeFor(cfg.UI.Theme))

	h := help.New()
	h.ShowAll = cfg.UI.ShowHelp

	m := PortfolioModel{
		cfg:    cfg,
		opts:   opts,
		styles: styles,
		keys:   defaultKeyMap(),
		help:   h,
	}
	m.renderer = newDescriptionRenderer(styles.Theme, cfg.UI.DescriptionWidth)
	m.carousel = m.newCarousel()
	return m
}

func newDescriptionRenderer(theme Theme, width int) *glamour.TermRenderer {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.UI("markdown renderer unavailable: %v", err)
		return nil
	}
	return renderer
}

func (m PortfolioModel) interval() time.Duration {
	if m.opts.Interval > 0 {
		return m.opts.Interval
	}
	return m.cfg.Carousel.GetInterval()
}

func (m PortfolioModel) project() (config.Project, bool) {
	if m.active < 0 || m.active >= len(m.cfg.Portfolio.Projects) {
		return config.Project{}, false
	}
	return m.cfg.Portfolio.Projects[m.active], true
}

func (m PortfolioModel) newCarousel() CarouselModel {
	p, _ := m.project()
	c := NewCarouselModel(p.Images, p.Title, m.interval(), m.styles)
	c.SetWidth(m.width)
	return c
}

// Init mounts the first carousel and starts listening for reloads.
func (m PortfolioModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.carousel.Init()}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.opts.Watcher.Wait())
	}
	if p, ok := m.project(); ok {
		logging.UI("showing project %s", p.ID)
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.carousel.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextProject):
			return m.switchProject(m.active + 1)
		case key.Matches(msg, m.keys.PrevProject):
			return m.switchProject(m.active - 1)
		case key.Matches(msg, m.keys.Copy):
			m.copyImage()
			return m, nil
		}

	case tea.MouseMsg:
		m.carousel.SetOrigin(m.carouselOrigin())

	case portfolioReloadedMsg:
		return m.reload(msg.cfg)

	case watcherErrorMsg:
		m.status = fmt.Sprintf("Config reload failed: %v", msg.err)
		m.statusErr = true
		return m, m.waitForReload()
	}

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	return m, cmd
}

func (m PortfolioModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.carousel.Unmount()
	if m.opts.Watcher != nil {
		m.opts.Watcher.Stop()
	}
	logging.UI("quit")
	return m, tea.Quit
}

// switchProject unmounts the current carousel and mounts the one for
// project i, wrapping around the project list.
func (m PortfolioModel) switchProject(i int) (tea.Model, tea.Cmd) {
	n := len(m.cfg.Portfolio.Projects)
	if n <= 1 {
		return m, nil
	}
	i = ((i % n) + n) % n
	if i == m.active {
		return m, nil
	}

	m.carousel.Unmount()
	m.active = i
	m.carousel = m.newCarousel()
	m.status, m.statusErr = "", false

	p, _ := m.project()
	logging.UI("showing project %s", p.ID)
	return m, m.carousel.Init()
}

// reload swaps in a new configuration. The selected project is kept by id
// when it still exists; the carousel is always remounted.
func (m PortfolioModel) reload(cfg *config.Config) (tea.Model, tea.Cmd) {
	current, _ := m.project()

	m.carousel.Unmount()
	m.cfg = cfg
	m.active = 0
	for i, p := range cfg.Portfolio.Projects {
		if p.ID == current.ID {
			m.active = i
			break
		}
	}
	m.renderer = newDescriptionRenderer(m.styles.Theme, cfg.UI.DescriptionWidth)
	m.carousel = m.newCarousel()
	m.status, m.statusErr = "Config reloaded", false

	return m, tea.Batch(m.carousel.Init(), m.waitForReload())
}

func (m PortfolioModel) waitForReload() tea.Cmd {
	if m.opts.Watcher == nil {
		return nil
	}
	return m.opts.Watcher.Wait()
}

func (m *PortfolioModel) copyImage() {
	src, ok := m.carousel.CurrentImage()
	if !ok {
		return
	}
	if err := clipboardWriteAll(src); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = "Copied " + src
	m.statusErr = false
}

func (m PortfolioModel) headerView() string {
	name := m.cfg.Portfolio.Company
	if name == "" {
		name = m.cfg.Name
	}
	return m.styles.Header.Render(name)
}

func (m PortfolioModel) tabsView() string {
	tabs := make([]string, 0, len(m.cfg.Portfolio.Projects))
	for i, p := range m.cfg.Portfolio.Projects {
		label := p.Title
		if label == "" {
			label = p.ID
		}
		if i == m.active {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return " " + strings.Join(tabs, m.styles.Muted.Render(" │ "))
}

// carouselOrigin is the screen cell of the carousel's top-left corner. The
// carousel is the first thing inside the padded content block.
func (m PortfolioModel) carouselOrigin() (int, int) {
	top, _, _, left := m.styles.Content.GetPadding()
	y := lipgloss.Height(m.headerView()) + lipgloss.Height(m.tabsView()) + top
	return left, y
}

func (m PortfolioModel) descriptionView(p config.Project) string {
	if p.Description == "" {
		return ""
	}
	if m.renderer == nil {
		return p.Description
	}
	out, err := m.renderer.Render(p.Description)
	if err != nil {
		return p.Description
	}
	return strings.TrimSpace(out)
}

// View renders the portfolio.
func (m PortfolioModel) View() string {
	if m.quitting {
		return ""
	}

	var body strings.Builder
	p, ok := m.project()
	if !ok {
		body.WriteString(m.styles.Muted.Render("No projects configured."))
	} else {
		if c := m.carousel.View(); c != "" {
			body.WriteString(c)
		} else {
			body.WriteString(m.styles.Subtitle.Render("No screenshots for this project."))
		}
		body.WriteString("\n\n")
		body.WriteString(m.styles.Title.Render(p.Title))
		if d := m.descriptionView(p); d != "" {
			body.WriteString("\n")
			body.WriteString(d)
		}
	}

	if m.status != "" {
		body.WriteString("\n\n")
		if m.statusErr {
			body.WriteString(m.styles.Error.Render(m.status))
		} else {
			body.WriteString(m.styles.Success.Render(m.status))
		}
	}

	body.WriteString("\n\n")
	body.WriteString(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.tabsView(),
		m.styles.Content.Render(body.String()),
	)
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config, opts PortfolioOptions) error {
	p := tea.NewProgram(
		NewPortfolioModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
