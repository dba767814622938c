package ui

import (
	"strings"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minBoxWidth = 24
	// chevronWidth is the chevron glyph plus its gap to the box.
	chevronWidth = 2
	// boxHeight is two content lines plus the top and bottom border.
	boxHeight = 4
)

// CarouselModel draws one carousel and relays keyboard and mouse input to its
// controller. The controller and its scheduler are shared by every copy of the
// model, so a copy returned from Update always sees the latest state.
type CarouselModel struct {
	ctrl   *carousel.Controller
	sched  *teaScheduler
	styles Styles
	keys   keyMap

	width int
	// originX/originY is where the parent draws this view, in screen cells.
	originX, originY int
	hovering         bool
}

// NewCarouselModel creates an unmounted carousel; Init mounts it.
func NewCarouselModel(images []string, title string, interval time.Duration, styles Styles) CarouselModel {
	ctrl := carousel.New(images, title, carousel.WithInterval(interval))
	return CarouselModel{
		ctrl:   ctrl,
		sched:  newTeaScheduler(ctrl.ID()),
		styles: styles,
		keys:   defaultKeyMap(),
	}
}

// Init mounts the controller and returns the first tick, if any.
func (m CarouselModel) Init() tea.Cmd {
	m.ctrl.Mount(m.sched)
	return m.sched.Flush()
}

// Unmount releases the timer. The model must not be used afterwards.
func (m CarouselModel) Unmount() {
	m.ctrl.Unmount()
}

// Snapshot exposes the controller state.
func (m CarouselModel) Snapshot() carousel.Snapshot {
	return m.ctrl.Snapshot()
}

// CurrentImage returns the selected image reference, if any.
func (m CarouselModel) CurrentImage() (string, bool) {
	f := m.ctrl.Frame()
	if f.Empty {
		return "", false
	}
	return f.Image.Src, true
}

// SetOrigin tells the model where its top-left cell lands on screen.
func (m *CarouselModel) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetWidth bounds the rendered width.
func (m *CarouselModel) SetWidth(w int) {
	m.width = w
}

// Update handles messages.
func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sched.Handle(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}

	return m, m.sched.Flush()
}

func (m CarouselModel) handleKey(msg tea.KeyMsg) {
	f := m.ctrl.Frame()
	if f.Empty {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Dispatch(f.Prev.Intent)
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Dispatch(f.Next.Intent)
	case key.Matches(msg, m.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i < len(f.Indicators) {
			m.ctrl.Dispatch(f.Indicators[i].Intent)
		}
	case key.Matches(msg, m.keys.Toggle):
		if f.Paused {
			m.ctrl.Dispatch(f.Leave)
		} else {
			m.ctrl.Dispatch(f.Enter)
		}
	}
}

func (m CarouselModel) handleMouse(msg tea.MouseMsg) CarouselModel {
	f := m.ctrl.Frame()
	if f.Empty {
		return m
	}

	l := m.layout(f)
	x, y := msg.X-m.originX, msg.Y-m.originY
	inside := l.surface.contains(x, y)

	switch {
	case inside && !m.hovering:
		m.hovering = true
		m.ctrl.Dispatch(f.Enter)
		logging.UIDebug("pointer entered carousel %s", m.ctrl.ID())
	case !inside && m.hovering:
		m.hovering = false
		m.ctrl.Dispatch(f.Leave)
		logging.UIDebug("pointer left carousel %s", m.ctrl.ID())
	}

	if !inside || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	switch {
	case l.prev.contains(x, y):
		m.ctrl.Dispatch(f.Prev.Intent)
	case l.next.contains(x, y):
		m.ctrl.Dispatch(f.Next.Intent)
	default:
		for i, r := range l.indicators {
			if r.contains(x, y) {
				m.ctrl.Dispatch(f.Indicators[i].Intent)
				break
			}
		}
	}
	return m
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// carouselLayout mirrors View cell for cell.
type carouselLayout struct {
	boxWidth   int
	surface    rect
	prev       rect
	next       rect
	indicators []rect
}

func (m CarouselModel) layout(f carousel.Frame) carouselLayout {
	w := lipgloss.Width(f.Image.Alt)
	if sw := lipgloss.Width(f.Image.Src); sw > w {
		w = sw
	}
	if w < minBoxWidth {
		w = minBoxWidth
	}
	if limit := m.width - 2*chevronWidth - 2; m.width > 0 && w > limit {
		w = limit
		if w < minBoxWidth {
			w = minBoxWidth
		}
	}

	// Row 0-3: chevron, bordered box (w+2), chevron. Row 4: indicators.
	total := chevronWidth + w + 2 + chevronWidth
	l := carouselLayout{
		boxWidth: w,
		surface:  rect{0, 0, total, boxHeight + 1},
		prev:     rect{0, 0, chevronWidth, boxHeight},
		next:     rect{total - chevronWidth, 0, chevronWidth, boxHeight},
	}
	for i := range f.Indicators {
		l.indicators = append(l.indicators, rect{chevronWidth + 2*i, boxHeight, 2, 1})
	}
	return l
}

// View renders the carousel, or nothing for an empty image list.
func (m CarouselModel) View() string {
	f := m.ctrl.Frame()
	if f.Empty {
		return ""
	}
	l := m.layout(f)

	alt := m.styles.ImageAlt.MaxWidth(l.boxWidth).Render(f.Image.Alt)
	src := m.styles.ImageSrc.MaxWidth(l.boxWidth).Render(f.Image.Src)
	box := m.styles.ImageBox.Width(l.boxWidth).Render(alt + "\n" + src)

	prev := m.styles.Chevron.Render("‹") + " "
	next := " " + m.styles.Chevron.Render("›")
	row := lipgloss.JoinHorizontal(lipgloss.Center, prev, box, next)

	var ind strings.Builder
	ind.WriteString(strings.Repeat(" ", chevronWidth))
	for _, i := range f.Indicators {
		if i.Active {
			ind.WriteString(m.styles.IndicatorActive.Render("●"))
		} else {
			ind.WriteString(m.styles.Indicator.Render("○"))
		}
		ind.WriteString(" ")
	}
	if f.Paused {
		ind.WriteString(m.styles.Paused.Render(" ⏸ paused"))
	} else {
		ind.WriteString(m.styles.Playing.Render(" ▶ playing"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, ind.String())
}
