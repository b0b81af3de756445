package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/owen-vb/creep/internal/autoscroll"
	"github.com/owen-vb/creep/internal/frameclock"
	"github.com/owen-vb/creep/internal/playlist"
	"github.com/owen-vb/creep/internal/util"
	"github.com/owen-vb/creep/internal/viewport"
)

const (
	defaultSpeed = 3.0 // cells per second
	speedStep    = 1.0
	minSpeed     = 1.0
	maxSpeed     = 30.0
	wheelDelta   = 3.0
	resumeDelay  = 100 * time.Millisecond
	statusHold   = 4 * time.Second
)

// eventSink collects observer callbacks fired by the scroller during a clock
// step, so the update loop can act on them after the step returns. Shared by
// pointer across model copies.
type eventSink struct {
	boundary  autoscroll.Edge
	direction autoscroll.Direction
}

func (e *eventSink) takeBoundary() autoscroll.Edge {
	b := e.boundary
	e.boundary = ""
	return b
}

func (e *eventSink) takeDirection() autoscroll.Direction {
	d := e.direction
	e.direction = ""
	return d
}

// Model is the Bubbletea model for the reading screen.
type Model struct {
	clock    *frameclock.Manual
	vp       *viewport.Viewport
	scroller *autoscroll.Scroller
	docs     *playlist.Playlist
	events   *eventSink
	thumb    *thumbSpring
	gauge    progress.Model

	title      string
	speed      float64
	bounce     bool
	horizontal bool

	width     int
	height    int
	lastFrame time.Time
	elapsed   time.Duration

	status   string
	statusAt time.Time
	quitting bool
}

// New creates a Model reading the given playlist, with the current
// document's content already loaded.
func New(docs *playlist.Playlist, content string) (Model, error) {
	title := ""
	if doc := docs.Current(); doc != nil {
		title = doc.Title
	}
	m := Model{
		clock:  frameclock.NewManual(time.Now()),
		vp:     viewport.New(content, autoscroll.Vertical),
		docs:   docs,
		events: &eventSink{},
		thumb:  newThumbSpring(int(time.Second / frameInterval)),
		gauge: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		title: title,
		speed: defaultSpeed,
	}
	s, err := m.newScroller()
	if err != nil {
		return Model{}, err
	}
	m.scroller = s
	return m, nil
}

// newScroller builds a scroller for the model's current settings. The old
// one, if any, must already be stopped.
func (m Model) newScroller() (*autoscroll.Scroller, error) {
	opts := autoscroll.DefaultOptions()
	opts.Port = m.vp
	opts.Clock = m.clock
	opts.Speed = m.speed
	opts.Bounce = m.bounce
	opts.Horizontal = m.horizontal
	opts.PauseOnTouch = true
	opts.ReconcileForeignScroll = true
	opts.ResumeDelay = resumeDelay
	events := m.events
	opts.OnDirectionChange = func(d autoscroll.Direction) {
		events.direction = d
	}
	opts.OnBoundaryReached = func(e autoscroll.Edge) {
		events.boundary = e
	}
	return autoscroll.New(opts)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("creep — "+m.title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case docLoadedMsg:
		return m.handleDocLoaded(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.SetSize(m.contentWidth(), m.contentHeight())
		m.gauge.Width = m.contentWidth()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.scroller.Stop()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	switch msg.String() {
	case " ":
		if m.scroller.Running() {
			m.scroller.Stop()
		} else {
			m.scroller.Start()
		}
		return m, nil
	case "+", "=":
		return m.adjustSpeed(speedStep), nil
	case "-", "_":
		return m.adjustSpeed(-speedStep), nil
	case "b":
		m.bounce = !m.bounce
		return m.rebuildScroller()
	case "x":
		m.horizontal = !m.horizontal
		if m.horizontal {
			m.vp.SetAxis(autoscroll.Horizontal)
		} else {
			m.vp.SetAxis(autoscroll.Vertical)
		}
		m.thumb.snap(0)
		return m.rebuildScroller()
	case "j", "down":
		return m.manualScroll(wheelDelta), nil
	case "k", "up":
		return m.manualScroll(-wheelDelta), nil
	case "g":
		return m.manualScroll(-m.vp.Max() - 1), nil
	case "G":
		return m.manualScroll(m.vp.Max() + 1), nil
	case "n":
		return m.switchDoc(m.docs.Advance)
	case "p":
		return m.switchDoc(m.docs.Previous)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		return m.manualScroll(wheelDelta), nil
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		return m.manualScroll(-wheelDelta), nil
	case msg.Action == tea.MouseActionPress:
		m.scroller.NotifyTouchStart()
	case msg.Action == tea.MouseActionRelease:
		m.scroller.NotifyTouchEnd()
	case msg.Action == tea.MouseActionMotion:
		m.scroller.NotifyPointerMove()
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (Model, tea.Cmd) {
	d := frameInterval
	if !m.lastFrame.IsZero() {
		if since := now.Sub(m.lastFrame); since > 0 && since < time.Second {
			d = since
		}
	}
	m.lastFrame = now
	m.elapsed += d
	m.clock.Step(d)
	m.thumb.step(m.vp.Percent())

	var cmds []tea.Cmd
	if edge := m.events.takeBoundary(); edge != "" {
		m = m.setStatus("reached " + string(edge))
		if atEndEdge(edge) && m.docs.Advance() {
			cmds = append(cmds, loadDoc(*m.docs.Current()))
		}
	}
	if dir := m.events.takeDirection(); dir != "" {
		m = m.setStatus("bounced, now scrolling " + string(dir))
	}
	if m.status != "" && m.clock.Now().Sub(m.statusAt) > statusHold {
		m.status = ""
	}
	cmds = append(cmds, frameCmd())
	return m, tea.Batch(cmds...)
}

func (m Model) handleDocLoaded(msg docLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.setStatus(fmt.Sprintf("cannot open %s: %v", msg.title, msg.err)), nil
	}
	m.title = msg.title
	m.vp.SetContent(msg.content)
	m.vp.SetSize(m.contentWidth(), m.contentHeight())
	m.thumb.snap(0)
	m.scroller.Start()
	return m, tea.SetWindowTitle("creep — " + m.title)
}

func (m Model) adjustSpeed(delta float64) Model {
	s := m.speed + delta
	if s < minSpeed {
		s = minSpeed
	}
	if s > maxSpeed {
		s = maxSpeed
	}
	m.speed = s
	if err := m.scroller.SetSpeed(s); err != nil {
		return m.setStatus(err.Error())
	}
	return m.setStatus(util.FormatSpeed(s))
}

// manualScroll is user-driven movement: it moves the viewport directly and
// reports the new position to the scroller as a scroll notification, which
// is what makes the loop back off and debounce its resume.
func (m Model) manualScroll(delta float64) Model {
	m.vp.ScrollBy(delta)
	m.scroller.NotifyScroll(m.vp.Position())
	return m
}

func (m Model) switchDoc(move func() bool) (Model, tea.Cmd) {
	if m.docs.Len() < 2 || !move() {
		return m, nil
	}
	m.scroller.Stop()
	return m, loadDoc(*m.docs.Current())
}

// rebuildScroller replaces the scroller after a setting that is fixed for
// the lifetime of an instance (bounce, axis) changed.
func (m Model) rebuildScroller() (Model, tea.Cmd) {
	wasRunning := m.scroller.Running()
	m.scroller.Stop()
	s, err := m.newScroller()
	if err != nil {
		return m.setStatus(err.Error()), nil
	}
	m.scroller = s
	if !wasRunning {
		s.Stop()
	}
	return m, nil
}

func (m Model) setStatus(s string) Model {
	m.status = s
	m.statusAt = m.clock.Now()
	return m
}

func loadDoc(doc playlist.Document) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(doc.Path)
		return docLoadedMsg{title: doc.Title, content: string(data), err: err}
	}
}

func atEndEdge(e autoscroll.Edge) bool {
	return e == autoscroll.EdgeBottom || e == autoscroll.EdgeRight
}

func (m Model) contentWidth() int {
	w := m.width - 5
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("creep")

	title := titleStyle.Render(m.title)
	if m.docs.Len() > 1 {
		title += metaStyle.Render(fmt.Sprintf("  (%d/%d)", m.docs.CurrentIndex()+1, m.docs.Len()))
	}

	body := m.vp.View()
	if !m.horizontal {
		bar := barStyle.Render(renderScrollbar(m.contentHeight(), m.thumb.pos))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", bar)
	}

	statusIcon := "▶"
	statusText := "scrolling"
	if !m.scroller.Running() {
		statusIcon = "■"
		statusText = "stopped"
	}
	dir := "down"
	if m.horizontal {
		dir = "right"
	}
	mode := "stop at end"
	if m.bounce {
		mode = "bounce"
	}
	statusLine := statusStyle.Render(fmt.Sprintf(
		"%s %s  %s  %s  %s  %s",
		statusIcon, statusText, dir, util.FormatSpeed(m.speed), mode,
		util.FormatDuration(m.elapsed),
	))

	gauge := m.gauge.ViewAs(m.vp.Percent()) +
		metaStyle.Render("  "+util.FormatPercent(m.vp.Percent()))

	help := helpStyle.Render(helpText(m.docs.Len() > 1))

	lines := "\n"
	lines += "  " + header + "\n"
	lines += "\n"
	lines += "  " + title + "\n"
	lines += "\n"
	lines += indent(body, "  ") + "\n"
	lines += "\n"
	lines += "  " + statusLine + "\n"
	lines += "  " + gauge + "\n"
	if m.status != "" {
		lines += "  " + metaStyle.Render(m.status) + "\n"
	}
	lines += "\n"
	lines += "  " + help + "\n"

	return lines
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
