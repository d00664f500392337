package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/element"
	"github.com/gogpu/cursor/render"
)

const (
	defaultInterval = 16 * time.Millisecond
	defaultCanvas   = 48
	sizeStep        = 8
)

// background is the colour transparent cursor pixels are shown over.
var background = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}

// Messages

type tickMsg time.Time

type themeChangedMsg struct{}

type rethemeMsg struct {
	err error
}

// Option configures a Player.
type Option func(*Player)

// WithClock sets the animation clock. Defaults to a monotonic clock.
func WithClock(c cursor.Clock) Option {
	return func(p *Player) { p.clock = c }
}

// WithInterval sets the redraw interval.
func WithInterval(d time.Duration) Option {
	return func(p *Player) { p.interval = d }
}

// WithCanvas sets the canvas size in pixels.
func WithCanvas(width, height int) Option {
	return func(p *Player) { p.target = render.NewPixmapTarget(width, height) }
}

// WithChanges reloads the pointer whenever ch delivers a value, typically
// theme.Watcher.Changes().
func WithChanges(ch <-chan struct{}) Option {
	return func(p *Player) { p.changes = ch }
}

// Player is a Bubble Tea model that plays a pointer's animation in the
// terminal.
type Player struct {
	pointer  *cursor.Pointer
	clock    cursor.Clock
	interval time.Duration
	target   *render.PixmapTarget
	damage   *element.DamageTracker
	changes  <-chan struct{}

	paused  bool
	repaint int
	lastErr string
}

// NewPlayer creates a player for p. The pointer must use a software
// importer so its textures can be drawn into the terminal canvas.
func NewPlayer(p *cursor.Pointer, opts ...Option) Player {
	m := Player{
		pointer:  p,
		clock:    cursor.NewMonotonicClock(),
		interval: defaultInterval,
		target:   render.NewPixmapTarget(defaultCanvas, defaultCanvas),
		damage:   element.NewDamageTracker(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Repaints returns how many times the canvas was redrawn.
func (m Player) Repaints() int { return m.repaint }

// Paused reports whether the animation clock is ignored.
func (m Player) Paused() bool { return m.paused }

// Canvas returns the image the pointer is drawn into.
func (m Player) Canvas() *image.RGBA { return m.target.Image() }

// Init starts the redraw ticker and the theme change listener.
func (m Player) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForChange())
}

func (m Player) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Player) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return themeChangedMsg{}
	}
}

func (m Player) reload() tea.Cmd {
	p := m.pointer
	return func() tea.Msg {
		return rethemeMsg{err: p.Reload()}
	}
}

func (m Player) resize(delta int) tea.Cmd {
	p := m.pointer
	cfg := p.Config()
	cfg.Size = max(sizeStep, cfg.Size+delta)
	return func() tea.Msg {
		return rethemeMsg{err: p.Retheme(cfg)}
	}
}

// Update handles messages.
func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			m.pointer.Tick(m.clock)
		}
		m.draw()
		return m, m.tick()

	case themeChangedMsg:
		return m, tea.Batch(m.reload(), m.waitForChange())

	case rethemeMsg:
		if msg.err != nil {
			m.lastErr = fmt.Sprintf("Re-theme failed: %s", msg.err)
		} else {
			m.lastErr = ""
			m.damage.Reset()
		}
		m.draw()
		return m, nil
	}

	return m, nil
}

func (m Player) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		m.paused = !m.paused
		return m, nil

	case "h":
		if m.pointer.Status().Kind() == cursor.StatusHidden {
			m.pointer.SetStatus(cursor.Default())
		} else {
			m.pointer.SetStatus(cursor.Hidden())
		}
		m.draw()
		return m, nil

	case "r":
		return m, m.reload()

	case "+", "=":
		return m, m.resize(sizeStep)

	case "-":
		return m, m.resize(-sizeStep)
	}

	return m, nil
}

// draw repaints the canvas when the pointer's elements changed.
func (m *Player) draw() {
	elems := m.pointer.RenderElements(image.Point{}, 1, 1)
	defer element.ReleaseAll(elems)

	// Grow the canvas to fit a larger cursor.
	if b := element.Bounds(elems); b.Max.X > m.target.Width() || b.Max.Y > m.target.Height() {
		m.target.Resize(max(b.Max.X, m.target.Width()), max(b.Max.Y, m.target.Height()))
		m.damage.Reset()
	}

	dmg := m.damage.Update(elems)
	if len(dmg) == 0 && !m.damage.NeedsFullRedraw() && m.repaint > 0 {
		return
	}
	m.target.Clear(color.Transparent)
	if err := element.DrawAll(m.target, elems); err != nil {
		m.lastErr = err.Error()
	}
	m.repaint++
}

// View renders the player.
func (m Player) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSubheader())
	b.WriteString("\n\n")
	b.WriteString(HalfBlocks(m.target.Image(), background))
	b.WriteString("\n\n")
	if m.lastErr != "" {
		b.WriteString(warnStyle.Render(m.lastErr))
		b.WriteString("\n")
	}
	b.WriteString(statusBarStyle.Render("space pause · h hide · +/- size · r reload · q quit"))
	return b.String()
}

func (m Player) renderHeader() string {
	title := headerStyle.Render("cursorctl play")
	if m.pointer.Source() == cursor.SourceBuiltin {
		return title + " " + builtinStyle.Render("built-in cursor")
	}
	return title + " " + subheaderStyle.Render(m.pointer.Theme())
}

func (m Player) renderSubheader() string {
	cfg := m.pointer.Config()
	var frames int
	var period uint64
	if tl := m.pointer.Timeline(); tl != nil {
		frames, period = tl.Len(), tl.Total()
	}
	line := subheaderStyle.Render(fmt.Sprintf("%dpx · %d frames · %d/%dms · %s",
		cfg.Size, frames, m.pointer.Offset(), period, m.pointer.Status()))
	if m.paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	return line
}
