// Package app contains the bubbletea program that hosts a toast manager: it
// owns the document and the frame clock, forwards key presses as key-down
// events and renders the toast container.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/schedule"
	"github.com/riordanpawley/toaster/internal/toast"
	"github.com/riordanpawley/toaster/internal/ui/stack"
	"github.com/riordanpawley/toaster/internal/ui/statusbar"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// frameInterval is the animation frame period.
const frameInterval = time.Second / 60

type frameMsg time.Time

type taskMsg struct {
	run func()
}

type loopStoppedMsg struct {
	err error
}

type sample struct {
	level string
	title string
	body  string
}

var samples = []sample{
	{"info", "Heads up", "Something happened that you may want to know about."},
	{"success", "Saved", "Your changes were written <b>successfully</b>."},
	{"warning", "Careful", "This action cannot be undone."},
	{"error", "Failed", "The operation could not be completed.<br>Try again later."},
}

// Model is the main application state
type Model struct {
	doc      *dom.Document
	loop     *schedule.Loop
	manager  *toast.Manager
	renderer *stack.Renderer
	styles   *styles.Styles
	keys     keyMap
	help     help.Model
	logger   *slog.Logger

	baseClasses []string
	shown       int
	lastClosed  time.Time

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// New builds the host document and toast manager from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := cfg.ToastOptions()
	s := styles.New()
	renderer := stack.New(s, opts)

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		doc:         dom.NewDocument(dom.WithStylesheet(cfg.Stylesheet()), dom.WithMeasurer(renderer.Measure)),
		loop:        schedule.NewLoop(),
		renderer:    renderer,
		styles:      s,
		keys:        newKeyMap(opts.KeyboardShortcutKey, opts.UseKeyboardShortcutToClose),
		help:        help.New(),
		logger:      logger,
		baseClasses: append([]string(nil), opts.CustomClasses...),
		ctx:         ctx,
		cancel:      cancel,
		width:       80,
		height:      24,
	}
	m.help.Styles.ShortKey = s.HelpKey
	m.help.Styles.ShortDesc = s.HelpDesc

	manager, err := toast.New(m.doc, m.loop, logger,
		toast.WithOptions(opts),
		toast.WithOnClose(func(*toast.Manager) { m.lastClosed = time.Now() }),
	)
	if err != nil {
		cancel()
		m.loop.Stop()
		return nil, fmt.Errorf("failed to create toast manager: %w", err)
	}
	m.manager = manager

	return m, nil
}

// Manager returns the hosted toast manager.
func (m *Model) Manager() *toast.Manager { return m.manager }

// Init starts the frame clock and the timer pump
func (m *Model) Init() tea.Cmd {
	return tea.Batch(frameTick(), waitForTask(m.ctx, m.loop))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.renderer.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.loop.RunFrame()
		return m, frameTick()

	case taskMsg:
		msg.run()
		return m, waitForTask(m.ctx, m.loop)

	case loopStoppedMsg:
		m.logger.Debug("timer loop stopped", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		// The configured shortcut wins over the built-in bindings.
		m.doc.DispatchKeyDown(keyEvent(msg))
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.Shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Show):
		m.showSample()
		return m, nil
	case key.Matches(msg, m.keys.DismissNow):
		m.manager.Hide(true)
		return m, nil
	}

	// Everything else reaches the document; the manager's shortcut listener
	// decides whether it dismisses.
	m.doc.DispatchKeyDown(keyEvent(msg))
	return m, nil
}

func (m *Model) showSample() {
	s := samples[m.shown%len(samples)]
	m.shown++

	classes := append(append([]string(nil), m.baseClasses...), m.manager.Options().ToastClass+"--"+s.level)
	m.Show(
		toast.WithTitle(s.title),
		toast.WithContent(fmt.Sprintf("%s<br>The %s toast.", s.body, humanize.Ordinal(m.shown))),
		toast.WithCustomClasses(classes...),
	)
}

// Show adds a toast and hands the manager's resulting class names to the
// renderer.
func (m *Model) Show(opts ...toast.Option) {
	m.manager.Show(opts...)
	m.renderer.SetOptions(m.manager.Options())
}

// Shutdown releases the manager and stops the timer loop. It is safe to call
// more than once.
func (m *Model) Shutdown() {
	_ = m.manager.Close()
	m.loop.Stop()
	m.cancel()
}

// View renders the toast stack above the status bar
func (m *Model) View() string {
	container := m.manager.Container()
	view := m.renderer.Place(m.renderer.Render(container), container, m.width, m.height-1)

	bar := statusbar.New(m.manager.Len(), m.lastClosed, time.Now(), m.help.View(m.keys), m.width, m.styles)
	return view + "\n" + bar.Render()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForTask(ctx context.Context, loop *schedule.Loop) tea.Cmd {
	return func() tea.Msg {
		run, err := loop.Next(ctx)
		if err != nil {
			return loopStoppedMsg{err: err}
		}
		return taskMsg{run: run}
	}
}
