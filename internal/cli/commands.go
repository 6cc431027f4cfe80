package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/app"
	"github.com/riordanpawley/toaster/internal/config"
	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/schedule"
	"github.com/riordanpawley/toaster/internal/toast"
)

// Dependencies holds what every command needs
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	closeLog func() error
}

// NewDependencies creates a logger for cfg. Logs go to logFile when given and
// are discarded otherwise, so the alternate screen stays intact.
func NewDependencies(cfg *config.Config, logFile string) (*Dependencies, error) {
	var (
		w        io.Writer = io.Discard
		closeLog           = func() error { return nil }
	)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	return &Dependencies{Config: cfg, Logger: logger, closeLog: closeLog}, nil
}

// Close releases the log file, if any
func (d *Dependencies) Close() error {
	return d.closeLog()
}

// RunCommand starts the interactive toast host
func RunCommand(deps *Dependencies) error {
	model, err := app.New(deps.Config, deps.Logger)
	if err != nil {
		return err
	}
	defer model.Shutdown()

	deps.Logger.Info("starting toast host",
		"position", deps.Config.Container.Position,
		"direction", deps.Config.Container.Direction)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// RenderOptions controls a scripted render
type RenderOptions struct {
	Count   int
	Advance time.Duration
	Title   string
	Content string
}

// RenderCommand shows Count toasts on a virtual clock, advances it and writes
// the resulting body markup to w
func RenderCommand(deps *Dependencies, opts RenderOptions, w io.Writer) error {
	doc := dom.NewDocument(dom.WithStylesheet(deps.Config.Stylesheet()))
	clock := schedule.NewManual()

	manager, err := toast.New(doc, clock, deps.Logger, toast.WithOptions(deps.Config.ToastOptions()))
	if err != nil {
		return err
	}
	defer manager.Close()

	for i := 1; i <= opts.Count; i++ {
		title := opts.Title
		if opts.Count > 1 {
			title = fmt.Sprintf("%s %d", opts.Title, i)
		}
		manager.Show(toast.WithTitle(title), toast.WithContent(opts.Content))
	}

	clock.Advance(opts.Advance)
	clock.Frame()
	clock.Frame()

	deps.Logger.Debug("rendered toasts", "shown", opts.Count, "remaining", manager.Len())
	_, err = fmt.Fprintln(w, doc.Body().OuterHTML())
	return err
}

// ConfigCommand prints the effective configuration
func ConfigCommand(deps *Dependencies, w io.Writer) error {
	cfg := deps.Config
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"container.class", cfg.Container.Class},
		{"container.id", cfg.Container.ID},
		{"container.position", cfg.Container.Position},
		{"container.direction", cfg.Container.Direction},
		{"toast.class", cfg.Toast.Class},
		{"toast.title_class", cfg.Toast.TitleClass},
		{"toast.content_class", cfg.Toast.ContentClass},
		{"toast.show_class", cfg.Toast.ShowClass},
		{"toast.hide_class", cfg.Toast.HideClass},
		{"toast.custom_classes", strings.Join(cfg.Toast.CustomClasses, ",")},
		{"toast.close_after_seconds", fmt.Sprint(cfg.Toast.CloseAfterSeconds)},
		{"toast.auto_close", fmt.Sprint(cfg.Toast.AutoClose)},
		{"keyboard.enabled", fmt.Sprint(cfg.Keyboard.Enabled)},
		{"keyboard.key", cfg.Keyboard.Key},
		{"log.level", cfg.Log.Level},
		{"log.file", cfg.Log.File},
	}

	classes := make([]string, 0, len(cfg.Styles))
	for class := range cfg.Styles {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		s := cfg.Styles[class]
		rows = append(rows,
			[2]string{"styles." + class + ".height", s.Height},
			[2]string{"styles." + class + ".margin_bottom", s.MarginBottom},
			[2]string{"styles." + class + ".transition_duration", s.TransitionDuration},
		)
	}

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}
