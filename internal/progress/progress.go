// Package progress shows a small terminal dashboard while the
// dispatcher feeds root words and workers stream solutions back. It's
// a read-only sibling of an interactive search UI: there is nothing
// here to type into, only counters to watch update.
package progress

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jroimartin/gocui"

	"wordsquares/internal/lib/logger/sl"
	"wordsquares/internal/metrics"
	"wordsquares/internal/utils/format"
)

// Dashboard renders live run counters in a terminal UI.
type Dashboard struct {
	log     *slog.Logger
	gui     *gocui.Gui
	run     *metrics.Run
	total   int
	tickers chan struct{}
}

// New constructs a Dashboard bound to run's counters. total is the
// dictionary size, shown as the denominator of dispatch progress.
func New(log *slog.Logger, run *metrics.Run, total int) (*Dashboard, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("progress.New: %w", err)
	}

	return &Dashboard{
		log:     log,
		gui:     g,
		run:     run,
		total:   total,
		tickers: make(chan struct{}),
	}, nil
}

// Close tears down the terminal UI.
func (d *Dashboard) Close() {
	close(d.tickers)
	d.gui.Close()
}

// Run starts the refresh loop and blocks until the dashboard is closed
// (via Ctrl+C) or the caller signals completion through done.
func (d *Dashboard) Run(done <-chan struct{}) error {
	d.gui.Cursor = false
	d.gui.SetManagerFunc(d.layout)

	if err := d.gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		return gocui.ErrQuit
	}); err != nil {
		d.log.Error("failed to set keybinding", "error", sl.Err(err))
	}

	go d.refreshLoop()

	go func() {
		select {
		case <-done:
			d.gui.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		case <-d.tickers:
		}
	}()

	if err := d.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return fmt.Errorf("progress.Run: %w", err)
	}
	return nil
}

func (d *Dashboard) refreshLoop() {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.gui.Update(func(*gocui.Gui) error { return nil })
		case <-d.tickers:
			return
		}
	}
}

func (d *Dashboard) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	v, err := g.SetView("progress", 0, 0, maxX-1, maxY-1)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "word square search"
		v.Wrap = true
	}

	v.Clear()
	fmt.Fprintf(v, "dispatched: %d / %d roots\n", d.run.Dispatched(), d.total)
	fmt.Fprintf(v, "completed:  %d / %d roots\n", d.run.Completed(), d.total)
	fmt.Fprintf(v, "solutions:  %d\n", d.run.Solutions())
	fmt.Fprintf(v, "elapsed:    %s\n", format.Duration(d.run.Elapsed()))
	return nil
}
