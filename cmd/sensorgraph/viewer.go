package main

import (
	"fmt"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/rowan-sl/hayselnut/cmd/sensorgraph/uihelpers"
	"github.com/rowan-sl/hayselnut/src/logging"
	"github.com/rowan-sl/hayselnut/src/readings"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    Config

	readings []readings.Reading

	chartImg    *canvas.Image
	statusLabel *widget.Label
}

// runViewer shows the chart window and blocks until it is closed.
func runViewer(cfg Config, rs []readings.Reading) error {
	a := app.NewWithID("org.hayselnut.sensorgraph")
	w := a.NewWindow("Sensor Graph")
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	state := newViewer(a, w, cfg, rs)
	watchResize(state)
	w.ShowAndRun()
	return nil
}

// newViewer lays out the window contents and draws the first chart.
func newViewer(a fyne.App, w fyne.Window, cfg Config, rs []readings.Reading) *uiState {
	state := &uiState{app: a, window: w, cfg: cfg, readings: rs}

	state.chartImg = canvas.NewImageFromImage(nil)
	state.chartImg.FillMode = canvas.ImageFillContain
	state.statusLabel = widget.NewLabel("")

	w.SetContent(container.NewBorder(state.statusLabel, nil, nil, nil, state.chartImg))
	buildMenus(state)
	updateStatus(state)
	redrawChart(state)
	return state
}

// chartSize is the pixel size to render at: the configured size until the window has
// a canvas, then whatever the canvas offers.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		if state == nil {
			return uihelpers.ComputeChartDimensions(0, 0)
		}
		return uihelpers.ComputeChartDimensions(state.cfg.Width, state.cfg.Height)
	}
	sz := state.window.Canvas().Size()
	if sz.Width <= 0 {
		return uihelpers.ComputeChartDimensions(state.cfg.Width, state.cfg.Height)
	}
	// leave room for the status line above the chart
	return uihelpers.ComputeChartDimensions(int(sz.Width), int(sz.Height)-40)
}

func redrawChart(state *uiState) {
	img := renderChart(state)
	if state.chartImg == nil {
		return
	}
	cw, chh := chartSize(state)
	state.chartImg.Image = img
	state.chartImg.SetMinSize(fyne.NewSize(float32(cw)/2, float32(chh)/2))
	state.chartImg.Refresh()
}

func updateStatus(state *uiState) {
	if state.statusLabel == nil {
		return
	}
	state.statusLabel.SetText(fmt.Sprintf("%s: %s", state.cfg.File, readings.Summarize(state.readings)))
}

// reload re-reads the configured file. On failure the current readings are kept.
func reload(state *uiState) error {
	rs, err := loadReadings(state.cfg)
	if err != nil {
		return err
	}
	state.readings = rs
	updateStatus(state)
	redrawChart(state)
	return nil
}

func reloadAction(state *uiState) {
	if err := reload(state); err != nil {
		logging.Errorf("reload failed: %v", err)
		dialog.ShowError(err, state.window)
	}
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload", func() { reloadAction(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { reloadAction(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

// watchResize redraws the chart whenever the canvas width changes. The poller stops
// when the window closes.
func watchResize(state *uiState) {
	w := state.window
	if w.Canvas() == nil {
		return
	}
	prevW := int(w.Canvas().Size().Width)
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { redrawChart(state) })
				}
			}
		}
	}()
}
