package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/slothcoder21/ecs163-25s/cmd/sdviewer/uihelpers"
	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/logging"
	"github.com/slothcoder21/ecs163-25s/src/scale"
	"github.com/slothcoder21/ecs163-25s/src/vizstate"
)

// defaultDataFile is tried when no -file flag or saved path is present.
const defaultDataFile = "data/pokemon_alopez247.csv"

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	// loaded data and derived artifacts
	records    []dataset.Record
	recordByID map[string]*dataset.Record
	palette    *dataset.Palette
	summary    dataset.Summary

	// niced domains, built once per load
	attackDomain  scale.Linear
	defenseDomain scale.Linear
	statDomains   [dataset.NumStats]scale.Linear

	manager *vizstate.Manager

	// display options
	pointSize float64

	// widgets
	table             *widget.Table
	statusLabel       *widget.Label
	pointSizeLabel    *widget.Label
	scatterImgCanvas  *canvas.Image
	donutImgCanvas    *canvas.Image
	parallelImgCanvas *canvas.Image
	scatterOverlay    *markOverlay
	parallelOverlay   *markOverlay
}

// scatterMarkViewPos maps a record's scatter position into the overlay's view
// space, for drawing the hover ring where the dot actually is.
func (state *uiState) scatterMarkViewPos(o *markOverlay, id string) (fyne.Position, bool) {
	imgW, imgH := o.imageSize()
	if imgW <= 0 || imgH <= 0 {
		return fyne.Position{}, false
	}
	box := scatterPlotBox(int(imgW), int(imgH))
	marks := scatterMarks(state.records, state.attackDomain, state.defenseDomain, box, state.manager.Zoom())
	for i := range marks {
		if marks[i].ID == id {
			return o.imageToView(marks[i].X, marks[i].Y), true
		}
	}
	return fyne.Position{}, false
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag string
	var logLevel string
	var screenshotsDir string
	flag.StringVar(&fileFlag, "file", "", "Path to the stats CSV file")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render all charts as PNGs into this directory and exit")
	flag.Parse()
	logging.SetLevel(logLevel)

	if screenshotsDir != "" {
		runScreenshotsMode(fileFlag, screenshotsDir)
		return
	}

	a := app.NewWithID("com.ecs163.statdash")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Stat Dashboard")
	w.Resize(fyne.NewSize(1280, 860))

	state := &uiState{
		app:       a,
		window:    w,
		filePath:  fileFlag,
		manager:   vizstate.New(),
		pointSize: 4,
	}

	fileLabel := widget.NewLabel(truncatePath(state.filePath, 60))
	state.statusLabel = widget.NewLabel("no data loaded")

	// Point size control: - [label] +
	state.pointSizeLabel = widget.NewLabel(fmt.Sprintf("%.0f", state.pointSize))
	decP := widget.NewButton("-", func() {
		if state.pointSize > 2 {
			state.pointSize--
			state.pointSizeLabel.SetText(fmt.Sprintf("%.0f", state.pointSize))
			savePrefs(state)
			redrawCharts(state)
		}
	})
	incP := widget.NewButton("+", func() {
		if state.pointSize < 10 {
			state.pointSize++
			state.pointSizeLabel.SetText(fmt.Sprintf("%.0f", state.pointSize))
			savePrefs(state)
			redrawCharts(state)
		}
	})

	clearBtn := widget.NewButton("Clear Selection", func() {
		state.manager.ClearSelection()
		if state.scatterOverlay != nil {
			state.scatterOverlay.hasBrush = false
			state.scatterOverlay.Refresh()
		}
	})
	resetZoomBtn := widget.NewButton("Reset Zoom", func() {
		animateZoomReset(state)
	})

	// Records table: header row + one row per record. Tapping a row toggles
	// that record's selection, same as clicking its mark.
	state.table = widget.NewTable(
		func() (int, int) {
			rows := len(state.records) + 1
			if rows < 1 {
				rows = 1
			}
			return rows, 9
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				headers := [9]string{"Name", "Type", "HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed", "Legendary"}
				lbl.SetText(headers[id.Col])
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			rix := id.Row - 1
			if rix < 0 || rix >= len(state.records) {
				lbl.SetText("")
				return
			}
			rec := &state.records[rix]
			switch id.Col {
			case 0:
				if state.manager.Selected(rec.ID) {
					lbl.SetText("▸ " + rec.Name)
				} else {
					lbl.SetText(rec.Name)
				}
			case 1:
				lbl.SetText(rec.PrimaryType)
			case 8:
				if rec.Legendary {
					lbl.SetText("yes")
				} else {
					lbl.SetText("-")
				}
			default:
				lbl.SetText(formatStat(rec.Stat(id.Col - 2)))
			}
		},
	)
	state.table.SetColumnWidth(0, 180)
	state.table.SetColumnWidth(1, 100)
	for c := 2; c < 8; c++ {
		state.table.SetColumnWidth(c, 80)
	}
	state.table.SetColumnWidth(8, 90)
	state.table.OnSelected = func(id widget.TableCellID) {
		state.table.UnselectAll()
		rix := id.Row - 1
		if rix < 0 || rix >= len(state.records) {
			return
		}
		state.manager.ToggleSelection(state.records[rix].ID)
	}

	// chart placeholders
	state.scatterImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.scatterImgCanvas.FillMode = canvas.ImageFillContain
	state.donutImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.donutImgCanvas.FillMode = canvas.ImageFillContain
	state.parallelImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.parallelImgCanvas.FillMode = canvas.ImageFillContain

	state.scatterOverlay = newMarkOverlay(state, viewScatter)
	state.parallelOverlay = newMarkOverlay(state, viewParallel)

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state, fileLabel) }),
		widget.NewButton("Reload", func() { loadAll(state, fileLabel) }),
		clearBtn,
		resetZoomBtn,
		widget.NewLabel("Point Size:"), decP, state.pointSizeLabel, incP,
		widget.NewLabel("File:"), fileLabel,
	)

	// Dashboard partitioning: scatter above donut on the left, parallel
	// coordinates fills the right side.
	left := container.NewVSplit(
		container.NewStack(state.scatterImgCanvas, state.scatterOverlay),
		state.donutImgCanvas,
	)
	left.SetOffset(uihelpers.TopPartitionFrac)
	dashboard := container.NewHSplit(
		left,
		container.NewStack(state.parallelImgCanvas, state.parallelOverlay),
	)
	dashboard.SetOffset(uihelpers.LeftPartitionFrac)

	tabs := container.NewAppTabs(
		container.NewTabItem("Dashboard", dashboard),
		container.NewTabItem("Records", state.table),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		if state != nil && state.app != nil {
			state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
		}
	}

	content := container.NewBorder(top, state.statusLabel, nil, nil, tabs)
	w.SetContent(content)

	// Interaction state fan-out: every change re-derives the dependent chart
	// images from scratch, so views can never drift apart.
	state.manager.Register(func(c vizstate.Change) {
		switch c {
		case vizstate.ChangeZoom:
			redrawScatter(state)
		case vizstate.ChangeSelection:
			redrawScatter(state)
			redrawParallel(state)
			if state.table != nil {
				state.table.Refresh()
			}
		default:
			redrawScatter(state)
			redrawParallel(state)
		}
		updateStatus(state)
	})

	// Redraw charts on window resize so they scale with the canvas
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		prevH := int(w.Canvas().Size().Height)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
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
					sz := c.Size()
					curW, curH := int(sz.Width), int(sz.Height)
					if curW != prevW || curH != prevH {
						prevW, prevH = curW, curH
						fyne.Do(func() { redrawCharts(state) })
					}
				}
			}
		}()
	}

	buildMenus(state, fileLabel)
	loadPrefs(state, fileLabel, tabs)
	loadAll(state, fileLabel)

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState, fileLabel *widget.Label) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			fileLabel.SetText(truncatePath(state.filePath, 60))
			savePrefs(state)
			loadAll(state, fileLabel)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state, fileLabel) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state, fileLabel) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state, fileLabel) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Scatter Chart…", func() { exportChartPNG(state, state.scatterImgCanvas, "scatter_chart.png") }),
		fyne.NewMenuItem("Export Donut Chart…", func() { exportChartPNG(state, state.donutImgCanvas, "donut_chart.png") }),
		fyne.NewMenuItem("Export Parallel Chart…", func() { exportChartPNG(state, state.parallelImgCanvas, "parallel_chart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	mainMenu := fyne.NewMainMenu(fileMenu, recentMenu)
	state.window.SetMainMenu(mainMenu)

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// file open dialog
func openFileDialog(state *uiState, fileLabel *widget.Label) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		fileLabel.SetText(truncatePath(state.filePath, 60))
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadAll(state, fileLabel)
	}, state.window)
	d.Show()
}

// loadData loads the dataset and rebuilds everything derived from it: the id
// index, the type palette, the summary and the niced per-stat domains.
func loadData(state *uiState) error {
	defer logging.TimeTrack(time.Now(), "loadData")
	records, err := dataset.LoadSource(state.filePath)
	if err != nil {
		return err
	}
	state.records = records
	state.recordByID = make(map[string]*dataset.Record, len(records))
	for i := range state.records {
		state.recordByID[state.records[i].ID] = &state.records[i]
	}
	state.palette = dataset.BuildPalette(records)
	state.summary = dataset.Summarize(records)
	for d := 0; d < dataset.NumStats; d++ {
		state.statDomains[d] = scale.NewLinear(dataset.Values(records, d), 0, 1)
	}
	state.attackDomain = state.statDomains[dataset.StatAttack]
	state.defenseDomain = state.statDomains[dataset.StatDefense]
	logging.Infof("loaded %d records (%d types, %d legendary) from %s",
		len(records), state.palette.Len(), state.summary.Legendary, state.filePath)
	return nil
}

// load data and render
func loadAll(state *uiState, fileLabel *widget.Label) {
	if state.filePath == "" {
		for _, cand := range []string{defaultDataFile, filepath.Base(defaultDataFile)} {
			if _, err := os.Stat(cand); err == nil {
				state.filePath = cand
				break
			}
		}
		if state.filePath == "" {
			return
		}
		if fileLabel != nil {
			fileLabel.SetText(truncatePath(state.filePath, 60))
		}
	}
	if err := loadData(state); err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	// Stale interaction state from a previous file would reference ids that
	// no longer exist.
	state.manager.ClearSelection()
	state.manager.ResetZoom()
	if state.scatterOverlay != nil {
		state.scatterOverlay.hasBrush = false
	}
	if state.table != nil {
		state.table.Refresh()
	}
	redrawCharts(state)
}

// animateZoomReset eases the scatter zoom back to identity. The animation is
// fire-and-forget: selection and filter state are untouched, and a later
// zoom gesture simply supersedes the remaining frames.
func animateZoomReset(state *uiState) {
	from := state.manager.Zoom()
	if from.IsIdentity() {
		return
	}
	anim := fyne.NewAnimation(canvas.DurationShort, func(p float32) {
		f := float64(p)
		state.manager.SetZoom(scale.Transform{
			K:  from.K + (1-from.K)*f,
			TX: from.TX * (1 - f),
			TY: from.TY * (1 - f),
		})
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

// dashboardSize returns the pixel area the three charts share.
func dashboardSize(state *uiState) (int, int) {
	if state.window != nil && state.window.Canvas() != nil {
		sz := state.window.Canvas().Size()
		if sz.Width > 0 && sz.Height > 0 {
			return int(sz.Width), int(sz.Height)
		}
	}
	return uihelpers.BaseCanvasWidth, uihelpers.BaseCanvasHeight
}

func redrawScatter(state *uiState) {
	if state.scatterImgCanvas == nil {
		return
	}
	sc, _, _ := uihelpers.ViewRects(dashboardSize(state))
	state.scatterImgCanvas.Image = renderScatterChart(state, sc.W, sc.H)
	state.scatterImgCanvas.Refresh()
	if state.scatterOverlay != nil {
		state.scatterOverlay.Refresh()
	}
}

func redrawParallel(state *uiState) {
	if state.parallelImgCanvas == nil {
		return
	}
	_, _, pc := uihelpers.ViewRects(dashboardSize(state))
	state.parallelImgCanvas.Image = renderParallelChart(state, pc.W, pc.H)
	state.parallelImgCanvas.Refresh()
	if state.parallelOverlay != nil {
		state.parallelOverlay.Refresh()
	}
}

func redrawDonut(state *uiState) {
	if state.donutImgCanvas == nil {
		return
	}
	_, dn, _ := uihelpers.ViewRects(dashboardSize(state))
	state.donutImgCanvas.Image = renderDonutChart(state, dn.W, dn.H)
	state.donutImgCanvas.Refresh()
}

func redrawCharts(state *uiState) {
	redrawScatter(state)
	redrawDonut(state)
	redrawParallel(state)
	updateStatus(state)
}

func updateStatus(state *uiState) {
	if state.statusLabel == nil {
		return
	}
	m := state.manager
	parts := []string{fmt.Sprintf("%d records", len(state.records))}
	if n := m.SelectionCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.FilterActive() {
		parts = append(parts, fmt.Sprintf("brush: %d", m.FilterCount()))
	}
	if z := m.Zoom(); !z.IsIdentity() {
		parts = append(parts, fmt.Sprintf("zoom %.1f×", z.K))
	}
	state.statusLabel.SetText(strings.Join(parts, " · "))
}

func exportChartPNG(state *uiState, img *canvas.Image, defaultName string) {
	if state == nil || state.window == nil || img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, img.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(raw, "\n") {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	state.app.Preferences().SetString("recentFiles", "")
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetFloat("pointSize", state.pointSize)
}

func loadPrefs(state *uiState, fileLabel *widget.Label, tabs *container.AppTabs) {
	prefs := state.app.Preferences()
	if state.filePath == "" {
		if f := prefs.StringWithFallback("lastFile", ""); f != "" {
			state.filePath = f
			if fileLabel != nil {
				fileLabel.SetText(truncatePath(f, 60))
			}
		}
	}
	ps := prefs.FloatWithFallback("pointSize", state.pointSize)
	if ps >= 2 && ps <= 10 {
		state.pointSize = ps
		if state.pointSizeLabel != nil {
			state.pointSizeLabel.SetText(fmt.Sprintf("%.0f", ps))
		}
	}
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}

func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
