package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/slothcoder21/ecs163-25s/cmd/sdviewer/uihelpers"
	"github.com/slothcoder21/ecs163-25s/src/logging"
	"github.com/slothcoder21/ecs163-25s/src/vizstate"
)

// runScreenshotsMode renders all three charts at the base dashboard layout
// and writes them as PNGs under outDir. It runs headlessly without creating
// a UI window.
func runScreenshotsMode(filePath, outDir string) {
	if err := writeScreenshots(filePath, outDir); err != nil {
		logging.Errorf("screenshots: %v", err)
		os.Exit(1)
	}
}

func writeScreenshots(filePath, outDir string) error {
	if filePath == "" {
		filePath = defaultDataFile
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	st := &uiState{
		filePath:  filePath,
		manager:   vizstate.New(),
		pointSize: 4,
	}
	if err := loadData(st); err != nil {
		return err
	}

	sc, dn, pc := uihelpers.ViewRects(uihelpers.BaseCanvasWidth, uihelpers.BaseCanvasHeight)
	toRender := []struct {
		name string
		img  image.Image
	}{
		{"scatter.png", renderScatterChart(st, sc.W, sc.H)},
		{"donut.png", renderDonutChart(st, dn.W, dn.H)},
		{"parallel.png", renderParallelChart(st, pc.W, pc.H)},
	}
	for _, item := range toRender {
		if item.img == nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, item.img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logging.Infof("wrote %s", outPath)
	}
	return nil
}
