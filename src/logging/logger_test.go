package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLevel("info")

	msg := "loaded 650 rows (100.0% of file) in 12ms"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of file)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestSetLevel_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() {
		baseLogger = saved
		SetLevel("info")
	}()

	SetLevel("warn")
	Debugf("debug line")
	Infof("info line")
	Warnf("warn line")
	Errorf("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Fatalf("below-threshold lines leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn line") || !strings.Contains(out, "[ERROR] error line") {
		t.Fatalf("expected warn/error lines, got: %s", out)
	}
}

func TestSetLevel_IgnoresUnknownName(t *testing.T) {
	SetLevel("info")
	SetLevel("verbose-ish")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level name changed the level to %d", GetLevel())
	}
}
