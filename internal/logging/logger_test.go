package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/tierrename/internal/config"
)

func newTestLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg, WithOutput(&out, &errOut))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	return l, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Debug(true, "test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "tierrename.log")
	l, _, _ := newTestLogger(t, cfg)
	l.Error("to file")
	l.Progress("Renaming: %s -> %s", "a.png", "tier1_01.png")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[ERROR] to file")) {
		t.Errorf("log file missing error line: %s", string(b))
	}
	if !bytes.Contains(b, []byte("Renaming: a.png -> tier1_01.png\n")) {
		t.Errorf("log file missing progress line: %s", string(b))
	}
}

func TestLevels_Routing(t *testing.T) {
	l, out, errOut := newTestLogger(t, config.DefaultConfig())

	l.Warn("careful")
	l.Error("boom")

	// Lines are "2006-01-02 15:04:05 [LEVEL] text".
	const tsWidth = len("2006-01-02 15:04:05 ")
	if got := out.String(); len(got) <= tsWidth || got[tsWidth:] != "[WARN] careful\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); len(got) <= tsWidth || got[tsWidth:] != "[ERROR] boom\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())

	l.Debug(false, "hidden")
	if out.Len() != 0 {
		t.Errorf("Debug(false) wrote %q", out.String())
	}
	l.Debug(true, "shown %d", 1)
	if !strings.Contains(out.String(), "[DEBUG] shown 1") {
		t.Errorf("Debug(true) output = %q", out.String())
	}
}

func TestProgress_IsBare(t *testing.T) {
	l, out, _ := newTestLogger(t, config.DefaultConfig())
	l.Progress("Renaming: %s -> %s", "assets/tier1/a.png", "assets/tier1/tier1_01.png")
	if got := out.String(); got != "Renaming: assets/tier1/a.png -> assets/tier1/tier1_01.png\n" {
		t.Errorf("Progress = %q", got)
	}
}
