package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_ReturnedLoggerIsUsable(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})
	log.Error().Err(nil).Msg("startup failed")

	if !strings.Contains(buf.String(), "startup failed") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
}

func TestInit_Singleton(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	log := Init(Options{Output: &second})
	log.Info().Msg("hello")

	if first.Len() == 0 {
		t.Fatalf("expected first writer to receive output")
	}
	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger")
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "error", Output: &buf})
	log.Info().Msg("quiet")

	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed at error level, got %q", buf.String())
	}
}

func TestGet_BeforeInitPanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	Get()
}
