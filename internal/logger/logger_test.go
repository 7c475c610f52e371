package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leeovery/gloss/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("it writes info records with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info", Format: "text"}, &buf, false)

		log.Info("reorganized glossary", "entries", 2)

		out := buf.String()
		if !strings.Contains(out, "reorganized glossary") {
			t.Errorf("output = %q, want message", out)
		}
		if !strings.Contains(out, "entries=2") {
			t.Errorf("output = %q, want entries=2", out)
		}
	})

	t.Run("it drops debug records at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info"}, &buf, false)

		log.Debug("lock acquired")

		if buf.Len() != 0 {
			t.Errorf("output = %q, want nothing", buf.String())
		}
	})

	t.Run("it emits debug records when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "error"}, &buf, true)

		log.Debug("lock acquired")

		if !strings.Contains(buf.String(), "lock acquired") {
			t.Errorf("output = %q, want debug record", buf.String())
		}
	})

	t.Run("it writes JSON records in json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info", Format: "json"}, &buf, false)

		log.Warn("skipped step", "step", "backup")

		var rec map[string]interface{}
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
			t.Fatalf("output %q is not JSON: %v", buf.String(), err)
		}
		if rec["msg"] != "skipped step" {
			t.Errorf("msg = %v, want %q", rec["msg"], "skipped step")
		}
		if rec["step"] != "backup" {
			t.Errorf("step = %v, want backup", rec["step"])
		}
	})
}

func TestDiscard(t *testing.T) {
	t.Run("it accepts records without output", func(t *testing.T) {
		Discard().Error("ignored", "k", "v")
	})
}
