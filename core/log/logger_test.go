// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for the Logger type covering level filtering, clone
//              semantics of With* methods, field merging, and severity-based
//              error logging.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
// - 2026-08-25 v0.1.1: Cover the WithErr logging variants

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
)

// newTestLogger returns a JSON logger writing into the returned buffer
func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

// decodeLines parses each output line as a JSON object
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, decoded)
	}
	return entries
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Trace("not logged")
	logger.Debug("not logged")
	logger.Info("not logged")
	logger.Warn("logged warn")
	logger.Error("logged error")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "logged warn" || entries[1]["message"] != "logged error" {
		t.Errorf("unexpected messages: %v", entries)
	}
}

func TestWithFieldClone(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	child := logger.WithField("component", "arena")
	grandchild := child.WithField("tree", "main")

	logger.Debug("plain")
	child.Debug("one field")
	grandchild.Debug("two fields")

	entries := decodeLines(t, buf)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if _, ok := entries[0]["component"]; ok {
		t.Error("parent logger should not carry the child's field")
	}
	if entries[1]["component"] != "arena" {
		t.Error("child logger should carry its field")
	}
	if entries[2]["component"] != "arena" || entries[2]["tree"] != "main" {
		t.Error("grandchild logger should carry both fields")
	}
}

func TestWithLevelDoesNotMutateParent(t *testing.T) {
	logger, _ := newTestLogger(LevelInfo)

	quiet := logger.WithLevel(LevelError)

	if logger.GetLevel() != LevelInfo {
		t.Error("WithLevel should not mutate the original logger")
	}
	if quiet.GetLevel() != LevelError {
		t.Error("clone should carry the new level")
	}
}

func TestCallSiteFieldsOverrideContext(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	child := logger.WithField("phase", "setup")
	child.Info("override", Fields{"phase": "teardown"})

	entries := decodeLines(t, buf)
	if entries[0]["phase"] != "teardown" {
		t.Errorf("call-site field should win, got %v", entries[0]["phase"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name          string
		code          ixerror.Code
		expectedLevel string
	}{
		{"low severity logs as info", ixerror.CodeInvalidInput, "info"},
		{"medium severity logs as warn", ixerror.CodeConfigError, "warn"},
		{"high severity logs as error", ixerror.CodeArenaExhausted, "error"},
		{"critical severity logs as error", ixerror.CodeDoubleFree, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace)

			logger.LogError(ixerror.New("failure").WithCode(tt.code).WithOperation("op"))

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			if entries[0]["level"] != tt.expectedLevel {
				t.Errorf("level = %v, expected %v", entries[0]["level"], tt.expectedLevel)
			}
			if entries[0]["error_code"] != tt.code.String() {
				t.Errorf("error_code = %v", entries[0]["error_code"])
			}
		})
	}

	t.Run("nil error is ignored", func(t *testing.T) {
		logger, buf := newTestLogger(LevelTrace)
		logger.LogError(nil)
		if buf.Len() != 0 {
			t.Error("LogError(nil) should emit nothing")
		}
	})
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.ErrorWithErr("teardown incomplete", errors.New("release refused"))

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["level"] != "error" {
		t.Errorf("level = %v, expected error", entries[0]["level"])
	}
	if entries[0]["message"] != "teardown incomplete" {
		t.Errorf("message = %v", entries[0]["message"])
	}
	if entries[0]["error"] != "release refused" {
		t.Errorf("error = %v, expected the error text", entries[0]["error"])
	}
}

func TestWarnWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.WarnWithErr("reload skipped", errors.New("file busy"), Fields{"attempt": 2})

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["level"] != "warn" {
		t.Errorf("level = %v, expected warn", entries[0]["level"])
	}
	if entries[0]["error"] != "file busy" {
		t.Errorf("error = %v, expected the error text", entries[0]["error"])
	}
	if entries[0]["attempt"] != float64(2) {
		t.Errorf("attempt field = %v, expected 2", entries[0]["attempt"])
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger, _ := newTestLogger(LevelInfo)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at info minimum")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at info minimum")
	}

	logger.SetLevel(LevelTrace)
	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be enabled after SetLevel(trace)")
	}
}

func TestFieldsHelpers(t *testing.T) {
	merged := Field("a", 1).Merge(Int("b", 2)).Merge(String("c", "x"))
	if merged["a"] != 1 || merged["b"] != 2 || merged["c"] != "x" {
		t.Errorf("merge failed: %v", merged)
	}

	original := Fields{"k": "v"}
	cloned := original.Clone()
	cloned["k"] = "changed"
	if original["k"] != "v" {
		t.Error("Clone should not share storage")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone of nil Fields should be nil")
	}

	withExtra := nilFields.With("x", true)
	if withExtra["x"] != true {
		t.Error("With on nil Fields should allocate")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	buf := &bytes.Buffer{}
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: buf}))

	Debug("through default", Fields{"n": 1})

	entries := decodeLines(t, buf)
	if len(entries) != 1 || entries[0]["message"] != "through default" {
		t.Errorf("package-level logging failed: %v", entries)
	}
}
