package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInfoIncludesServiceAndFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "importer-test", Output: &buf})

	ctx := logg.WithRunID(context.Background(), "run-123")
	ctx = logg.WithBatch(ctx, 2, 75)
	logg.Info(ctx, "batch persisted")

	out := buf.String()
	for _, want := range []string{`"service":"importer-test"`, `"run_id":"run-123"`, `"batch":2`, "batch persisted"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %s, got %s", want, out)
		}
	}
}

func TestErrorCarriesErrAndStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "importer-test", Output: &buf})

	logg.Error(context.Background(), "run aborted", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("expected error field in output, got %s", out)
	}
	if !strings.Contains(out, `"stack"`) {
		t.Fatalf("expected stack field in output, got %s", out)
	}
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "importer-test", Level: zerolog.ErrorLevel, Output: &buf})

	logg.Info(context.Background(), "should be dropped")

	if buf.Len() != 0 {
		t.Fatalf("expected info below error level to be dropped, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected empty string to default to info, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected unknown level to default to info, got %v", got)
	}
}
