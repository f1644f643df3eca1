package logging_test

import (
	"context"
	"testing"

	"github.com/matcha-hdl/verifmt/internal/logging"
)

func TestWithLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("warn")

	//nolint:staticcheck // Verifies the nil-context guard.
	ctx := logging.WithLogger(nil, logger)
	if ctx == nil {
		t.Fatal("WithLogger returned nil context")
	}
	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != logging.Default() {
		t.Error("bare context should yield the default logger")
	}

	//nolint:staticcheck // Verifies the nil-context guard.
	if got := logging.FromContext(nil); got != logging.Default() {
		t.Error("nil context should yield the default logger")
	}
}
