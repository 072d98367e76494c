package testutil

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/plots"
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcome of resolving a figure in a test.
type HarnessResult struct {
	LogOutput string
	Resolved  *figure.Resolved
	Err       error
}

// NewSupplier registers the given modules the way the application does,
// validates the registry and returns a supplier over it.
func NewSupplier(t *testing.T, modules ...registry.Module) *plots.Supplier {
	t.Helper()

	reg := registry.New(plots.BaseLayoutAttributes(), plots.BaseTraceAttributes())
	for _, m := range modules {
		m.Register(reg)
	}
	require.NoError(t, reg.ValidateRegistry(context.Background()))
	return plots.NewSupplier(reg)
}

// LogContext returns a context carrying a debug logger that writes into
// the returned buffer.
func LogContext() (context.Context, *SafeBuffer) {
	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), logBuffer
}

// Resolve runs the defaults-supply pipeline with debug logs captured. Set
// FIGCORE_TEST_LOGS=true to print them.
func Resolve(t *testing.T, s *plots.Supplier, fig *figure.Figure, opts ...plots.SupplyOption) *HarnessResult {
	t.Helper()

	ctx, logBuffer := LogContext()
	resolved, err := s.Supply(ctx, fig, opts...)

	if os.Getenv("FIGCORE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Resolved:  resolved,
		Err:       err,
	}
}

// MustResolve is Resolve for figures that must resolve cleanly.
func MustResolve(t *testing.T, s *plots.Supplier, fig *figure.Figure, opts ...plots.SupplyOption) *figure.Resolved {
	t.Helper()
	result := Resolve(t, s, fig, append([]plots.SupplyOption{FixedUIDs()}, opts...)...)
	require.NoError(t, result.Err)
	return result.Resolved
}

// FixedUIDs makes default trace uids predictable: "uid-0", "uid-1", ...
func FixedUIDs() plots.SupplyOption {
	return plots.WithUIDs(func(i int) string { return fmt.Sprintf("uid-%d", i) })
}
