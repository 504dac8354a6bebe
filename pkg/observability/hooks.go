// Package observability provides hooks for metrics, tracing, and logging.
//
// Generation code reports events through the hooks registered here; the
// defaults do nothing. A binary that wants metrics registers its own
// implementation once at startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generation().OnSectionStart(ctx, runID, "monthly")
//	// ... generate ...
//	observability.Generation().OnSectionComplete(ctx, runID, "monthly", size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from a planner generation run. Every event
// carries the run ID so concurrent runs can be told apart.
type GenerationHooks interface {
	// Resolution events
	OnResolveStart(ctx context.Context, runID string, sections int)
	OnResolveComplete(ctx context.Context, runID string, resolved, failed int, duration time.Duration)

	// Section events; size is the document length in bytes.
	OnSectionStart(ctx context.Context, runID, section string)
	OnSectionComplete(ctx context.Context, runID, section string, size int, duration time.Duration, err error)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events from document writing.
type OutputHooks interface {
	// OnDocumentWritten records a document written to disk.
	OnDocumentWritten(ctx context.Context, path string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnResolveStart(context.Context, string, int) {}

func (NoopGenerationHooks) OnResolveComplete(context.Context, string, int, int, time.Duration) {}

func (NoopGenerationHooks) OnSectionStart(context.Context, string, string) {}

func (NoopGenerationHooks) OnSectionComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnDocumentWritten(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	outputHooks     OutputHooks     = NoopOutputHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	outputHooks = NoopOutputHooks{}
}
