// Package testhelpers provides shared utilities for testing the matching engine
package testhelpers

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/standardbeagle/namesake/internal/config"
)

// TestConfig returns a configuration with a small cache and bounded
// concurrency so batch tests behave predictably
func TestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Engine.CacheSize = 64
	cfg.Engine.Workers = 4
	return cfg
}

// WaitFor waits for a condition to become true with timeout
// Usage:
//
//	testhelpers.WaitFor(t, func() bool {
//	    return started.Load()
//	}, 5*time.Second)
func WaitFor(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Condition not met within %v", timeout)
			return
		}
	}
}

// AssertNoLeaks verifies no goroutine leaks occurred during the test
func AssertNoLeaks(t *testing.T) {
	t.Helper()

	// Ignore goroutines started by the test runtime
	ignore := goleak.IgnoreCurrent()

	if err := goleak.Find(ignore); err != nil {
		t.Errorf("Goroutine leak detected: %v", err)
	}
}

// VerifyNoLeaks registers a cleanup that fails the test if goroutines
// started during it are still running when it ends
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	ignore := goleak.IgnoreCurrent()
	t.Cleanup(func() {
		goleak.VerifyNone(t, ignore)
	})
}
