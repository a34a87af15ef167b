package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App logging at debug level into a buffer. Set
// MELLOWD_TEST_LOGS=true to print the log when the test finishes.
func SetupAppTest(t *testing.T, cfg *Config, plugins ...compiler.Plugin) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(logBuffer, cfg, plugins...)

	t.Cleanup(func() {
		if os.Getenv("MELLOWD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
