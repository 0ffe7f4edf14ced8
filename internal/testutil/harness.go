package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/hcl"
	"github.com/specialistvlad/memgridgo/internal/repository"
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

// WriteFiles writes each named file below a fresh temporary directory and
// returns that directory. Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// LoggedContext returns a context carrying a debug logger that writes to a
// SafeBuffer. The captured output is printed when MEMGRIDGO_TEST_LOGS=true.
func LoggedContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() {
		if os.Getenv("MEMGRIDGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// LoadLibrary writes files to disk, loads them through the HCL loader and
// returns the populated repository. Any load error fails the test.
func LoadLibrary(t *testing.T, files map[string]string) *repository.Memory {
	t.Helper()
	ctx, _ := LoggedContext(t)

	docs, err := hcl.NewLoader().Load(ctx, WriteFiles(t, files))
	require.NoError(t, err)

	lib := repository.NewMemory()
	require.NoError(t, lib.AddAll(docs))
	return lib
}
