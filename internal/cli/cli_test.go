package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/memgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := Execute(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T", err)
	return exitErr.Code
}

func TestExecute_Build(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())

	out, _, err := execute(t, "build", "-l", lib, "-c", testutil.SoCConfiguration, "-f", "summary", "-D", "WORDS=64")
	require.NoError(t, err)
	assert.Contains(t, out, "design:       acme:soc:top:1.0\n")
	assert.Contains(t, out, "instances:    4\n")
	assert.Contains(t, out, "diagnostics:  0\n")
}

func TestExecute_BuildWithDesignArgument(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())

	out, _, err := execute(t, "build", testutil.SoCDesign, "--library", lib, "--max-depth", "0", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "instances:    3\n")
	assert.Contains(t, out, "AmbiguousView")
}

func TestExecute_List(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())

	out, _, err := execute(t, "list", "-l", lib)
	require.NoError(t, err)
	assert.Contains(t, out, "acme:ip:uart:2.0")
	assert.Contains(t, out, "designConfiguration")
}

func TestExecute_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "serve")
}

func TestExecute_Errors(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())
	broken := testutil.WriteFiles(t, map[string]string{"x.hcl": `design "a:b:c:1" {`})

	testCases := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown flag", []string{"build", "--no-such-flag"}, 2, "unknown flag: --no-such-flag"},
		{"no library", []string{"build", testutil.SoCDesign}, 2, "at least one library path is required"},
		{"bad format", []string{"build", "-l", lib, "-f", "xml"}, 2, "unknown output format"},
		{"bad define", []string{"build", "-l", lib, "-D", "=1"}, 2, "expected NAME=VALUE"},
		{"bad log level", []string{"list", "-l", lib, "--log-level", "loud"}, 2, "invalid log-level"},
		{"too many args", []string{"build", "-l", lib, "a:b:c", "d:e:f"}, 1, "accepts at most 1 arg"},
		{"load failure", []string{"list", "-l", broken}, 1, "failed to load library"},
		{"nothing to build", []string{"build", "-l", lib}, 1, "no design given"},
		{"unknown command", []string{"frobnicate"}, 1, "unknown command"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(t, err))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestExecute_EnvironmentDefaults(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())
	t.Setenv("MEMGRIDGO_LIBRARY", lib)
	t.Setenv("MEMGRIDGO_CONFIGURATION", testutil.SoCConfiguration)
	t.Setenv("MEMGRIDGO_FORMAT", "summary")

	out, _, err := execute(t, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "instances:    4\n")

	// Flags win over the environment.
	out, _, err = execute(t, "build", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"design": "acme:soc:top:1.0"`)
}

func TestExecute_EnvFile(t *testing.T) {
	lib := testutil.WriteFiles(t, testutil.SoCFiles())
	envFile := filepath.Join(t.TempDir(), "memgridgo.env")
	content := "MEMGRIDGO_LIBRARY=" + lib + "\n" +
		"MEMGRIDGO_CONFIGURATION=" + testutil.SoCConfiguration + "\n" +
		"MEMGRIDGO_FORMAT=summary\n" +
		"MEMGRIDGO_MAX_DEPTH=0\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	out, _, err := execute(t, "build", testutil.SoCDesign, "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "instances:    3\n")

	t.Run("process environment overrides the file", func(t *testing.T) {
		t.Setenv("MEMGRIDGO_MAX_DEPTH", "4")
		out, _, err := execute(t, "build", testutil.SoCDesign, "--env-file", envFile)
		require.NoError(t, err)
		assert.Contains(t, out, "instances:    4\n")
	})
}

func TestExecute_EnvErrors(t *testing.T) {
	t.Run("explicit env file missing", func(t *testing.T) {
		_, _, err := execute(t, "list", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(t, err))
		assert.Contains(t, err.Error(), "failed to read env file")
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("MEMGRIDGO_MAX_DEPTH", "deep")
		_, _, err := execute(t, "list", "-l", t.TempDir())
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(t, err))
		assert.Contains(t, err.Error(), "invalid MEMGRIDGO_MAX_DEPTH")
	})
}

func TestParseDefines(t *testing.T) {
	params, err := parseDefines([]string{"WIDTH=32", " DEPTH = 'h10 ", "WIDTH=64", "EMPTY="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"WIDTH": "64", "DEPTH": "'h10", "EMPTY": ""}, params)

	_, err = parseDefines([]string{"NOVALUE"})
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "MEMGRIDGO_MAX_DEPTH", envKey("max-depth"))
	assert.Equal(t, "MEMGRIDGO_LIBRARY", envKey("library"))
}
