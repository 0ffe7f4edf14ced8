package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// EnvPrefix namespaces the environment variables that provide flag defaults.
const EnvPrefix = "MEMGRIDGO_"

// envKey maps a flag name to its variable: --max-depth is MEMGRIDGO_MAX_DEPTH.
func envKey(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// loadEnv reads path with godotenv, then overlays MEMGRIDGO_* variables from
// the process environment. A missing file is only an error when the path was
// given explicitly.
func loadEnv(path string, explicit bool) (map[string]string, error) {
	env := make(map[string]string)
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range values {
				env[k] = v
			}
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
	}

	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, EnvPrefix) {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env, nil
}

// applyEnv sets every flag the user did not pass from env. Command-line
// values always win.
func applyEnv(flags *pflag.FlagSet, env map[string]string) error {
	var result *multierror.Error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "env-file" || f.Name == "help" {
			return
		}
		v, ok := env[envKey(f.Name)]
		if !ok {
			return
		}
		if err := flags.Set(f.Name, v); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid %s: %w", envKey(f.Name), err))
		}
	})
	return result.ErrorOrNil()
}
