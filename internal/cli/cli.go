package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/memgridgo/internal/app"
	"github.com/specialistvlad/memgridgo/internal/builder"
	"github.com/specialistvlad/memgridgo/internal/hcl"
	"github.com/specialistvlad/memgridgo/internal/render"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// options collects every flag value; each command reads the subset it
// registers.
type options struct {
	library       []string
	configuration string
	format        string
	defines       []string
	port          int
	maxDepth      int
	logLevel      string
	logFormat     string
	envFile       string
}

// Execute runs the command line in args. Results and help go to outW, logs
// to errW. Every returned error is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return err
}

// NewRootCommand builds the memgridgo command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "memgridgo",
		Short: "Build the connectivity graph of a hierarchical hardware design.",
		Long: `memgridgo loads component, design and design configuration documents from
HCL libraries and builds the connectivity graph of a top design: every
component instance across the hierarchy, its bus interfaces and memory
trees, and the connections between interfaces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv(opts.envFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return usageError(err)
			}
			if err := applyEnv(cmd.Flags(), env); err != nil {
				return usageError(err)
			}
			slog.Debug("CLI flags resolved.", "command", cmd.Name())
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringSliceVarP(&opts.library, "library", "l", nil, "Library path: an .hcl file or a directory searched recursively. Repeatable.")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.IntVar(&opts.maxDepth, "max-depth", builder.DefaultMaxDepth, "Maximum number of hierarchy levels to descend. 0 builds the top design only.")
	pf.StringVar(&opts.envFile, "env-file", ".env", "File with MEMGRIDGO_* defaults. Ignored when the default file does not exist.")

	root.AddCommand(
		newBuildCommand(opts, outW, errW),
		newServeCommand(opts, outW, errW),
		newListCommand(opts, outW, errW),
	)
	return root
}

func addBuildFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.configuration, "configuration", "c", "", "VLNV of the design configuration. Alone, it also selects the design.")
	cmd.Flags().StringArrayVarP(&opts.defines, "define", "D", nil, "Expression parameter as NAME=VALUE. Repeatable.")
}

func newBuildCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [DESIGN_VLNV]",
		Short: "Build the graph of a design and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, outW, errW)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
	addBuildFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatTree), "Output format. Options: 'tree', 'json', 'summary'.")
	return cmd
}

func newServeCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [DESIGN_VLNV]",
		Short: "Build the graph of a design and serve it over a read-only HTTP API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, outW, errW)
			if err != nil {
				return err
			}
			return a.Serve(cmd.Context())
		},
	}
	addBuildFlags(cmd, opts)
	cmd.Flags().IntVar(&opts.port, "port", 8080, "Port for the HTTP server.")
	return cmd
}

func newListCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every document found in the libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, outW, errW)
			if err != nil {
				return err
			}
			return a.List()
		},
	}
}

// newApp validates the options into an app.Config and loads the library.
func (o *options) newApp(args []string, outW, errW io.Writer) (*app.App, error) {
	params, err := parseDefines(o.defines)
	if err != nil {
		return nil, usageError(err)
	}

	raw := app.Config{
		LibraryPaths:  o.library,
		Configuration: o.configuration,
		Format:        render.Format(o.format),
		Params:        params,
		MaxDepth:      o.maxDepth,
		Port:          o.port,
		LogFormat:     strings.ToLower(o.logFormat),
		LogLevel:      strings.ToLower(o.logLevel),
	}
	if len(args) > 0 {
		raw.Design = args[0]
	}

	cfg, err := app.NewConfig(raw)
	if err != nil {
		return nil, usageError(err)
	}
	slog.Debug("CLI parameter validation complete.", "config", cfg)

	a, err := app.NewApp(outW, errW, cfg, hcl.NewLoader())
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}
	return a, nil
}

// parseDefines turns NAME=VALUE pairs into a parameter map. A later
// definition of the same name wins.
func parseDefines(defines []string) (map[string]string, error) {
	params := make(map[string]string, len(defines))
	for _, d := range defines {
		name, value, ok := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected NAME=VALUE", d)
		}
		params[name] = strings.TrimSpace(value)
	}
	return params, nil
}
