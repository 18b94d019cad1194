package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/testrail"
	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/version"
)

const appName = "trctl"

// app carries the global flags and builds the client once a command runs.
type app struct {
	out           io.Writer
	configFile    string
	envFile       string
	output        string
	debug         bool
	otlpEndpoint  string
	otlpInsecure  bool
	stopTelemetry func() error
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           appName,
		Short:         "TestRail command line client",
		Long:          "Query projects, cases and custom fields of a TestRail instance.",
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(a.output); err != nil {
				return err
			}
			if a.otlpEndpoint == "" {
				return nil
			}
			stop, err := startTelemetry(cmd.Context(), a.otlpEndpoint, a.otlpInsecure, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("telemetry: %w", err)
			}
			a.stopTelemetry = stop
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.stopTelemetry == nil {
				return nil
			}
			// A collector that went away must not fail a command that succeeded.
			if err := a.stopTelemetry(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "telemetry shutdown: %v\n", err)
			}
			return nil
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to a config.yml")
	flags.StringVar(&a.envFile, "env-file", "", "path to a .env file")
	flags.StringVarP(&a.output, "output", "o", formatJSON, "output format: json or yaml")
	flags.BoolVar(&a.debug, "debug", false, "log every request at debug level")
	flags.StringVar(&a.otlpEndpoint, "otlp-endpoint", "", "export traces and metrics to this OTLP HTTP host:port")
	flags.BoolVar(&a.otlpInsecure, "otlp-insecure", true, "use plain HTTP for the OTLP endpoint")

	root.AddCommand(
		newProjectsCmd(a),
		newCasesCmd(a),
		newFieldsCmd(a),
		newPingCmd(a),
		newVersionCmd(a),
	)
	return root
}

// loadConfig reads the connection settings for trctl.
func (a *app) loadConfig() (config.ClientConfig, error) {
	var cfg config.ClientConfig
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	if err := config.Load(appName, &cfg, opts...); err != nil {
		return cfg, err
	}
	if cfg.ApplicationName == "" {
		cfg.ApplicationName = version.UserAgent(appName)
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func (a *app) client() (*testrail.Client, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	c, err := testrail.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid connection settings: %w", err)
	}
	return c, nil
}

func (a *app) print(v any) error {
	return write(a.out, a.output, v)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the trctl version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.print(version.Get())
		},
	}
}
