// Package cli implements the widefix command.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avdva/widefix/internal/config"
)

// Version is the version of the command, set at build time.
var Version = "0.1.0-dev"

// app is the state shared by subcommands.
type app struct {
	configFile string
}

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "widefix",
		Short: "widefix - wide fixed-point numbers for deep-zoom math",
		Long: `widefix works with signed fixed-point numbers with 32 integer bits
and a build-time number of fractional words. It evaluates expressions,
generates named constants for shaders and Go code, and renders fractals.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file path (yaml, toml or json)")
	// glog flags, like -v and -logtostderr.
	logFlags := pflag.NewFlagSet("glog", pflag.ContinueOnError)
	logFlags.AddGoFlagSet(flag.CommandLine)
	root.PersistentFlags().AddFlagSet(logFlags)

	root.AddCommand(
		newConstsCommand(a),
		newCalcCommand(),
		newRenderCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, err
	}
	if a.configFile != "" {
		glog.V(1).Infof("loaded config from %s", a.configFile)
	}
	return cfg, nil
}

// logToStderr makes stderr the default log destination.
func logToStderr() error {
	f := flag.Lookup("logtostderr")
	if f == nil {
		return nil
	}
	f.DefValue = "true"
	return f.Value.Set("true")
}

// Execute runs the command line and exits on errors.
// This is called by main.main().
func Execute() {
	if err := logToStderr(); err != nil {
		glog.Warningf("failed to enable logging to stderr: %v", err)
	}
	// get rid of "ERROR: logging before flag.Parse".
	args := os.Args
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	defer glog.Flush()
	if err := NewRootCommand().Execute(); err != nil {
		glog.Flush()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
