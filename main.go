package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"bwestbro.com/gparse/extract"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Flags
var (
	configFile string
	format     string
	quantities []string
	workers    int
	debug      bool
	jsonLog    bool
	cpuprofile string
)

var profile *os.File

var rootCmd = &cobra.Command{
	Use:   "gparse",
	Short: "Extract results from Gaussian log files",
	Long: `gparse pulls geometries, SCF energies, force constants, frequencies
and masses out of Gaussian log files in a single pass per file.

Examples:
  gparse extract opt.log                   # every quantity as text
  gparse extract -q energies -f json *.log # energies of many logs
  gparse watch running.log                 # follow an optimization`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogger(debug, jsonLog); err != nil {
			return errors.Wrap(err, "initializing logger")
		}
		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return err
			}
			profile = f
			return pprof.StartCPUProfile(f)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profile != nil {
			pprof.StopCPUProfile()
			profile.Close()
		}
		logger.Sync()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract file.log...",
	Short: "Extract quantities from one or more logs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		results, err := ParseFiles(cmd.Context(), args, conf)
		if err != nil {
			return err
		}
		return WriteResults(cmd.OutOrStdout(), conf.Format, results)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch file.log",
	Short: "Extract again every time a log is written",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return Watch(ctx, args[0], conf, cmd.OutOrStdout())
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in quantities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range extract.Presets() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

// loadConfig reads the config file and lets any flags given on the
// command line override it
func loadConfig(cmd *cobra.Command) (Config, error) {
	rc := DefaultConfig()
	if configFile != "" {
		var err error
		rc, err = readRawConf(configFile)
		if err != nil {
			return Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		rc.Format = format
	}
	if flags.Changed("quantities") {
		rc.Quantities = quantities
	}
	if flags.Changed("workers") {
		rc.Workers = workers
	}
	conf, err := rc.ToConfig()
	if err != nil {
		return conf, err
	}
	for _, f := range Formats {
		if conf.Format == f {
			return conf, nil
		}
	}
	return conf, errors.Wrapf(ErrUnknownFormat, "%q", conf.Format)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "TOML config file")
	pf.StringVarP(&format, "format", "f", "text",
		"output format: text, json or yaml")
	pf.StringSliceVarP(&quantities, "quantities", "q", nil,
		"quantities to extract (default all)")
	pf.IntVarP(&workers, "workers", "j", 4,
		"logs to parse at once")
	pf.BoolVar(&debug, "debug", false, "toggle debugging information")
	pf.BoolVar(&jsonLog, "json-log", false, "log as JSON")
	pf.StringVar(&cpuprofile, "cpu", "", "write a CPU profile")
	rootCmd.AddCommand(extractCmd, watchCmd, presetsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hints)
		}
		os.Exit(1)
	}
}
