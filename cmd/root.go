package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/paging-sim/sim/experiment"
	"github.com/inference-sim/paging-sim/sim/locality"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// simFlags holds the CLI flags shared by run and sweep.
type simFlags struct {
	seed       int64  // Seed for reference string generation
	logLevel   string // Log verbosity level
	configPath string // Optional YAML run configuration

	// Locality model
	pages      int     // P: address-space size
	locusWidth int     // e: locus window width
	dwell      int     // m: references between locus moves
	jumpProb   float64 // t: probability a locus move is a random jump

	// Replay
	frames     int      // Physical frames per policy
	length     int      // Reference string length
	lookahead  int      // Optimal horizon; -1 derives e*m
	policies   []string // Policies to run, in reporting order
	parallel   bool     // Replay policies concurrently
	output     string   // Report format
	traceLevel string   // Fault trace level
	traceLimit int      // Max stored fault records per policy
}

// validOutputs is the set of recognized report formats.
var validOutputs = map[string]bool{"": true, "text": true, "json": true}

// localityFlags must be given on the command line when no --config is used.
var localityFlags = []string{"pages", "locus-width", "dwell", "jump-prob"}

func (f *simFlags) register(c *cobra.Command) {
	c.Flags().Int64Var(&f.seed, "seed", 42, "Seed for reference string generation")
	c.Flags().StringVar(&f.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&f.configPath, "config", "", "YAML run configuration; explicit flags override its values")

	c.Flags().IntVarP(&f.pages, "pages", "P", 0, "Address-space size P (pages are drawn from [0, P))")
	c.Flags().IntVarP(&f.locusWidth, "locus-width", "e", 0, "Locus window width e (1 <= e <= P; e = 1 needs -m 1 and -t 0)")
	c.Flags().IntVarP(&f.dwell, "dwell", "m", 0, "References issued before the locus moves (m >= 1)")
	c.Flags().Float64VarP(&f.jumpProb, "jump-prob", "t", 0, "Probability a locus move jumps instead of sliding, in [0, 1]")

	c.Flags().IntVar(&f.frames, "frames", experiment.DefaultFrames, "Number of physical frames")
	c.Flags().IntVar(&f.length, "length", experiment.DefaultLength, "Reference string length")
	c.Flags().IntVar(&f.lookahead, "lookahead", experiment.DeriveLookahead, "Optimal lookahead horizon; -1 derives e*m")
	c.Flags().StringSliceVar(&f.policies, "policies", nil, "Comma-separated policies to run (default optimal,fifo,lru,second-chance)")
	c.Flags().BoolVar(&f.parallel, "parallel", false, "Replay each policy in its own goroutine")
	c.Flags().StringVar(&f.output, "output", "text", "Report format (text, json)")
	c.Flags().StringVar(&f.traceLevel, "trace", string(trace.TraceLevelNone), "Fault trace level (none, faults)")
	c.Flags().IntVar(&f.traceLimit, "trace-limit", experiment.DefaultTraceLimit, "Max fault records kept per policy when tracing; 0 keeps all")
}

// setupLogging applies --log.
func (f *simFlags) setupLogging() error {
	level, err := logrus.ParseLevel(f.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

// buildConfig resolves the run configuration: built-in defaults, then the
// --config file, then every flag the user set explicitly.
func (f *simFlags) buildConfig(c *cobra.Command) (experiment.Config, error) {
	cfg := experiment.NewConfig(locality.Params{})
	flags := c.Flags()

	if f.configPath == "" {
		for _, name := range localityFlags {
			if !flags.Changed(name) {
				return cfg, fmt.Errorf("--%s is required when --config is not given", name)
			}
		}
	} else {
		rc, err := LoadRunConfig(f.configPath)
		if err != nil {
			return cfg, err
		}
		rc.Apply(&cfg)
		if rc.Output != "" && !flags.Changed("output") {
			f.output = rc.Output
		}
		logrus.Infof("loaded run configuration from %s", f.configPath)
	}

	// Explicit flags win over file values (no file: every flag applies).
	set := func(name string) bool { return f.configPath == "" || flags.Changed(name) }
	if set("pages") {
		cfg.Locality.Pages = f.pages
	}
	if set("locus-width") {
		cfg.Locality.LocusWidth = f.locusWidth
	}
	if set("dwell") {
		cfg.Locality.Dwell = f.dwell
	}
	if set("jump-prob") {
		cfg.Locality.JumpProbability = f.jumpProb
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("frames") {
		cfg.Frames = f.frames
	}
	if set("length") {
		cfg.Length = f.length
	}
	if set("lookahead") {
		cfg.Lookahead = f.lookahead
	}
	if set("policies") && len(f.policies) > 0 {
		cfg.Policies = f.policies
	}
	if set("parallel") {
		cfg.Parallel = f.parallel
	}
	if set("trace") {
		cfg.Trace.Level = trace.TraceLevel(f.traceLevel)
	}
	if set("trace-limit") {
		cfg.Trace.Limit = f.traceLimit
	}
	if !validOutputs[f.output] {
		return cfg, fmt.Errorf("unknown output format %q; valid: text, json", f.output)
	}
	return cfg, nil
}

// NewRootCmd builds the paging-sim command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paging-sim",
		Short: "Page-replacement simulator over synthetic locality traces",
		Long: "paging-sim generates a reference string from a locality model and reports\n" +
			"the page faults taken by Optimal (bounded lookahead), FIFO, LRU and Second Chance.",
	}
	root.AddCommand(newRunCmd(), newSweepCmd())
	return root
}

// rootCmd is the base command for the CLI
var rootCmd = NewRootCmd()

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
