package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/paging-sim/sim"
	"github.com/inference-sim/paging-sim/sim/experiment"
)

// newSweepCmd replays one reference string across a range of frame counts
func newSweepCmd() *cobra.Command {
	f := &simFlags{}
	var minFrames, maxFrames int
	c := &cobra.Command{
		Use:     "sweep",
		Short:   "Replay one reference string over a range of frame counts",
		Example: "  paging-sim sweep -P 1000 -e 10 -m 100 -t 0.1 --min-frames 1 --max-frames 32",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := f.setupLogging(); err != nil {
				return err
			}
			cfg, err := f.buildConfig(c)
			if err != nil {
				return err
			}
			logrus.Infof("Starting sweep over %d..%d frames: P=%d e=%d m=%d t=%v length=%d seed=%d",
				minFrames, maxFrames, cfg.Locality.Pages, cfg.Locality.LocusWidth, cfg.Locality.Dwell,
				cfg.Locality.JumpProbability, cfg.Length, cfg.Seed)

			res, err := experiment.Sweep(cfg, minFrames, maxFrames)
			if err != nil {
				return err
			}
			c.SilenceUsage = true
			switch f.output {
			case "", "text":
				return printSweep(c, res)
			case "json":
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling sweep: %w", err)
				}
				_, err = fmt.Fprintln(c.OutOrStdout(), string(data))
				return err
			default:
				return fmt.Errorf("%w: unknown output format %q; valid: text, json", sim.ErrInvalidParameter, f.output)
			}
		},
	}
	f.register(c)
	c.Flags().IntVar(&minFrames, "min-frames", 1, "Smallest frame count in the sweep")
	c.Flags().IntVar(&maxFrames, "max-frames", 16, "Largest frame count in the sweep")
	return c
}

// printSweep writes one row per frame count with a column per policy.
func printSweep(c *cobra.Command, res *experiment.SweepResult) error {
	w := c.OutOrStdout()
	if len(res.Points) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%-8s", "Frames"); err != nil {
		return err
	}
	for _, r := range res.Points[0].Metrics.Results {
		if _, err := fmt.Fprintf(w, " %14s", sim.DisplayName(r.Policy)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, p := range res.Points {
		if _, err := fmt.Fprintf(w, "%-8d", p.Frames); err != nil {
			return err
		}
		for _, r := range p.Metrics.Results {
			if _, err := fmt.Fprintf(w, " %14d", r.Faults); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	for _, a := range res.Anomalies {
		if _, err := fmt.Fprintf(w, "Belady's anomaly: %s %d -> %d faults at %d frames\n",
			sim.DisplayName(a.Policy), a.PrevFaults, a.Faults, a.Frames); err != nil {
			return err
		}
	}
	return nil
}
