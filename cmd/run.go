package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/paging-sim/sim/experiment"
	"github.com/inference-sim/paging-sim/sim/trace"
)

// newRunCmd executes one run using parameters from CLI flags
func newRunCmd() *cobra.Command {
	f := &simFlags{}
	c := &cobra.Command{
		Use:   "run",
		Short: "Generate one reference string and report each policy's page faults",
		Example: "  paging-sim run -P 1000 -e 10 -m 100 -t 0.1\n" +
			"  paging-sim run --config run.yaml --frames 16 --output json",
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := f.setupLogging(); err != nil {
				return err
			}
			cfg, err := f.buildConfig(c)
			if err != nil {
				return err
			}
			logrus.Infof("Starting run: P=%d e=%d m=%d t=%v length=%d frames=%d lookahead=%d seed=%d",
				cfg.Locality.Pages, cfg.Locality.LocusWidth, cfg.Locality.Dwell, cfg.Locality.JumpProbability,
				cfg.Length, cfg.Frames, cfg.EffectiveLookahead(), cfg.Seed)

			res, err := experiment.Run(cfg)
			if err != nil {
				return err
			}
			c.SilenceUsage = true
			if err := res.Metrics.SaveResults(c.OutOrStdout(), f.output); err != nil {
				return err
			}
			logTraces(res)

			logrus.Info("Simulation complete.")
			return nil
		},
	}
	f.register(c)
	return c
}

// logTraces reports the per-policy fault traces of a traced run.
func logTraces(res *experiment.Result) {
	for _, r := range res.Metrics.Results {
		st, ok := res.Traces[r.Policy]
		if !ok {
			continue
		}
		s := trace.Summarize(st)
		logrus.WithField("policy", r.Policy).Infof(
			"trace: %d faults (%d warm-up, %d cold loads, %d evictions), %d records kept, %d dropped by the trace limit",
			s.TotalFaults, s.WarmUpFaults, s.ColdLoads, s.Evictions, s.StoredRecords, st.Dropped())
		for _, rec := range st.Faults {
			logrus.WithField("policy", r.Policy).Debugf("fault at %d: page %d -> frame %d (evicted %s)",
				rec.Index, rec.Page, rec.Frame, evictedLabel(rec.Evicted))
		}
	}
}

func evictedLabel(page int) string {
	if page == trace.NoPage {
		return "none"
	}
	return fmt.Sprint(page)
}
