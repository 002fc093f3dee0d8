package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/r-xue/auto-selfcal/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to selfcal.db")
	runID := flag.String("run", "", "show one run's band results")
	target := flag.String("target", "", "with --run: show attempts for one target")
	band := flag.String("band", "", "with --run and --target: band to show")
	last := flag.Int("last", 20, "show N most recent runs")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/selfcal.db [--last N] [--run id [--target name --band name]] [--json]")
		os.Exit(2)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch {
	case *runID != "" && *target != "" && *band != "":
		err = runAttemptMode(st, *runID, *target, *band, *jsonOut)
	case *runID != "":
		err = runBandMode(st, *runID, *jsonOut)
	default:
		err = runListMode(st, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store, last int, jsonOut bool) error {
	runs, err := st.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}
	if jsonOut {
		return printJSON(runs)
	}

	fmt.Printf("%-36s  %-20s  %s\n", "Run", "Started", "Vis")
	for _, r := range runs {
		vis := ""
		if len(r.Vis) > 0 {
			vis = r.Vis[0]
			if len(r.Vis) > 1 {
				vis = fmt.Sprintf("%s (+%d more)", vis, len(r.Vis)-1)
			}
		}
		fmt.Printf("%-36s  %-20s  %s\n", r.RunID, r.StartedAt.Format("2006-01-02T15:04:05Z"), vis)
	}
	return nil
}

// #endregion list-mode

// #region band-mode

func runBandMode(st *store.Store, runID string, jsonOut bool) error {
	results, err := st.BandResults(runID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no band results for run")
		return nil
	}
	if jsonOut {
		return printJSON(results)
	}

	fmt.Printf("%-20s %-8s %-8s %-10s %10s %10s %10s %10s  %s\n",
		"Target", "Band", "Success", "Solint", "SNR orig", "SNR final", "RMS orig", "RMS final", "Stop reason")
	for _, b := range results {
		fmt.Printf("%-20s %-8s %-8t %-10s %10.1f %10.1f %10.3g %10.3g  %s\n",
			b.Target, b.Band, b.SCSuccess, b.FinalSolint,
			b.SNROrig, b.SNRFinal, b.RMSOrig, b.RMSFinal, b.StopReason)
	}
	return nil
}

// #endregion band-mode

// #region attempt-mode

func runAttemptMode(st *store.Store, runID, target, band string, jsonOut bool) error {
	attempts, err := st.Attempts(runID, target, band)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Fprintln(os.Stderr, "no attempts found")
		return nil
	}
	if jsonOut {
		return printJSON(attempts)
	}

	fmt.Printf("%-10s %-5s %6s %10s %10s %10s %10s %-6s  %s\n",
		"Solint", "Mode", "NSigma", "SNR pre", "SNR post", "RMS pre", "RMS post", "Pass", "Reason")
	for _, a := range attempts {
		fmt.Printf("%-10s %-5s %6.2f %10.1f %10.1f %10.3g %10.3g %-6t  %s\n",
			a.Solint, a.Solmode, a.NSigma, a.SNRPre, a.SNRPost, a.RMSPre, a.RMSPost, a.Pass, a.FailReason)
	}
	return nil
}

// #endregion attempt-mode

// #region output

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion output
