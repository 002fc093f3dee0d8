package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/config"
	"github.com/r-xue/auto-selfcal/internal/logging"
	"github.com/r-xue/auto-selfcal/internal/selfcal"
	"github.com/r-xue/auto-selfcal/internal/store"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to run configuration YAML")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: selfcal --config path/to/run.yaml")
		os.Exit(2)
	}

	rc, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPath := rc.DBPathOr(envOr("SELFCAL_DB", "selfcal.db"))
	casaAddr := rc.CasaAddrOr(envOr("CASA_ADDR", "localhost:50051"))

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	runID, err := st.BeginRun(rc.Vis)
	if err != nil {
		log.Fatalf("failed to begin run: %v", err)
	}

	// Connect to the CASA executor sidecar
	client, err := casa.NewClient(casaAddr)
	if err != nil {
		log.Fatalf("failed to connect to executor at %s: %v", casaAddr, err)
	}
	defer client.Close()

	fmt.Println("Self-calibration optimizer ready.")
	fmt.Printf("  DB: %s | Executor: %s | Run: %s\n", dbPath, casaAddr, runID)

	orch := selfcal.New(client, st, rc.ToSelfcal())
	lib, err := orch.Run(context.Background(), rc.Vis)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	if err := st.SaveLibrary(lib); err != nil {
		log.Fatalf("failed to persist results: %v", err)
	}
	for _, bands := range lib {
		for _, bst := range bands {
			if err := logging.LogAttempts(st.DB(), runID, bst); err != nil {
				log.Printf("logging error: %v", err)
			}
		}
	}

	printSummary(lib)
}

// #endregion main

// #region summary

func printSummary(lib selfcal.Library) {
	fmt.Printf("\n%-20s %-8s %-8s %-10s %10s %10s  %s\n",
		"Target", "Band", "Success", "Solint", "SNR orig", "SNR final", "Stop reason")

	targets := make([]string, 0, len(lib))
	for t := range lib {
		targets = append(targets, t)
	}
	sort.Strings(targets)

	for _, target := range targets {
		bands := make([]string, 0, len(lib[target]))
		for b := range lib[target] {
			bands = append(bands, b)
		}
		sort.Strings(bands)

		for _, band := range bands {
			bst := lib[target][band]
			fmt.Printf("%-20s %-8s %-8t %-10s %10.1f %10.1f  %s\n",
				bst.Target, bst.Band, bst.SCSuccess, bst.FinalSolint,
				bst.SNROrig, bst.SNRFinal, bst.StopReason)
		}
	}
}

// #endregion summary

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
