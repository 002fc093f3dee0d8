package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/r-xue/auto-selfcal/internal/logging"
	"github.com/r-xue/auto-selfcal/internal/replay"
	"github.com/r-xue/auto-selfcal/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to selfcal.db")
	runID := flag.String("run", "", "run to export (defaults to the most recent)")
	target := flag.String("target", "", "restrict to one target")
	band := flag.String("band", "", "restrict to one band")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--run id] [--target name] [--band name]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *target, *band, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

// evalRow holds a parsed eval_log row with its AttemptRecord.
type evalRow struct {
	Record   logging.AttemptRecord
	Decision string
}

func run(dbPath, runID, target, band, outPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	db := st.DB()

	if runID == "" {
		runs, err := st.ListRuns(1)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			return fmt.Errorf("no runs in database")
		}
		runID = runs[0].RunID
	}

	query := `SELECT record_json, decision FROM eval_log WHERE run_id = ?`
	args := []interface{}{runID}
	if target != "" {
		query += ` AND target = ?`
		args = append(args, target)
	}
	if band != "" {
		query += ` AND band = ?`
		args = append(args, band)
	}
	query += ` ORDER BY id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("query eval_log: %w", err)
	}
	defer rows.Close()

	var evalRows []evalRow
	for rows.Next() {
		var recJSON sql.NullString
		var decision string
		if err := rows.Scan(&recJSON, &decision); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if !recJSON.Valid || recJSON.String == "" {
			continue
		}

		var rec logging.AttemptRecord
		if err := json.Unmarshal([]byte(recJSON.String), &rec); err != nil {
			continue
		}
		if rec.Solint == "" {
			continue // not AttemptRecord format
		}
		evalRows = append(evalRows, evalRow{Record: rec, Decision: decision})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}

	if len(evalRows) == 0 {
		return fmt.Errorf("no AttemptRecord-format rows found for run %s", runID)
	}

	fmt.Printf("Found %d attempt rows\n", len(evalRows))

	fixture := buildFixture(runID, target, band, evalRows)
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region output

func buildFixture(runID, target, band string, rows []evalRow) replay.Fixture {
	trials := make([]replay.FixtureTrial, len(rows))
	expected := make([]replay.FixtureExpectedResult, len(rows))

	for i, r := range rows {
		trials[i] = replay.FixtureTrial{
			Solint:    r.Record.Solint,
			IsInfEB:   r.Record.Solint == "inf_EB",
			SNRPre:    r.Record.SNRPre,
			SNRPost:   r.Record.SNRPost,
			SNRNFPre:  r.Record.SNRNFPre,
			SNRNFPost: r.Record.SNRNFPost,
			RMSPre:    r.Record.RMSPre,
			RMSPost:   r.Record.RMSPost,
			RMSNFPre:  r.Record.RMSNFPre,
			RMSNFPost: r.Record.RMSNFPost,
			// The extrapolated SNRs are not persisted; export values that
			// keep every gate path open on replay.
			EstimatedSNR:     10.0,
			EstimatedSNRNext: 10.0,
		}
		action := r.Decision
		if action == "accept" && r.Record.SNRPost < r.Record.SNRPre {
			action = "marginal_accept"
		}
		expected[i] = replay.FixtureExpectedResult{
			Solint: r.Record.Solint,
			Action: action,
		}
	}

	desc := fmt.Sprintf("exported from run %s", runID)
	if target != "" {
		desc += fmt.Sprintf(", target %s", target)
	}
	if band != "" {
		desc += fmt.Sprintf(", band %s", band)
	}

	start := replay.FixtureFloors{}
	if len(rows) > 0 {
		start.RMS = rows[0].Record.RMSPre
		start.RMSNF = rows[0].Record.RMSNFPre
	}

	return replay.Fixture{
		Description:     desc,
		StartFloors:     start,
		Trials:          trials,
		ExpectedResults: expected,
	}
}

func writeFixture(f replay.Fixture, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	fmt.Printf("Wrote %s (%d trials)\n", path, len(f.Trials))
	return nil
}

// #endregion output
