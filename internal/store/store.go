package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	vis         TEXT NOT NULL,
	started_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS band_results (
	run_id             TEXT NOT NULL,
	target             TEXT NOT NULL,
	band               TEXT NOT NULL,
	sc_success         INTEGER NOT NULL,
	final_solint       TEXT NOT NULL,
	final_solint_mode  TEXT,
	final_phase_solint TEXT,
	stop_reason        TEXT,
	nterms             INTEGER NOT NULL,
	snr_orig           REAL, snr_final    REAL,
	snr_nf_orig        REAL, snr_nf_final REAL,
	rms_orig           REAL, rms_final    REAL,
	rms_nf_orig        REAL, rms_nf_final REAL,
	intflux_orig       REAL, intflux_final REAL,
	dr_correction      REAL,
	nsigma_initial     REAL,
	updated_at         TEXT NOT NULL,
	PRIMARY KEY (run_id, target, band),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS attempts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	target      TEXT NOT NULL,
	band        TEXT NOT NULL,
	solint      TEXT NOT NULL,
	solmode     TEXT NOT NULL,
	image_name  TEXT NOT NULL,
	nterms      INTEGER NOT NULL,
	nsigma      REAL,
	threshold   REAL,
	snr_pre     REAL, snr_post    REAL,
	snr_nf_pre  REAL, snr_nf_post REAL,
	rms_pre     REAL, rms_post    REAL,
	rms_nf_pre  REAL, rms_nf_post REAL,
	pass        INTEGER NOT NULL,
	fail_reason TEXT,
	created_at  TEXT NOT NULL,
	UNIQUE (run_id, target, band, solint),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS eval_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	target      TEXT NOT NULL,
	band        TEXT NOT NULL,
	solint      TEXT NOT NULL,
	decision    TEXT NOT NULL,
	reason      TEXT,
	record_json TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS decisions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	target      TEXT NOT NULL,
	band        TEXT NOT NULL,
	solint      TEXT NOT NULL,
	decision    TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store persists runs, band outcomes, per-solint attempts, and decision
// events in SQLite. It implements selfcal.Recorder for the run it was
// opened with.
type Store struct {
	db  *sql.DB
	run string
}

// #endregion store-struct

// #region constructor
// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region begin-run
// BeginRun registers a new run and binds the store's Recorder methods to it.
func (s *Store) BeginRun(vis []string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, vis, started_at) VALUES (?, ?, ?)`,
		id, strings.Join(vis, ","), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	s.run = id
	return id, nil
}

// RunID returns the bound run, or "" before BeginRun.
func (s *Store) RunID() string { return s.run }

// #endregion begin-run

// #region recorder
// RecordDecision appends one accept/reject event for the bound run.
func (s *Store) RecordDecision(target, band, solint, decision, reason string) error {
	if s.run == "" {
		return fmt.Errorf("no run bound; call BeginRun first")
	}
	_, err := s.db.Exec(
		`INSERT INTO decisions (run_id, target, band, solint, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.run, target, band, solint, decision, reason,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

// PriorAccepted looks up the most recent accepted attempt for the same
// (target, band, solint) from any earlier run with matching nterms, for the
// resume fast path. The current run's rows are excluded.
func (s *Store) PriorAccepted(target, band, solint string, nterms int) (string, bool) {
	var name string
	err := s.db.QueryRow(
		`SELECT image_name FROM attempts
		 WHERE target = ? AND band = ? AND solint = ? AND nterms = ?
		   AND pass = 1 AND run_id != ?
		 ORDER BY created_at DESC LIMIT 1`,
		target, band, solint, nterms, s.run,
	).Scan(&name)
	if err != nil {
		return "", false
	}
	return name, true
}

// #endregion recorder

// #region save-library
// SaveLibrary persists the full result of a run: one band_results row per
// (target, band), plus every recorded attempt.
func (s *Store) SaveLibrary(lib selfcal.Library) error {
	if s.run == "" {
		return fmt.Errorf("no run bound; call BeginRun first")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, bands := range lib {
		for _, st := range bands {
			_, err := tx.Exec(
				`INSERT INTO band_results (
					run_id, target, band, sc_success, final_solint, final_solint_mode,
					final_phase_solint, stop_reason, nterms,
					snr_orig, snr_final, snr_nf_orig, snr_nf_final,
					rms_orig, rms_final, rms_nf_orig, rms_nf_final,
					intflux_orig, intflux_final, dr_correction, nsigma_initial, updated_at
				 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				 ON CONFLICT(run_id, target, band) DO UPDATE SET
					sc_success = excluded.sc_success,
					final_solint = excluded.final_solint,
					stop_reason = excluded.stop_reason,
					snr_final = excluded.snr_final,
					rms_final = excluded.rms_final,
					updated_at = excluded.updated_at`,
				s.run, st.Target, st.Band, boolInt(st.SCSuccess), st.FinalSolint,
				st.FinalSolintMode, st.FinalPhaseSolint, st.StopReason, st.NTerms,
				st.SNROrig, st.SNRFinal, st.SNRNFOrig, st.SNRNFFinal,
				st.RMSOrig, st.RMSFinal, st.RMSNFOrig, st.RMSNFFinal,
				st.IntfluxOrig, st.IntfluxFinal, st.DRCorrection, st.NSigmaInitial, now,
			)
			if err != nil {
				return fmt.Errorf("insert band result %s/%s: %w", st.Target, st.Band, err)
			}

			for _, a := range st.Attempts() {
				_, err := tx.Exec(
					`INSERT INTO attempts (
						run_id, target, band, solint, solmode, image_name, nterms,
						nsigma, threshold,
						snr_pre, snr_post, snr_nf_pre, snr_nf_post,
						rms_pre, rms_post, rms_nf_pre, rms_nf_post,
						pass, fail_reason, created_at
					 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					s.run, st.Target, st.Band, a.Solint, a.Solmode, a.ImageName, st.NTerms,
					a.NSigma, a.CleanThresholdJy,
					a.SNRPre, a.SNRPost, a.SNRNFPre, a.SNRNFPost,
					a.RMSPre, a.RMSPost, a.RMSNFPre, a.RMSNFPost,
					boolInt(a.Pass), a.FailReason, now,
				)
				if err != nil {
					return fmt.Errorf("insert attempt %s/%s/%s: %w", st.Target, st.Band, a.Solint, err)
				}
			}
		}
	}
	return tx.Commit()
}

// #endregion save-library

// #region queries
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, vis, started_at FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var r RunRow
		var vis, started string
		if err := rows.Scan(&r.RunID, &vis, &started); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if vis != "" {
			r.Vis = strings.Split(vis, ",")
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		out = append(out, r)
	}
	return out, rows.Err()
}

// BandResults returns every band outcome of one run.
func (s *Store) BandResults(runID string) ([]BandRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, target, band, sc_success, final_solint, final_solint_mode,
			final_phase_solint, stop_reason, nterms,
			snr_orig, snr_final, snr_nf_orig, snr_nf_final,
			rms_orig, rms_final, rms_nf_orig, rms_nf_final,
			intflux_orig, intflux_final, dr_correction, nsigma_initial, updated_at
		 FROM band_results WHERE run_id = ? ORDER BY target, band`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("band results: %w", err)
	}
	defer rows.Close()

	var out []BandRow
	for rows.Next() {
		var b BandRow
		var success int
		var mode, phase, reason sql.NullString
		var updated string
		err := rows.Scan(
			&b.RunID, &b.Target, &b.Band, &success, &b.FinalSolint, &mode,
			&phase, &reason, &b.NTerms,
			&b.SNROrig, &b.SNRFinal, &b.SNRNFOrig, &b.SNRNFFinal,
			&b.RMSOrig, &b.RMSFinal, &b.RMSNFOrig, &b.RMSNFFinal,
			&b.IntfluxOrig, &b.IntfluxFinal, &b.DRCorrection, &b.NSigmaInitial, &updated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan band result: %w", err)
		}
		b.SCSuccess = success != 0
		b.FinalSolintMode = mode.String
		b.FinalPhaseSolint = phase.String
		b.StopReason = reason.String
		b.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Attempts returns one band's attempts in insertion order.
func (s *Store) Attempts(runID, target, band string) ([]AttemptRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, target, band, solint, solmode, image_name, nterms,
			nsigma, threshold,
			snr_pre, snr_post, snr_nf_pre, snr_nf_post,
			rms_pre, rms_post, rms_nf_pre, rms_nf_post,
			pass, fail_reason, created_at
		 FROM attempts WHERE run_id = ? AND target = ? AND band = ? ORDER BY id`,
		runID, target, band,
	)
	if err != nil {
		return nil, fmt.Errorf("attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRow
	for rows.Next() {
		var a AttemptRow
		var pass int
		var failReason sql.NullString
		var created string
		err := rows.Scan(
			&a.RunID, &a.Target, &a.Band, &a.Solint, &a.Solmode, &a.ImageName, &a.NTerms,
			&a.NSigma, &a.Threshold,
			&a.SNRPre, &a.SNRPost, &a.SNRNFPre, &a.SNRNFPost,
			&a.RMSPre, &a.RMSPost, &a.RMSNFPre, &a.RMSNFPost,
			&pass, &failReason, &created,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Pass = pass != 0
		a.FailReason = failReason.String
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Decisions returns one run's decision events in arrival order.
func (s *Store) Decisions(runID string) ([]DecisionRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, target, band, solint, decision, reason, created_at
		 FROM decisions WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionRow
	for rows.Next() {
		var d DecisionRow
		var reason sql.NullString
		var created string
		if err := rows.Scan(&d.RunID, &d.Target, &d.Band, &d.Solint, &d.Decision, &reason, &created); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.Reason = reason.String
		d.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, d)
	}
	return out, rows.Err()
}

// #endregion queries

// #region helpers
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
