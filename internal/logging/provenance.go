package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// #region log-evaluation
// LogEvaluation writes a gate-evaluation entry to the eval_log table.
func LogEvaluation(db *sql.DB, entry EvalEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO eval_log (run_id, target, band, solint, decision, reason, record_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Target,
		entry.Band,
		entry.Solint,
		entry.Decision,
		nullIfEmpty(entry.Reason),
		nullIfEmpty(entry.RecordJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log evaluation: %w", err)
	}
	return nil
}

// #endregion log-evaluation

// #region attempt-conversion
// FromAttempt serializes one recorded attempt into its JSON provenance form.
func FromAttempt(a *selfcal.Attempt) (string, error) {
	rec := AttemptRecord{
		Solint:      a.Solint,
		Solmode:     a.Solmode,
		ImageName:   a.ImageName,
		NSigma:      a.NSigma,
		ThresholdJy: a.CleanThresholdJy,
		SNRPre:      a.SNRPre,
		SNRPost:     a.SNRPost,
		SNRNFPre:    a.SNRNFPre,
		SNRNFPost:   a.SNRNFPost,
		RMSPre:      a.RMSPre,
		RMSPost:     a.RMSPost,
		RMSNFPre:    a.RMSNFPre,
		RMSNFPost:   a.RMSNFPost,
		BeamPre: BeamRecord{
			MajorArcsec: a.BeamPre.MajorArcsec,
			MinorArcsec: a.BeamPre.MinorArcsec,
			PosAngleDeg: a.BeamPre.PosAngleDeg,
		},
		BeamPost: BeamRecord{
			MajorArcsec: a.BeamPost.MajorArcsec,
			MinorArcsec: a.BeamPost.MinorArcsec,
			PosAngleDeg: a.BeamPost.PosAngleDeg,
		},
		IntfluxPre:  a.IntfluxPre,
		IntfluxPost: a.IntfluxPost,
		Pass:        a.Pass,
		FailReason:  a.FailReason,
	}
	if len(a.PerVis) > 0 {
		rec.PerVis = make(map[string]CalRecord, len(a.PerVis))
		for vis, cal := range a.PerVis {
			rec.PerVis[vis] = CalRecord{
				Gaintables: cal.Gaintables,
				SpwMaps:    cal.SpwMaps,
				Interp:     cal.Interp,
				ApplyMode:  cal.ApplyMode,
			}
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal attempt record: %w", err)
	}
	return string(data), nil
}

// LogAttempts writes every recorded attempt of a band as eval_log rows.
func LogAttempts(db *sql.DB, runID string, st *selfcal.BandState) error {
	for _, a := range st.Attempts() {
		recordJSON, err := FromAttempt(a)
		if err != nil {
			return err
		}
		decision := "reject"
		if a.Pass {
			decision = "accept"
		}
		err = LogEvaluation(db, EvalEntry{
			RunID:      runID,
			Target:     st.Target,
			Band:       st.Band,
			Solint:     a.Solint,
			Decision:   decision,
			Reason:     a.FailReason,
			RecordJSON: recordJSON,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// #endregion attempt-conversion

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
