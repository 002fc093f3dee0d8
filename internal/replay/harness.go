package replay

import (
	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// #region types
// Floors is the monotone noise-floor state carried across trials.
type Floors struct {
	RMS   float64
	RMSNF float64
}

// Result captures the outcome of replaying one recorded trial through the
// acceptance gate.
type Result struct {
	Solint string
	Action string // "accept" | "marginal_accept" | "reject"
	Reason string

	// Noise floors after this trial (unchanged if rejected).
	RMSCurr   float64
	RMSNFCurr float64
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTrials int
	Accepts     int
	Marginal    int
	Rejects     int

	// FinalSolint is the last accepted interval, or "None".
	FinalSolint string
	FinalFloors Floors
}

// #endregion types

// #region replay
// Replay pushes recorded per-solint observations through the acceptance gate
// in order, maintaining the monotone noise floors exactly as the live loop
// does. Operates entirely in-memory: no imaging, no calibration.
func Replay(start Floors, trials []selfcal.Observation, cfg selfcal.GateConfig) []Result {
	floors := start
	results := make([]Result, 0, len(trials))

	for _, obs := range trials {
		verdict := selfcal.Evaluate(obs, cfg)

		r := Result{Solint: obs.Solint, Reason: verdict.Reason}
		switch {
		case verdict.Accept && verdict.Marginal:
			r.Action = "marginal_accept"
		case verdict.Accept:
			r.Action = "accept"
		default:
			r.Action = "reject"
		}

		if verdict.Accept {
			if obs.RMSPost > 0 && obs.RMSPost < floors.RMS {
				floors.RMS = obs.RMSPost
			}
			if obs.RMSNFPost > 0 && obs.RMSNFPost < floors.RMSNF {
				floors.RMSNF = obs.RMSNFPost
			}
		}
		r.RMSCurr = floors.RMS
		r.RMSNFCurr = floors.RMSNF
		results = append(results, r)
	}
	return results
}

// #endregion replay

// #region summarize
// Summarize aggregates replay results.
func Summarize(results []Result) Summary {
	s := Summary{TotalTrials: len(results), FinalSolint: "None"}
	for _, r := range results {
		switch r.Action {
		case "accept":
			s.Accepts++
			s.FinalSolint = r.Solint
		case "marginal_accept":
			s.Marginal++
			s.FinalSolint = r.Solint
		case "reject":
			s.Rejects++
		}
		s.FinalFloors = Floors{RMS: r.RMSCurr, RMSNF: r.RMSNFCurr}
	}
	return s
}

// #endregion summarize
