package replay

import (
	"testing"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// helper: observation that cleanly improves everything.
func improvingTrial(solint string) selfcal.Observation {
	return selfcal.Observation{
		Solint:        solint,
		SNRPre:        20.0,
		SNRPost:       28.0,
		SNRNFPre:      16.0,
		SNRNFPost:     22.0,
		RMSPre:        1.0e-4,
		RMSPost:       8.0e-5,
		RMSNFPre:      1.2e-4,
		RMSNFPost:     9.0e-5,
		DeltaBeamArea: 0.01,
		EstimatedSNR:  10.0,
	}
}

// helper: observation with an RMS regression and too little estimated SNR
// to override it.
func regressingTrial(solint string) selfcal.Observation {
	obs := improvingTrial(solint)
	obs.RMSPost = 1.2e-4
	obs.RMSNFPost = 1.4e-4
	obs.SNRPost = 19.0
	obs.SNRNFPost = 15.0
	obs.EstimatedSNR = 4.0
	return obs
}

// 1. Accepted trial advances the noise floors.
func TestReplay_AcceptTightensFloors(t *testing.T) {
	start := Floors{RMS: 1.0e-4, RMSNF: 1.2e-4}
	results := Replay(start, []selfcal.Observation{improvingTrial("inf")}, selfcal.DefaultGateConfig())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Action != "accept" {
		t.Errorf("expected action=accept, got %s (reason: %s)", r.Action, r.Reason)
	}
	if r.RMSCurr != 8.0e-5 {
		t.Errorf("expected RMS floor 8.0e-5, got %g", r.RMSCurr)
	}
	if r.RMSNFCurr != 9.0e-5 {
		t.Errorf("expected NF floor 9.0e-5, got %g", r.RMSNFCurr)
	}
}

// 2. Rejected trial leaves the floors untouched.
func TestReplay_RejectKeepsFloors(t *testing.T) {
	start := Floors{RMS: 1.0e-4, RMSNF: 1.2e-4}
	results := Replay(start, []selfcal.Observation{regressingTrial("inf")}, selfcal.DefaultGateConfig())

	r := results[0]
	if r.Action != "reject" {
		t.Errorf("expected action=reject, got %s", r.Action)
	}
	if r.RMSCurr != start.RMS || r.RMSNFCurr != start.RMSNF {
		t.Errorf("floors moved on reject: RMS %g NF %g", r.RMSCurr, r.RMSNFCurr)
	}
}

// 3. The floors never rise, even when a later accepted trial has a noisier
// post image than an earlier one.
func TestReplay_FloorsAreMonotone(t *testing.T) {
	start := Floors{RMS: 1.0e-4, RMSNF: 1.2e-4}
	first := improvingTrial("inf")

	second := improvingTrial("96.00s")
	second.RMSPre = 8.0e-5
	second.RMSPost = 8.2e-5 // ratio 1.025, still accepted
	second.RMSNFPre = 9.0e-5
	second.RMSNFPost = 9.2e-5
	second.SNRPre = 28.0
	second.SNRPost = 28.5
	second.SNRNFPre = 22.0
	second.SNRNFPost = 22.3

	results := Replay(start, []selfcal.Observation{first, second}, selfcal.DefaultGateConfig())
	if results[1].Action != "accept" {
		t.Fatalf("expected second trial accepted, got %s (reason: %s)", results[1].Action, results[1].Reason)
	}
	if results[1].RMSCurr != 8.0e-5 {
		t.Errorf("floor rose: expected 8.0e-5, got %g", results[1].RMSCurr)
	}
	if results[1].RMSNFCurr != 9.0e-5 {
		t.Errorf("NF floor rose: expected 9.0e-5, got %g", results[1].RMSNFCurr)
	}
}

// 4. Marginal inf_EB carve-out is reported as its own action.
func TestReplay_MarginalInfEB(t *testing.T) {
	obs := selfcal.Observation{
		Solint:           "inf_EB",
		IsInfEB:          true,
		SNRPre:           20.0,
		SNRPost:          19.8,
		SNRNFPre:         16.0,
		SNRNFPost:        15.9,
		RMSPre:           1.0e-4,
		RMSPost:          9.9e-5,
		RMSNFPre:         1.2e-4,
		RMSNFPost:        1.19e-4,
		DeltaBeamArea:    0.01,
		EstimatedSNR:     10.0,
		EstimatedSNRNext: 8.0,
	}
	results := Replay(Floors{RMS: 1.0e-4, RMSNF: 1.2e-4}, []selfcal.Observation{obs}, selfcal.DefaultGateConfig())

	if results[0].Action != "marginal_accept" {
		t.Errorf("expected action=marginal_accept, got %s (reason: %s)", results[0].Action, results[0].Reason)
	}
}

// 5. Summarize counts actions and tracks the last accepted solint.
func TestSummarize(t *testing.T) {
	start := Floors{RMS: 1.0e-4, RMSNF: 1.2e-4}
	trials := []selfcal.Observation{
		improvingTrial("inf"),
		regressingTrial("96.00s"),
	}
	results := Replay(start, trials, selfcal.DefaultGateConfig())
	s := Summarize(results)

	if s.TotalTrials != 2 {
		t.Errorf("expected 2 trials, got %d", s.TotalTrials)
	}
	if s.Accepts != 1 || s.Rejects != 1 {
		t.Errorf("expected 1 accept / 1 reject, got %d / %d", s.Accepts, s.Rejects)
	}
	if s.FinalSolint != "inf" {
		t.Errorf("expected final solint 'inf', got %q", s.FinalSolint)
	}
	if s.FinalFloors.RMS != 8.0e-5 {
		t.Errorf("expected final RMS floor 8.0e-5, got %g", s.FinalFloors.RMS)
	}
}

// 6. Empty input yields an empty, well-formed summary.
func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalTrials != 0 {
		t.Errorf("expected 0 trials, got %d", s.TotalTrials)
	}
	if s.FinalSolint != "None" {
		t.Errorf("expected final solint 'None', got %q", s.FinalSolint)
	}
}
