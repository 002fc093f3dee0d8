package store

import (
	"strings"
	"testing"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// #region helpers

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState() *selfcal.BandState {
	st := &selfcal.BandState{
		Target:           "J1234",
		Band:             "B6",
		NTerms:           1,
		SCSuccess:        true,
		FinalSolint:      "inf",
		FinalSolintMode:  "p",
		FinalPhaseSolint: "inf",
		StopReason:       "estimated gain SNR 2.10 for solint 30.00s too low to proceed",
		SNROrig:          20.0,
		SNRFinal:         31.5,
		RMSOrig:          1.2e-5,
		RMSFinal:         0.8e-5,
		DRCorrection:     2.5,
		NSigmaInitial:    20.0,
	}
	st.RecordAttempt(&selfcal.Attempt{
		Solint:    "inf_EB",
		Solmode:   "p",
		ImageName: "J1234_B6_inf_EB_0",
		NSigma:    20.0,
		SNRPre:    20.0,
		SNRPost:   28.0,
		Pass:      true,
	})
	st.RecordAttempt(&selfcal.Attempt{
		Solint:     "inf",
		Solmode:    "p",
		ImageName:  "J1234_B6_inf_1",
		NSigma:     7.7,
		SNRPre:     28.0,
		SNRPost:    31.5,
		Pass:       true,
		FailReason: "",
	})
	return st
}

// #endregion helpers

// #region run-tests

func TestBeginRun(t *testing.T) {
	s := openTestStore(t)

	id, err := s.BeginRun([]string{"eb1.ms", "eb2.ms"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if id == "" || s.RunID() != id {
		t.Errorf("expected bound run id, got %q / %q", id, s.RunID())
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != id {
		t.Fatalf("expected one run %s, got %+v", id, runs)
	}
	if len(runs[0].Vis) != 2 || runs[0].Vis[0] != "eb1.ms" {
		t.Errorf("unexpected vis list: %v", runs[0].Vis)
	}
}

func TestRecordDecision_RequiresRun(t *testing.T) {
	s := openTestStore(t)
	if err := s.RecordDecision("J1234", "B6", "inf", "accept", ""); err == nil {
		t.Fatal("expected error before BeginRun")
	}
}

func TestRecordDecision(t *testing.T) {
	s := openTestStore(t)
	id, err := s.BeginRun([]string{"eb1.ms"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	if err := s.RecordDecision("J1234", "B6", "inf_EB", "accept", "SNR and noise floor improved"); err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if err := s.RecordDecision("J1234", "B6", "inf", "reject", "RMS regression: image 1.200x, near-field 1.100x"); err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}

	got, err := s.Decisions(id)
	if err != nil {
		t.Fatalf("Decisions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 decisions, got %d", len(got))
	}
	if got[0].Decision != "accept" || got[1].Decision != "reject" {
		t.Errorf("decisions out of order: %+v", got)
	}
	if !strings.Contains(got[1].Reason, "RMS regression") {
		t.Errorf("reason not persisted: %q", got[1].Reason)
	}
}

// #endregion run-tests

// #region library-tests

func TestSaveLibrary_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	id, err := s.BeginRun([]string{"eb1.ms"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	lib := make(selfcal.Library)
	lib.Put(sampleState())
	if err := s.SaveLibrary(lib); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}

	bands, err := s.BandResults(id)
	if err != nil {
		t.Fatalf("BandResults: %v", err)
	}
	if len(bands) != 1 {
		t.Fatalf("expected one band row, got %d", len(bands))
	}
	b := bands[0]
	if !b.SCSuccess || b.FinalSolint != "inf" || b.FinalPhaseSolint != "inf" {
		t.Errorf("band outcome not persisted: %+v", b)
	}
	if b.SNRFinal != 31.5 || b.RMSFinal != 0.8e-5 || b.DRCorrection != 2.5 {
		t.Errorf("band statistics not persisted: %+v", b)
	}

	attempts, err := s.Attempts(id, "J1234", "B6")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Solint != "inf_EB" || attempts[1].Solint != "inf" {
		t.Errorf("attempts out of order: %+v", attempts)
	}
	if attempts[0].ImageName != "J1234_B6_inf_EB_0" || !attempts[0].Pass {
		t.Errorf("attempt record mangled: %+v", attempts[0])
	}
}

// Re-saving the same library updates the band row instead of duplicating it,
// but the attempt rows are write-once.
func TestSaveLibrary_UpsertBandOnceAttempts(t *testing.T) {
	s := openTestStore(t)
	id, err := s.BeginRun([]string{"eb1.ms"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	lib := make(selfcal.Library)
	lib.Put(sampleState())
	if err := s.SaveLibrary(lib); err != nil {
		t.Fatalf("first SaveLibrary: %v", err)
	}
	if err := s.SaveLibrary(lib); err == nil {
		t.Fatal("expected second save to violate the attempt uniqueness constraint")
	}

	// The failed transaction rolled back: still exactly one band row and the
	// original attempts.
	bands, err := s.BandResults(id)
	if err != nil {
		t.Fatalf("BandResults: %v", err)
	}
	if len(bands) != 1 {
		t.Errorf("expected one band row after rollback, got %d", len(bands))
	}
	attempts, err := s.Attempts(id, "J1234", "B6")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("expected original 2 attempts after rollback, got %d", len(attempts))
	}
}

// #endregion library-tests

// #region resume-tests

func TestPriorAccepted(t *testing.T) {
	s := openTestStore(t)

	// First run persists an accepted inf_EB attempt.
	if _, err := s.BeginRun([]string{"eb1.ms"}); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	lib := make(selfcal.Library)
	lib.Put(sampleState())
	if err := s.SaveLibrary(lib); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}

	// Second run can resume from it.
	if _, err := s.BeginRun([]string{"eb1.ms"}); err != nil {
		t.Fatalf("second BeginRun: %v", err)
	}
	name, ok := s.PriorAccepted("J1234", "B6", "inf_EB", 1)
	if !ok || name != "J1234_B6_inf_EB_0" {
		t.Errorf("expected prior inf_EB products, got %q (ok=%t)", name, ok)
	}

	if _, ok := s.PriorAccepted("J1234", "B6", "int", 1); ok {
		t.Error("expected no prior for an unattempted solint")
	}
	if _, ok := s.PriorAccepted("J1234", "B6", "inf_EB", 2); ok {
		t.Error("expected no prior with mismatched nterms")
	}
}

// A run never resumes from its own rows.
func TestPriorAccepted_ExcludesCurrentRun(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.BeginRun([]string{"eb1.ms"}); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	lib := make(selfcal.Library)
	lib.Put(sampleState())
	if err := s.SaveLibrary(lib); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}

	if _, ok := s.PriorAccepted("J1234", "B6", "inf_EB", 1); ok {
		t.Error("expected current run's attempts to be excluded")
	}
}

// #endregion resume-tests
