package selfcal

import (
	"context"
	"testing"

	"github.com/r-xue/auto-selfcal/internal/ms"
)

// #region helpers

func checkpointState() *BandState {
	return &BandState{
		Target:      "J1234",
		FlagVersion: "selfcal_starting_flags_J1234_abcd1234",
		Facts: ms.Facts{
			PerVis: []ms.VisFacts{{Vis: "eb1.ms", SpwSelect: "0,1"}},
		},
		Calibration: map[string]VisCalibration{
			"eb1.ms": {
				Gaintables: []string{"eb1_J1234_B6_inf_EB_0.g"},
				SpwMaps:    [][]int{{0, 0}},
				Interp:     []string{"linear"},
				ApplyMode:  "calflag",
			},
		},
	}
}

// #endregion helpers

// #region snapshot-tests

// The snapshot is a deep copy: later mutation of the band state must not
// reach a checkpoint already taken.
func TestTakeCheckpoint_DeepCopy(t *testing.T) {
	st := checkpointState()
	cp := TakeCheckpoint(st)

	cal := st.Calibration["eb1.ms"]
	cal.Gaintables = append(cal.Gaintables, "eb1_J1234_B6_inf_1.g")
	cal.SpwMaps[0][0] = 9
	st.Calibration["eb1.ms"] = cal

	snap := cp.Calibration["eb1.ms"]
	if len(snap.Gaintables) != 1 {
		t.Errorf("gaintable chain leaked into checkpoint: %v", snap.Gaintables)
	}
	if snap.SpwMaps[0][0] != 0 {
		t.Errorf("spwmap mutation leaked into checkpoint: %v", snap.SpwMaps)
	}
}

// #endregion snapshot-tests

// #region restore-tests

func TestRestore_ReappliesChain(t *testing.T) {
	st := checkpointState()
	cp := TakeCheckpoint(st)
	fake := newFakeExec()

	if err := cp.Restore(context.Background(), fake); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if len(fake.flagOps) != 1 || fake.flagOps[0] != "restore" {
		t.Errorf("expected one flag restore, got %v", fake.flagOps)
	}
	if len(fake.applycals) != 1 {
		t.Fatalf("expected one applycal, got %d", len(fake.applycals))
	}
	p := fake.applycals[0]
	if p.Vis != "eb1.ms" || p.Field != "J1234" || len(p.Gaintable) != 1 {
		t.Errorf("unexpected applycal params: %+v", p)
	}
	if p.CalWt {
		t.Error("restore must not recalibrate weights")
	}
	if len(fake.clearcals) != 0 {
		t.Errorf("unexpected clearcal: %v", fake.clearcals)
	}
}

// With no accepted chain the only way back is clearing calibration.
func TestRestore_ClearsWhenNothingAccepted(t *testing.T) {
	st := checkpointState()
	st.Calibration = map[string]VisCalibration{}
	cp := TakeCheckpoint(st)
	fake := newFakeExec()

	if err := cp.Restore(context.Background(), fake); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(fake.clearcals) != 1 || fake.clearcals[0] != "eb1.ms" {
		t.Errorf("expected clearcal of eb1.ms, got %v", fake.clearcals)
	}
	if len(fake.applycals) != 0 {
		t.Errorf("unexpected applycal: %+v", fake.applycals)
	}
}

// Restoring twice leaves the same executor state as restoring once.
func TestRestore_Idempotent(t *testing.T) {
	cp := TakeCheckpoint(checkpointState())

	first := newFakeExec()
	if err := cp.Restore(context.Background(), first); err != nil {
		t.Fatalf("first Restore: %v", err)
	}

	twice := newFakeExec()
	for i := 0; i < 2; i++ {
		if err := cp.Restore(context.Background(), twice); err != nil {
			t.Fatalf("Restore %d: %v", i, err)
		}
	}
	if len(twice.applycals) != 2*len(first.applycals) {
		t.Errorf("restore is not a pure replay: %d vs %d applycals", len(twice.applycals), len(first.applycals))
	}
	if twice.applycals[0].Vis != twice.applycals[1].Vis {
		t.Error("second restore diverged from the first")
	}
}

// #endregion restore-tests
