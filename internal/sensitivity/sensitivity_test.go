package sensitivity

import (
	"context"
	"errors"
	"math"
	"testing"
)

// #region mock
type fakeCalc struct {
	jy, bw, ref float64
	err         error
}

func (f *fakeCalc) ApparentSensitivity(_ context.Context, _ []string, _ map[string]string, _ float64) (float64, float64, float64, error) {
	return f.jy, f.bw, f.ref, f.err
}

// #endregion mock

// #region estimator-tests
func TestTheoretical_Success(t *testing.T) {
	e := NewEstimator(&fakeCalc{jy: 2.5e-5, bw: 7.5e9, ref: 2.3e11})

	est, err := e.Theoretical(context.Background(), []string{"uid_A.ms"}, map[string]string{"uid_A.ms": "25,27"}, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.JyPerBeam != 2.5e-5 {
		t.Errorf("expected 2.5e-5 Jy/beam, got %g", est.JyPerBeam)
	}
	if est.BWHz != 7.5e9 {
		t.Errorf("expected 7.5 GHz bandwidth, got %g", est.BWHz)
	}
}

func TestTheoretical_Error(t *testing.T) {
	e := NewEstimator(&fakeCalc{err: errors.New("backend unavailable")})
	if _, err := e.Theoretical(context.Background(), nil, nil, 0.5); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion estimator-tests

// #region dr-correction-tests

func TestDynamicRangeCorrection_ALMASteps(t *testing.T) {
	sens := 1.0e-5
	cases := []struct {
		name string
		dr   float64
		want float64
	}{
		{"low dynamic range", 10, 1.0},
		{"above 20", 30, 1.5},
		{"above 50", 70, 2.0},
		{"above 100", 120, 2.5},
	}
	for _, tc := range cases {
		got := DynamicRangeCorrection(TelescopeALMA, tc.dr*sens, sens, 1)
		if got != tc.want {
			t.Errorf("%s: correction = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Above the extreme-dynamic-range breakpoint the factor tracks the peak
// itself rather than a fixed step.
func TestDynamicRangeCorrection_ALMAExtreme(t *testing.T) {
	sens := 1.0e-5
	dirtyPeak := 300 * sens // dr = 300 > 150

	got := DynamicRangeCorrection(TelescopeALMA, dirtyPeak, sens, 1)
	want := dirtyPeak / 150.0 * 2.0 / sens // 4.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("correction = %v, want %v", got, want)
	}
}

// Just above the breakpoint the n_dr_max floor dominates.
func TestDynamicRangeCorrection_ALMAExtremeFloor(t *testing.T) {
	sens := 1.0e-5
	dirtyPeak := 160 * sens // dr = 160; peak-tracking term would be 2.13, floor is 2.5

	got := DynamicRangeCorrection(TelescopeALMA, dirtyPeak, sens, 1)
	if got != 2.5 {
		t.Errorf("correction = %v, want 2.5", got)
	}
}

func TestDynamicRangeCorrection_ACASteps(t *testing.T) {
	sens := 1.0e-5
	cases := []struct {
		name string
		dr   float64
		want float64
	}{
		{"low dynamic range", 3, 1.0},
		{"above 4", 8, 1.5},
		{"above 10", 15, 2.0},
		{"above 20", 25, 2.5},
	}
	for _, tc := range cases {
		got := DynamicRangeCorrection(TelescopeACA, tc.dr*sens, sens, 1)
		if got != tc.want {
			t.Errorf("%s: correction = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Single-EB 7m data hits the extreme branch at dr > 30; multi-EB data with
// the same statistics stays on the step ladder until 75.
func TestDynamicRangeCorrection_ACAEBSplit(t *testing.T) {
	sens := 1.0e-5
	dirtyPeak := 60 * sens

	oneEB := DynamicRangeCorrection(TelescopeACA, dirtyPeak, sens, 1)
	want := dirtyPeak / 30.0 * 2.0 / sens // 4.0
	if math.Abs(oneEB-want) > 1e-12 {
		t.Errorf("single EB correction = %v, want %v", oneEB, want)
	}

	multiEB := DynamicRangeCorrection(TelescopeACA, dirtyPeak, sens, 3)
	if multiEB != 3.0 {
		t.Errorf("multi EB correction = %v, want 3.0", multiEB)
	}
}

func TestDynamicRangeCorrection_VLA(t *testing.T) {
	if got := DynamicRangeCorrection(TelescopeVLA, 1.0, 1.0e-5, 1); got != 1.0 {
		t.Errorf("expected no VLA correction, got %v", got)
	}
}

func TestDynamicRangeCorrection_ZeroSensitivity(t *testing.T) {
	if got := DynamicRangeCorrection(TelescopeALMA, 1.0, 0, 1); got != 1.0 {
		t.Errorf("expected 1.0 for non-positive sensitivity, got %v", got)
	}
}

// #endregion dr-correction-tests
