package solint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// helper: n identical scans of the given duration and integration time.
func uniformTiming(nScans int, duration, integration float64) ScanTiming {
	t := ScanTiming{}
	for i := 0; i < nScans; i++ {
		t.Durations = append(t.Durations, duration)
		t.Starts = append(t.Starts, float64(i)*duration*2)
		t.Ends = append(t.Ends, float64(i)*duration*2+duration)
		t.IntegrationTimes = append(t.IntegrationTimes, integration)
	}
	return t
}

// #region plan-tests

// Reference case: 300s scans at 6s integrations with four target rungs
// gives divider 3 and the descending ladder 96s, 30s.
func TestPlan_ReferenceLadder(t *testing.T) {
	timings := []ScanTiming{uniformTiming(3, 300, 6)}

	ladder, err := Plan(timings, 100, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"inf_EB", "inf", "96.00s", "30.00s", "int"}
	if diff := cmp.Diff(want, ladder.Tags()); diff != "" {
		t.Errorf("ladder mismatch (-want +got):\n%s", diff)
	}
	if ladder.IntegrationTime != 6 {
		t.Errorf("expected integration time 6, got %v", ladder.IntegrationTime)
	}
}

// A single scan per observation makes the per-scan rung redundant with
// inf_EB, so it is omitted.
func TestPlan_SingleScanSkipsInf(t *testing.T) {
	timings := []ScanTiming{uniformTiming(1, 300, 6)}

	ladder, err := Plan(timings, 100, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tag := range ladder.Tags() {
		if tag == "inf" {
			t.Errorf("unexpected 'inf' rung in single-scan ladder: %v", ladder.Tags())
		}
	}
	if ladder.Tags()[0] != "inf_EB" {
		t.Errorf("expected ladder to start at inf_EB, got %v", ladder.Tags())
	}
}

// Short scans where every candidate collapses into the integration time
// still produce the mandatory inf_EB and int rungs.
func TestPlan_ShortScans(t *testing.T) {
	timings := []ScanTiming{uniformTiming(4, 18, 6)}

	ladder, err := Plan(timings, 50, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"inf_EB", "inf", "int"}
	if diff := cmp.Diff(want, ladder.Tags()); diff != "" {
		t.Errorf("ladder mismatch (-want +got):\n%s", diff)
	}
}

// Amplitude selfcal appends inf_ap; a long calibrator cycle also inserts
// the 300s amplitude rung ahead of it.
func TestPlan_AmplitudeLadder(t *testing.T) {
	cfg := DefaultPlannerConfig()
	cfg.AmplitudeSelfcal = true
	timings := []ScanTiming{uniformTiming(3, 300, 6)}

	short, err := Plan(timings, 100, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags := short.Tags()
	if tags[len(tags)-1] != "inf_ap" {
		t.Errorf("expected ladder to end with inf_ap, got %v", tags)
	}
	for _, tag := range tags {
		if tag == "300s_ap" {
			t.Errorf("unexpected 300s_ap with short cycle time: %v", tags)
		}
	}

	long, err := Plan(timings, 200, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags = long.Tags()
	if tags[len(tags)-2] != "300s_ap" || tags[len(tags)-1] != "inf_ap" {
		t.Errorf("expected ...300s_ap, inf_ap with long cycle time, got %v", tags)
	}
}

// With one single-scan and one two-scan observation, the median scan count is
// 1.5, which is enough to keep the per-scan rung in the ladder.
func TestPlan_InfRungWithMixedScanCounts(t *testing.T) {
	timings := []ScanTiming{
		uniformTiming(1, 300, 6),
		uniformTiming(2, 300, 6),
	}

	ladder, err := Plan(timings, 100, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, tag := range ladder.Tags() {
		if tag == "inf" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'inf' rung for median 1.5 scans per observation, got %v", ladder.Tags())
	}
}

func TestPlan_NoTimings(t *testing.T) {
	if _, err := Plan(nil, 100, DefaultPlannerConfig()); err == nil {
		t.Fatal("expected error for empty timing data")
	}
}

// #endregion plan-tests

// #region divider-tests

func TestSolintDivider(t *testing.T) {
	cases := []struct {
		name        string
		scan, integ float64
		nSolints    float64
		want        float64
	}{
		{"reference", 300, 6, 4, 3},
		{"floored at two", 60, 30, 4, 2},
		{"deep ladder", 1200, 2, 4, 5},
	}
	for _, tc := range cases {
		if got := solintDivider(tc.scan, tc.integ, tc.nSolints); got != tc.want {
			t.Errorf("%s: solintDivider(%v, %v, %v) = %v, want %v",
				tc.name, tc.scan, tc.integ, tc.nSolints, got, tc.want)
		}
	}
}

// #endregion divider-tests

// #region snap-tests

// Snapping prefers the offset that divides the scans evenly: 33.3s against
// 300s scans lands on 30s (ten whole intervals per scan), not 36s.
func TestSnapToIntegrations_PrefersEvenDivision(t *testing.T) {
	got := snapToIntegrations(100.0/3.0, 6, []float64{300, 300, 300})
	if got != 30 {
		t.Errorf("expected snap to 30s, got %vs", got)
	}
}

func TestSnapToIntegrations_LeastLeftover(t *testing.T) {
	// No offset divides 300 evenly near 100s; 96s leaves the smallest
	// partial trailing interval.
	got := snapToIntegrations(100, 6, []float64{300, 300, 300})
	if got != 96 {
		t.Errorf("expected snap to 96s, got %vs", got)
	}
}

// #endregion snap-tests

// #region median-tests

func TestMedian(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 7},
		{"odd", []float64{90, 30, 60}, 60},
		{"even interpolates", []float64{2, 1}, 1.5},
		{"even four", []float64{120, 30, 90, 60}, 75},
	}
	for _, tc := range cases {
		if got := median(tc.vals); got != tc.want {
			t.Errorf("%s: median(%v) = %v, want %v", tc.name, tc.vals, got, tc.want)
		}
	}
}

// #endregion median-tests

// #region interval-tests

func TestInterval_Tags(t *testing.T) {
	cases := []struct {
		iv   Interval
		want string
	}{
		{InfEB(), "inf_EB"},
		{Inf(), "inf"},
		{Duration(96), "96.00s"},
		{Duration(45.234), "45.23s"},
		{Interval{Kind: KindInt}, "int"},
		{AmpInf(), "inf_ap"},
		{AmpDuration(300), "300s_ap"},
	}
	for _, tc := range cases {
		if got := tc.iv.Tag(); got != tc.want {
			t.Errorf("Tag() = %q, want %q", got, tc.want)
		}
	}
}

func TestInterval_GaincalSolint(t *testing.T) {
	if got := InfEB().GaincalSolint(); got != "inf" {
		t.Errorf("inf_EB gaincal solint = %q, want inf", got)
	}
	if got := AmpDuration(300).GaincalSolint(); got != "300.00s" {
		t.Errorf("300s_ap gaincal solint = %q, want 300.00s", got)
	}
}

func TestLadder_AmplitudeIndex(t *testing.T) {
	l := Ladder{Entries: []Entry{
		{Interval: InfEB()},
		{Interval: Inf()},
		{Interval: AmpInf()},
	}}
	if got := l.PhaseCount(); got != 2 {
		t.Errorf("PhaseCount = %d, want 2", got)
	}
	if got := l.FirstAmplitudeIndex(); got != 2 {
		t.Errorf("FirstAmplitudeIndex = %d, want 2", got)
	}

	phaseOnly := Ladder{Entries: []Entry{{Interval: InfEB()}}}
	if got := phaseOnly.FirstAmplitudeIndex(); got != -1 {
		t.Errorf("FirstAmplitudeIndex = %d, want -1", got)
	}
}

// #endregion interval-tests

// #region cycle-time-tests

func TestCycleTime(t *testing.T) {
	timing := ScanTiming{Starts: []float64{0, 400, 800, 1200}}
	if got := CycleTime([]ScanTiming{timing}); got != 400 {
		t.Errorf("CycleTime = %v, want 400", got)
	}
}

func TestCycleTime_MaxAcrossVis(t *testing.T) {
	a := ScanTiming{Starts: []float64{0, 300, 600}}
	b := ScanTiming{Starts: []float64{0, 500, 1000}}
	if got := CycleTime([]ScanTiming{a, b}); got != 500 {
		t.Errorf("CycleTime = %v, want 500", got)
	}
}

// #endregion cycle-time-tests
