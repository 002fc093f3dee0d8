package flagging

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// #region analyze-tests

func TestAnalyzeInfEB_NoDeficiency(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 0, FlaggedSolns: 1, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
		{SpwID: 1, FlaggedSolns: 1, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
	}

	d, err := AnalyzeInfEB(stats, 1)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackNone {
		t.Errorf("expected no fallback, got %q", d.Mode)
	}
	if diff := cmp.Diff([]int{0, 1}, d.ApplycalSpwMap); diff != "" {
		t.Errorf("spwmap mismatch (-want +got):\n%s", diff)
	}
}

// Antennas the combined probe solve also lost are not a per-spw deficiency,
// so heavy but uniform flagging stays on the per-spw solution.
func TestAnalyzeInfEB_CombinedBaselineDiscounted(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 0, FlaggedSolns: 4, UnflaggedSolns: 20, EffectiveBWHz: 2e9},
		{SpwID: 1, FlaggedSolns: 4, UnflaggedSolns: 20, EffectiveBWHz: 2e9},
	}

	d, err := AnalyzeInfEB(stats, 4)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackNone {
		t.Errorf("expected no fallback, got %q", d.Mode)
	}
}

func TestAnalyzeInfEB_SpwMapSingleDeficient(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 0, FlaggedSolns: 0, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
		{SpwID: 1, FlaggedSolns: 0, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
		{SpwID: 3, FlaggedSolns: 3, UnflaggedSolns: 37, EffectiveBWHz: 1e9},
	}

	d, err := AnalyzeInfEB(stats, 0)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackSpwMap {
		t.Fatalf("expected spwmap fallback, got %q", d.Mode)
	}
	if d.DonorIndex != 0 {
		t.Errorf("expected donor index 0, got %d", d.DonorIndex)
	}
	if diff := cmp.Diff([]bool{false, false, true}, d.Mapped); diff != "" {
		t.Errorf("mapped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 0}, d.ApplycalSpwMap); diff != "" {
		t.Errorf("spwmap mismatch (-want +got):\n%s", diff)
	}
}

// Equal flagged counts among donor candidates: the wider window wins.
func TestAnalyzeInfEB_DonorTieBreakPrefersWiderBandwidth(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 3, FlaggedSolns: 2, UnflaggedSolns: 38, EffectiveBWHz: 1e8},
		{SpwID: 5, FlaggedSolns: 2, UnflaggedSolns: 38, EffectiveBWHz: 2e8},
		{SpwID: 7, FlaggedSolns: 6, UnflaggedSolns: 34, EffectiveBWHz: 5e7},
	}

	d, err := AnalyzeInfEB(stats, 0)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackSpwMap {
		t.Fatalf("expected spwmap fallback, got %q", d.Mode)
	}
	if d.DonorIndex != 1 {
		t.Errorf("expected spw 5 (index 1) as donor, got index %d", d.DonorIndex)
	}
	if d.ApplycalSpwMap[7] != 5 {
		t.Errorf("expected spw 7 mapped to 5, got %d", d.ApplycalSpwMap[7])
	}
	if d.ApplycalSpwMap[3] != 3 {
		t.Errorf("expected spw 3 to keep its own solution, got %d", d.ApplycalSpwMap[3])
	}
}

// When even the least-flagged window loses more antennas than the combined
// baseline tolerates, per-spw solving is abandoned outright.
func TestAnalyzeInfEB_CombineSpwWhenAllBadlyFlagged(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 0, FlaggedSolns: 5, UnflaggedSolns: 10, EffectiveBWHz: 2e9},
		{SpwID: 1, FlaggedSolns: 6, UnflaggedSolns: 9, EffectiveBWHz: 2e9},
	}

	d, err := AnalyzeInfEB(stats, 1)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackCombineSpw {
		t.Fatalf("expected combinespw fallback, got %q", d.Mode)
	}
	if d.DonorIndex != -1 {
		t.Errorf("expected no donor, got index %d", d.DonorIndex)
	}
	if diff := cmp.Diff([]bool{true, true}, d.Mapped); diff != "" {
		t.Errorf("mapped mismatch (-want +got):\n%s", diff)
	}
}

// A deficient wide window drags every comparable-or-narrower window with it;
// when nothing is left to donate the decision escalates to combinespw.
func TestAnalyzeInfEB_DragDownEscalatesToCombineSpw(t *testing.T) {
	stats := []SpwStats{
		{SpwID: 0, FlaggedSolns: 0, UnflaggedSolns: 40, EffectiveBWHz: 1e8},
		{SpwID: 1, FlaggedSolns: 5, UnflaggedSolns: 35, EffectiveBWHz: 2e8},
	}

	d, err := AnalyzeInfEB(stats, 0)
	if err != nil {
		t.Fatalf("AnalyzeInfEB: %v", err)
	}
	if d.Mode != FallbackCombineSpw {
		t.Errorf("expected combinespw after drag-down, got %q", d.Mode)
	}
}

func TestAnalyzeInfEB_InputOrderIrrelevant(t *testing.T) {
	sorted := []SpwStats{
		{SpwID: 0, FlaggedSolns: 0, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
		{SpwID: 1, FlaggedSolns: 0, UnflaggedSolns: 40, EffectiveBWHz: 2e9},
		{SpwID: 3, FlaggedSolns: 3, UnflaggedSolns: 37, EffectiveBWHz: 1e9},
	}
	shuffled := []SpwStats{sorted[2], sorted[0], sorted[1]}

	a, err := AnalyzeInfEB(sorted, 0)
	if err != nil {
		t.Fatalf("AnalyzeInfEB sorted: %v", err)
	}
	b, err := AnalyzeInfEB(shuffled, 0)
	if err != nil {
		t.Fatalf("AnalyzeInfEB shuffled: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("decision depends on input order (-sorted +shuffled):\n%s", diff)
	}
}

func TestAnalyzeInfEB_NoStats(t *testing.T) {
	if _, err := AnalyzeInfEB(nil, 0); err == nil {
		t.Fatal("expected error for empty statistics")
	}
}

// #endregion analyze-tests

// #region stats-tests

func TestPerSpwStats(t *testing.T) {
	rows := []SolutionRow{
		{SpwID: 2, Antenna: "DA41", Flagged: false},
		{SpwID: 0, Antenna: "DA41", Flagged: true},
		{SpwID: 0, Antenna: "DA42", Flagged: false},
		{SpwID: 2, Antenna: "DA42", Flagged: true},
		{SpwID: 2, Antenna: "DA43", Flagged: true},
	}
	bw := map[int]float64{0: 2e9, 2: 1e9}

	got := PerSpwStats(rows, bw)
	want := []SpwStats{
		{SpwID: 0, FlaggedSolns: 1, UnflaggedSolns: 1, EffectiveBWHz: 2e9},
		{SpwID: 2, FlaggedSolns: 2, UnflaggedSolns: 1, EffectiveBWHz: 1e9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

// Windows missing from the bandwidth table get zero bandwidth rather than
// an error; they lose every donor tie-break downstream.
func TestPerSpwStats_MissingBandwidth(t *testing.T) {
	rows := []SolutionRow{{SpwID: 4, Antenna: "ea01", Flagged: false}}

	got := PerSpwStats(rows, map[int]float64{})
	if len(got) != 1 || got[0].EffectiveBWHz != 0 {
		t.Errorf("expected zero bandwidth for unknown spw, got %+v", got)
	}
}

func TestTotalFlagged(t *testing.T) {
	rows := []SolutionRow{
		{SpwID: 0, Antenna: "DA41", Flagged: true},
		{SpwID: 0, Antenna: "DA42", Flagged: false},
		{SpwID: 0, Antenna: "DA43", Flagged: true},
	}
	if got := TotalFlagged(rows); got != 2 {
		t.Errorf("expected 2 flagged, got %g", got)
	}
	if got := TotalFlagged(nil); got != 0 {
		t.Errorf("expected 0 for no rows, got %g", got)
	}
}

// #endregion stats-tests
