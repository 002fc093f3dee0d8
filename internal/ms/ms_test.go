package ms

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/r-xue/auto-selfcal/internal/casa"
)

// #region fake-reader

// fakeReader serves canned metadata per visibility: two 30s scans on every
// known field, 6s integrations.
type fakeReader struct {
	fields   map[string][]string
	props    map[string][]casa.SpwProperty
	scans    map[string][]int
	fieldIDs []int
	nAnts    int
}

func (f *fakeReader) Fields(ctx context.Context, vis string) ([]string, error) {
	names, ok := f.fields[vis]
	if !ok {
		return nil, fmt.Errorf("unknown vis %s", vis)
	}
	return names, nil
}

func (f *fakeReader) ScansForField(ctx context.Context, vis, field string) ([]int, error) {
	return f.scans[vis], nil
}

func (f *fakeReader) SpwsForScan(ctx context.Context, vis string, scan int) ([]int, error) {
	var ids []int
	for _, p := range f.props[vis] {
		ids = append(ids, p.SpwID)
	}
	return ids, nil
}

func (f *fakeReader) TimesForScan(ctx context.Context, vis string, scan int) ([]float64, error) {
	base := float64(scan) * 1000.0
	return []float64{base, base + 24.0}, nil
}

func (f *fakeReader) ExposureTime(ctx context.Context, vis string, scan, spw int) (float64, error) {
	return 6.0, nil
}

func (f *fakeReader) AntennaNames(ctx context.Context, vis string) ([]string, error) {
	names := make([]string, f.nAnts)
	for i := range names {
		names[i] = fmt.Sprintf("DA%02d", 41+i)
	}
	return names, nil
}

// Offsets shrink with ascending pad number, so the center-out ranking is the
// reverse of pad order.
func (f *fakeReader) AntennaOffsets(ctx context.Context, vis string) (map[string]casa.Offset, error) {
	out := make(map[string]casa.Offset, f.nAnts)
	for i := 0; i < f.nAnts; i++ {
		out[fmt.Sprintf("DA%02d", 41+i)] = casa.Offset{
			Longitude: float64(f.nAnts - i),
			Latitude:  float64(f.nAnts - i),
		}
	}
	return out, nil
}

func (f *fakeReader) FieldIDsForScans(ctx context.Context, vis string, scans []int) ([]int, error) {
	return f.fieldIDs, nil
}

func (f *fakeReader) SpwProperties(ctx context.Context, vis string) ([]casa.SpwProperty, error) {
	return f.props[vis], nil
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		fields: map[string][]string{
			"eb1.ms": {"J1234", "NGC1300"},
			"eb2.ms": {"NGC1300", "J0521"},
		},
		props: map[string][]casa.SpwProperty{
			"eb1.ms": {
				{SpwID: 1, Band: "B6", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 226e9},
				{SpwID: 0, Band: "B6", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 224e9},
			},
			"eb2.ms": {
				{SpwID: 0, Band: "B6", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 224e9},
				{SpwID: 2, Band: "B3", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 100e9},
			},
		},
		scans:    map[string][]int{"eb1.ms": {10, 11}, "eb2.ms": {20, 21}},
		fieldIDs: []int{3},
		nAnts:    43,
	}
}

// #endregion fake-reader

// #region discover-tests

func TestTargets_UnionFirstSeen(t *testing.T) {
	r := newFakeReader()
	got, err := Targets(context.Background(), r, []string{"eb1.ms", "eb2.ms"})
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}
	want := []string{"J1234", "NGC1300", "J0521"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestBands_GroupsPerVis(t *testing.T) {
	r := newFakeReader()
	got, err := Bands(context.Background(), r, []string{"eb1.ms", "eb2.ms"})
	if err != nil {
		t.Fatalf("Bands: %v", err)
	}

	want := map[string]map[string][]int{
		"B6": {"eb1.ms": {0, 1}, "eb2.ms": {0}},
		"B3": {"eb2.ms": {2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bands mismatch (-want +got):\n%s", diff)
	}
}

// #endregion discover-tests

// #region gather-tests

func TestGather(t *testing.T) {
	r := newFakeReader()
	f, err := Gather(context.Background(), r, "NGC1300", "B6", map[string][]int{"eb1.ms": {0, 1}})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if len(f.PerVis) != 1 {
		t.Fatalf("expected one visibility, got %d", len(f.PerVis))
	}
	vf := f.PerVis[0]
	if vf.SpwSelect != "0,1" {
		t.Errorf("unexpected spw selection %q", vf.SpwSelect)
	}
	if len(vf.Timing.Durations) != 2 || vf.Timing.Durations[0] != 30.0 {
		t.Errorf("unexpected scan timing: %+v", vf.Timing)
	}
	if f.TotalOnSourceSeconds != 60.0 {
		t.Errorf("expected 60s on source, got %g", f.TotalOnSourceSeconds)
	}
	if f.NAnts != 43 {
		t.Errorf("expected 43 antennas, got %d", f.NAnts)
	}
	if f.Mosaic {
		t.Error("single field id should not be a mosaic")
	}
	// 4 GHz across 225 GHz is well under the two-Taylor-term cutoff.
	if f.NTerms != 1 {
		t.Errorf("expected nterms 1, got %d", f.NTerms)
	}
	if f.EffectiveBWHz[0] != 1.875e9 || f.EffectiveBWHz[1] != 1.875e9 {
		t.Errorf("effective bandwidths not gathered: %v", f.EffectiveBWHz)
	}
	if len(vf.RefAnts) != 43 || vf.RefAnts[0] != "DA83" || vf.RefAnts[42] != "DA41" {
		t.Errorf("unexpected refant ranking: first %q last %q of %d",
			vf.RefAnts[0], vf.RefAnts[len(vf.RefAnts)-1], len(vf.RefAnts))
	}
}

// Antennas rank closest-to-center first; pads with no recorded offset fall
// to the back in their original order.
func TestRankRefAnts(t *testing.T) {
	names := []string{"DA41", "DA42", "DA43", "DV10"}
	offsets := map[string]casa.Offset{
		"DA41": {Longitude: 30, Latitude: 40}, // 50
		"DA42": {Longitude: 3, Latitude: 4},   // 5
		"DA43": {Longitude: -6, Latitude: 8},  // 10
	}

	got := rankRefAnts(names, offsets)
	want := []string{"DA42", "DA43", "DA41", "DV10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}

	// The input order is left untouched.
	if names[0] != "DA41" {
		t.Errorf("input slice mutated: %v", names)
	}
}

func TestGather_WideBandGetsTwoTerms(t *testing.T) {
	r := newFakeReader()
	r.props["eb1.ms"] = []casa.SpwProperty{
		{SpwID: 0, Band: "B3", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 90e9},
		{SpwID: 1, Band: "B3", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 102e9},
	}

	f, err := Gather(context.Background(), r, "NGC1300", "B3", map[string][]int{"eb1.ms": {0, 1}})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if f.NTerms != 2 {
		t.Errorf("expected nterms 2 for wide fractional bandwidth, got %d", f.NTerms)
	}
}

func TestGather_EVLAGetsTwoTerms(t *testing.T) {
	r := newFakeReader()
	f, err := Gather(context.Background(), r, "NGC1300", "EVLA_X", map[string][]int{"eb1.ms": {0, 1}})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if f.NTerms != 2 {
		t.Errorf("expected nterms 2 for an EVLA band, got %d", f.NTerms)
	}
}

func TestGather_Mosaic(t *testing.T) {
	r := newFakeReader()
	r.fieldIDs = []int{3, 4, 5}
	f, err := Gather(context.Background(), r, "NGC1300", "B6", map[string][]int{"eb1.ms": {0, 1}})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if !f.Mosaic {
		t.Error("expected mosaic for multiple field ids")
	}
}

// A target with no scans in a visibility fails preparation outright; the
// planner is never handed an empty timing set.
func TestGather_NoScans(t *testing.T) {
	r := newFakeReader()
	r.scans["eb1.ms"] = nil
	_, err := Gather(context.Background(), r, "NGC1300", "B6", map[string][]int{"eb1.ms": {0, 1}})
	if err == nil {
		t.Fatal("expected error for a target with no scans")
	}
}

// #endregion gather-tests
