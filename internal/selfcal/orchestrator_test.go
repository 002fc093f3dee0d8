package selfcal

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/flagging"
	"github.com/r-xue/auto-selfcal/internal/metrics"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #region fake-executor

// fakeExec is an in-memory Executor: metadata for one execution block with
// two 30s scans on one target, and a name-keyed image store. extraBand adds
// a second receiver band sharing the same visibility.
type fakeExec struct {
	scanErr   error
	extraBand bool
	images    map[string]metrics.Image

	tcleans   []casa.TcleanParams
	gaincals  []casa.GaincalParams
	applycals []casa.ApplycalParams
	clearcals []string
	flagOps   []string
	flagSaves []string
	copies    [][2]string
}

func newFakeExec() *fakeExec {
	return &fakeExec{images: make(map[string]metrics.Image)}
}

func (f *fakeExec) Fields(ctx context.Context, vis string) ([]string, error) {
	return []string{"J1234"}, nil
}

func (f *fakeExec) ScansForField(ctx context.Context, vis, field string) ([]int, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return []int{10, 11}, nil
}

func (f *fakeExec) SpwsForScan(ctx context.Context, vis string, scan int) ([]int, error) {
	if f.extraBand {
		return []int{0, 1, 2}, nil
	}
	return []int{0, 1}, nil
}

func (f *fakeExec) TimesForScan(ctx context.Context, vis string, scan int) ([]float64, error) {
	base := float64(scan) * 1000.0
	return []float64{base, base + 24.0}, nil
}

func (f *fakeExec) ExposureTime(ctx context.Context, vis string, scan, spw int) (float64, error) {
	return 6.0, nil
}

func (f *fakeExec) AntennaNames(ctx context.Context, vis string) ([]string, error) {
	names := make([]string, 43)
	for i := range names {
		names[i] = fmt.Sprintf("DA%02d", 41+i)
	}
	return names, nil
}

// AntennaOffsets places DA41 on the array center and the rest progressively
// closer with ascending pad number, so the center-out ranking starts
// "DA41,DA83,DA82,...".
func (f *fakeExec) AntennaOffsets(ctx context.Context, vis string) (map[string]casa.Offset, error) {
	out := make(map[string]casa.Offset, 43)
	for i := 0; i < 43; i++ {
		out[fmt.Sprintf("DA%02d", 41+i)] = casa.Offset{Longitude: float64((43 - i) % 43)}
	}
	return out, nil
}

func (f *fakeExec) FieldIDsForScans(ctx context.Context, vis string, scans []int) ([]int, error) {
	return []int{3}, nil
}

func (f *fakeExec) SpwProperties(ctx context.Context, vis string) ([]casa.SpwProperty, error) {
	props := []casa.SpwProperty{
		{SpwID: 0, Band: "B6", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 224e9},
		{SpwID: 1, Band: "B6", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 226e9},
	}
	if f.extraBand {
		props = append(props, casa.SpwProperty{SpwID: 2, Band: "B3", BandwidthHz: 2e9, EffectiveBWHz: 1.875e9, MeanFreqHz: 97e9})
	}
	return props, nil
}

func (f *fakeExec) Tclean(ctx context.Context, p casa.TcleanParams) (casa.TcleanResult, error) {
	f.tcleans = append(f.tcleans, p)
	return casa.TcleanResult{}, nil
}

func (f *fakeExec) GetImage(ctx context.Context, imagename string) (metrics.Image, error) {
	img, ok := f.images[imagename]
	if !ok {
		return metrics.Image{}, fmt.Errorf("no image %s", imagename)
	}
	return img, nil
}

func (f *fakeExec) CopyProducts(ctx context.Context, source, dest string) error {
	f.copies = append(f.copies, [2]string{source, dest})
	if img, ok := f.images[source]; ok {
		f.images[dest] = img
	}
	return nil
}

func (f *fakeExec) Gaincal(ctx context.Context, p casa.GaincalParams) error {
	f.gaincals = append(f.gaincals, p)
	return nil
}

func (f *fakeExec) Applycal(ctx context.Context, p casa.ApplycalParams) error {
	f.applycals = append(f.applycals, p)
	return nil
}

func (f *fakeExec) Clearcal(ctx context.Context, vis, field string) error {
	f.clearcals = append(f.clearcals, vis)
	return nil
}

func (f *fakeExec) Flagmanager(ctx context.Context, vis, mode, versionname string) error {
	f.flagOps = append(f.flagOps, mode)
	if mode == "save" {
		f.flagSaves = append(f.flagSaves, versionname)
	}
	return nil
}

func (f *fakeExec) CaltableFlagRows(ctx context.Context, caltable string) ([]flagging.SolutionRow, error) {
	if strings.HasSuffix(caltable, ".perspw") {
		return []flagging.SolutionRow{
			{SpwID: 0, Antenna: "DA41"},
			{SpwID: 1, Antenna: "DA41"},
		}, nil
	}
	return []flagging.SolutionRow{{SpwID: 0, Antenna: "DA41"}}, nil
}

func (f *fakeExec) ApparentSensitivity(ctx context.Context, vis []string, spw map[string]string, robust float64) (float64, float64, float64, error) {
	return 1e-5, 2e9, 225e9, nil
}

// #endregion fake-executor

// #region image-helpers

// snrImage builds a synthetic image whose robust RMS is 1.4826 x noise and
// whose peak SNR is exactly snr, with a 3x3 central mask.
func snrImage(snr, noise float64) metrics.Image {
	const n = 64
	img := metrics.Image{
		Image:      metrics.NewPlane(n, n),
		Residual:   metrics.NewPlane(n, n),
		Mask:       metrics.NewPlane(n, n),
		Beam:       metrics.Beam{MajorArcsec: 0.2, MinorArcsec: 0.2},
		CellArcsec: 0.1,
	}
	for i := range img.Residual.Data {
		switch i % 3 {
		case 0:
			img.Residual.Data[i] = -noise
		case 2:
			img.Residual.Data[i] = noise
		}
	}
	peak := snr * 1.4826 * noise
	for y := 31; y <= 33; y++ {
		for x := 31; x <= 33; x++ {
			img.Mask.Set(x, y, 1)
			img.Image.Set(x, y, peak)
		}
	}
	return img
}

func emptyMaskImage() metrics.Image {
	img := snrImage(20, 1e-5)
	img.Mask = metrics.NewPlane(img.Mask.NX, img.Mask.NY)
	return img
}

// #endregion image-helpers

// #region run-tests

func TestRun_TerminatesOnLowSNR(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(10, 1e-5)

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if st == nil {
		t.Fatal("no band state recorded")
	}
	if st.SCSuccess {
		t.Error("expected no accepted interval")
	}
	if st.FinalSolint != "None" {
		t.Errorf("expected FinalSolint None, got %q", st.FinalSolint)
	}
	if !strings.Contains(st.StopReason, "too low to proceed") {
		t.Errorf("unexpected stop reason: %q", st.StopReason)
	}
	if len(fake.gaincals) != 0 {
		t.Errorf("expected no solves, got %d", len(fake.gaincals))
	}

	// The initial image stands in as the final product.
	found := false
	for _, c := range fake.copies {
		if c[0] == "J1234_B6_initial" && c[1] == "J1234_B6_final" {
			found = true
		}
	}
	if !found {
		t.Error("expected initial products copied to final")
	}
}

func TestRun_EmptyModelGuard(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = emptyMaskImage()

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if st.StopReason != "Empty model for solint inf_EB" {
		t.Errorf("unexpected stop reason: %q", st.StopReason)
	}
	if len(fake.gaincals) != 0 {
		t.Errorf("expected guard to fire before any solve, got %d solves", len(fake.gaincals))
	}
	if len(st.Attempts()) != 0 {
		t.Errorf("expected no attempt recorded, got %d", len(st.Attempts()))
	}
}

func TestRun_AcceptPromotes(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0_post"] = snrImage(25, 0.95e-5)
	fake.images["J1234_B6_final"] = snrImage(25, 0.95e-5)

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if !st.SCSuccess {
		t.Fatalf("expected success, stop reason %q", st.StopReason)
	}
	if st.FinalSolint != "inf_EB" || st.FinalSolintMode != "p" || st.FinalPhaseSolint != "inf_EB" {
		t.Errorf("unexpected final solint record: %q %q %q", st.FinalSolint, st.FinalSolintMode, st.FinalPhaseSolint)
	}

	attempts := st.Attempts()
	if len(attempts) != 1 || !attempts[0].Pass {
		t.Fatalf("expected one passing attempt, got %+v", attempts)
	}

	// Noise floors only tighten.
	if st.RMSNFCurr >= st.RMSNFOrig {
		t.Errorf("near-field floor did not tighten: %g >= %g", st.RMSNFCurr, st.RMSNFOrig)
	}
	if st.RMSCurr >= st.RMSOrig {
		t.Errorf("image floor did not tighten: %g >= %g", st.RMSCurr, st.RMSOrig)
	}

	cal, ok := st.Calibration["eb1.ms"]
	if !ok || len(cal.Gaintables) != 1 {
		t.Errorf("expected one promoted gaintable, got %+v", cal)
	}

	// inf_EB solves the per-spw table, the combine probe, and the real table.
	if len(fake.gaincals) != 3 {
		t.Errorf("expected 3 gaincal calls, got %d", len(fake.gaincals))
	}
	if len(fake.applycals) != 1 {
		t.Errorf("expected 1 applycal, got %d", len(fake.applycals))
	}
}

func TestRun_RejectRollsBack(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0_post"] = snrImage(18, 1.2e-5)

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if st.SCSuccess {
		t.Error("expected rejection")
	}
	if !strings.Contains(st.StopReason, "solint inf_EB failed") {
		t.Errorf("unexpected stop reason: %q", st.StopReason)
	}

	attempts := st.Attempts()
	if len(attempts) != 1 {
		t.Fatalf("expected one attempt, got %d", len(attempts))
	}
	if attempts[0].Pass || !strings.Contains(attempts[0].FailReason, "RMS regression") {
		t.Errorf("unexpected attempt outcome: %+v", attempts[0])
	}

	// Rollback with no accepted chain clears calibration entirely.
	if len(fake.clearcals) == 0 {
		t.Error("expected clearcal during rollback")
	}
	if st.RMSCurr != st.RMSOrig {
		t.Errorf("floor moved on rejection: %g != %g", st.RMSCurr, st.RMSOrig)
	}
}

// A marginal inf_EB acceptance that no later interval confirms is reverted
// at finalization.
func TestRun_MarginalInfEBReverted(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(30, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = snrImage(30, 1e-5)
	fake.images["J1234_B6_inf_EB_0_post"] = snrImage(29.85, 1e-5)
	fake.images["J1234_B6_inf_1"] = snrImage(29.85, 1e-5)
	fake.images["J1234_B6_inf_1_post"] = snrImage(25, 1.3e-5)

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if st.SCSuccess {
		t.Error("expected reverted state")
	}
	if st.FinalSolint != "None" {
		t.Errorf("expected FinalSolint None, got %q", st.FinalSolint)
	}
	if !strings.Contains(st.StopReason, "marginal inf_EB reverted") {
		t.Errorf("unexpected stop reason: %q", st.StopReason)
	}
	if len(st.Calibration) != 0 {
		t.Errorf("expected calibration cleared, got %+v", st.Calibration)
	}
	if len(fake.clearcals) == 0 {
		t.Error("expected clearcal during revert")
	}

	attempts := st.Attempts()
	if len(attempts) != 2 {
		t.Fatalf("expected inf_EB and inf attempts, got %d", len(attempts))
	}
	if !attempts[0].Pass || attempts[1].Pass {
		t.Errorf("expected marginal pass then rejection: %+v", attempts)
	}
}

// One visibility hosting two bands gets exactly one starting-flag snapshot,
// taken before either band runs, and both bands roll back to it.
func TestRun_SharedFlagSnapshotAcrossBands(t *testing.T) {
	fake := newFakeExec()
	fake.extraBand = true
	for _, band := range []string{"B6", "B3"} {
		fake.images["J1234_"+band+"_dirty"] = snrImage(100, 1e-5)
		fake.images["J1234_"+band+"_initial"] = snrImage(10, 1e-5)
	}

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(fake.flagSaves) != 1 {
		t.Fatalf("expected one flag save for one visibility, got %v", fake.flagSaves)
	}
	b6, b3 := lib.Get("J1234", "B6"), lib.Get("J1234", "B3")
	if b6 == nil || b3 == nil {
		t.Fatal("expected band states for both bands")
	}
	if b6.FlagVersion == "" || b6.FlagVersion != b3.FlagVersion {
		t.Errorf("bands do not share the snapshot: %q vs %q", b6.FlagVersion, b3.FlagVersion)
	}
	if b6.FlagVersion != fake.flagSaves[0] {
		t.Errorf("band state carries %q, saved version is %q", b6.FlagVersion, fake.flagSaves[0])
	}
}

// With no refant configured, solves use the center-out antenna ranking from
// the offsets.
func TestRun_RefantRankedFromOffsets(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0_post"] = snrImage(18, 1.2e-5)

	orch := New(fake, nil, DefaultConfig())
	if _, err := orch.Run(context.Background(), []string{"eb1.ms"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(fake.gaincals) == 0 {
		t.Fatal("expected at least one solve")
	}
	refant := fake.gaincals[0].Refant
	if !strings.HasPrefix(refant, "DA41,DA83,DA82") {
		t.Errorf("expected center-out ranking DA41,DA83,DA82,..., got %q", refant)
	}
	if got := len(strings.Split(refant, ",")); got != 43 {
		t.Errorf("expected all 43 antennas in the priority list, got %d", got)
	}
}

// An explicit refant overrides the ranking.
func TestRun_RefantConfigOverride(t *testing.T) {
	fake := newFakeExec()
	fake.images["J1234_B6_dirty"] = snrImage(100, 1e-5)
	fake.images["J1234_B6_initial"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0"] = snrImage(20, 1e-5)
	fake.images["J1234_B6_inf_EB_0_post"] = snrImage(18, 1.2e-5)

	cfg := DefaultConfig()
	cfg.Refant = "DA45"
	orch := New(fake, nil, cfg)
	if _, err := orch.Run(context.Background(), []string{"eb1.ms"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.gaincals) == 0 || fake.gaincals[0].Refant != "DA45" {
		t.Errorf("expected configured refant DA45, got %+v", fake.gaincals)
	}
}

// The amplitude jump requires a phase success at sub-scan intervals; a
// whole-scan or whole-EB phase solution is not enough.
func TestJumpToAmplitude_RequiresSubScanPhaseSuccess(t *testing.T) {
	orch := New(newFakeExec(), nil, DefaultConfig())
	st := &BandState{Ladder: solint.Ladder{Entries: []solint.Entry{
		{Interval: solint.InfEB()},
		{Interval: solint.Inf()},
		{Interval: solint.Duration(30)},
		{Interval: solint.AmpInf()},
	}}}

	cases := []struct {
		phase string
		want  bool
	}{
		{"", false},
		{"inf_EB", false},
		{"inf", false},
		{"30.00s", true},
	}
	for _, tc := range cases {
		st.FinalPhaseSolint = tc.phase
		sig, ok := orch.jumpToAmplitude(st, 2)
		if ok != tc.want {
			t.Errorf("FinalPhaseSolint %q: jump = %v, want %v", tc.phase, ok, tc.want)
		}
		if ok && sig.Index != 3 {
			t.Errorf("FinalPhaseSolint %q: jump index = %d, want 3", tc.phase, sig.Index)
		}
	}
}

func TestRun_PrepFailureRecorded(t *testing.T) {
	fake := newFakeExec()
	fake.scanErr = fmt.Errorf("listobs timed out")

	orch := New(fake, nil, DefaultConfig())
	lib, err := orch.Run(context.Background(), []string{"eb1.ms"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := lib.Get("J1234", "B6")
	if st == nil {
		t.Fatal("expected a band state despite preparation failure")
	}
	if !strings.Contains(st.StopReason, "preparation failed") {
		t.Errorf("unexpected stop reason: %q", st.StopReason)
	}
	if st.FinalSolint != "None" {
		t.Errorf("expected FinalSolint None, got %q", st.FinalSolint)
	}
}

// #endregion run-tests
