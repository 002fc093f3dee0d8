package selfcal

// #region imports
import (
	"context"
	"fmt"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/flagging"
	"github.com/r-xue/auto-selfcal/internal/metrics"
	"github.com/r-xue/auto-selfcal/internal/ms"
	"github.com/r-xue/auto-selfcal/internal/sensitivity"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region executor-interface

// Executor is the capability interface of the imaging/calibration
// collaborator, injected at construction. All calls block; failures are
// returned as errors and handled at the per-(target, band) boundary.
type Executor interface {
	ms.Reader

	Tclean(ctx context.Context, p casa.TcleanParams) (casa.TcleanResult, error)
	GetImage(ctx context.Context, imagename string) (metrics.Image, error)
	CopyProducts(ctx context.Context, source, dest string) error

	Gaincal(ctx context.Context, p casa.GaincalParams) error
	Applycal(ctx context.Context, p casa.ApplycalParams) error
	Clearcal(ctx context.Context, vis, field string) error
	Flagmanager(ctx context.Context, vis, mode, versionname string) error
	CaltableFlagRows(ctx context.Context, caltable string) ([]flagging.SolutionRow, error)

	ApparentSensitivity(ctx context.Context, vis []string, spw map[string]string, robust float64) (jyPerBeam, bwHz, refFreqHz float64, err error)
}

// #endregion executor-interface

// #region vis-calibration

// VisCalibration is the calibration state of one visibility file within an
// attempt: the gain-table chain and how it is applied.
type VisCalibration struct {
	Gaintables []string
	SpwMaps    [][]int
	Interp     []string
	ApplyMode  string
}

// #endregion vis-calibration

// #region attempt

// Attempt is the written-once record of one solution-interval trial for one
// (target, band). It is appended to the band state when the interval is
// evaluated and never mutated afterward.
type Attempt struct {
	Solint    string
	Solmode   string
	ImageName string
	PerVis    map[string]VisCalibration

	CleanThresholdJy float64
	NSigma           float64

	SNRPre      float64
	SNRPost     float64
	SNRNFPre    float64
	SNRNFPost   float64
	RMSPre      float64
	RMSPost     float64
	RMSNFPre    float64
	RMSNFPost   float64
	BeamPre     metrics.Beam
	BeamPost    metrics.Beam
	IntfluxPre  float64
	IntfluxPost float64
	IntfluxUncPre  float64
	IntfluxUncPost float64

	Pass       bool
	FailReason string
}

// #endregion attempt

// #region band-state

// BandState is the mutable optimization state for one (target, band) pair:
// the selfcal_library entry.
type BandState struct {
	Target string
	Band   string

	Facts  ms.Facts
	Ladder solint.Ladder

	UVRange string
	ObsType string // "mosaic" | "single-point"
	NTerms  int

	// Theoretical sensitivity and the dynamic-range-corrected variant.
	Sensitivity   sensitivity.Estimate
	DRCorrection  float64
	NSigmaInitial float64

	// Baseline statistics from initial imaging.
	SNROrig       float64
	SNRNFOrig     float64
	RMSOrig       float64
	RMSNFOrig     float64
	BeamOrig      metrics.Beam
	IntfluxOrig   float64
	IntfluxUncOrig float64
	ThresholdOrig float64

	// Current best noise floors. Non-increasing across the loop; they gate
	// every subsequent clean threshold.
	RMSCurr   float64
	RMSNFCurr float64

	// Final statistics after the last accepted iteration.
	SNRFinal        float64
	SNRNFFinal      float64
	RMSFinal        float64
	RMSNFFinal      float64
	BeamFinal       metrics.Beam
	IntfluxFinal    float64
	IntfluxUncFinal float64

	SCSuccess        bool
	FinalSolint      string
	FinalSolintMode  string
	FinalPhaseSolint string
	StopReason       string

	// Accepted calibration baseline: pre-apply chain for the next solve.
	Calibration map[string]VisCalibration

	// Achieved post-SNR of the last accepted interval; when set, SNR
	// extrapolation for later intervals starts from it instead of SNROrig.
	achievedSNR float64

	// Beam of the first accepted iteration; beam deltas are measured
	// against it once set.
	refBeam    metrics.Beam
	refBeamSet bool

	// Marginal inf_EB acceptance pending confirmation by a later success.
	provisionalInfEB bool

	attempts     map[string]*Attempt
	attemptOrder []string

	// Flag-version snapshot name for rollback, saved once before the loop.
	FlagVersion string

	// Per-spw image quality after finalization, keyed by spw ID. Populated
	// only when the per-spw check is enabled.
	PerSpw map[int]SpwQuality
}

// SpwQuality is the finalization-time quality of a single spectral window.
type SpwQuality struct {
	SNR     float64
	RMS     float64
	Intflux float64
	Suspect bool // flux deviates from the aggregate beyond tolerance
}

// RecordAttempt appends the per-solint record. Each (solint) key is written
// exactly once; a second write is a programming error and is rejected.
func (b *BandState) RecordAttempt(a *Attempt) error {
	if b.attempts == nil {
		b.attempts = make(map[string]*Attempt)
	}
	if _, ok := b.attempts[a.Solint]; ok {
		return fmt.Errorf("attempt for solint %s already recorded", a.Solint)
	}
	b.attempts[a.Solint] = a
	b.attemptOrder = append(b.attemptOrder, a.Solint)
	return nil
}

// Attempt returns the recorded trial for a solint tag, or nil.
func (b *BandState) Attempt(tag string) *Attempt { return b.attempts[tag] }

// Attempts returns the recorded trials in evaluation order.
func (b *BandState) Attempts() []*Attempt {
	out := make([]*Attempt, len(b.attemptOrder))
	for i, tag := range b.attemptOrder {
		out[i] = b.attempts[tag]
	}
	return out
}

// #endregion band-state

// #region library

// Library is the nested result structure returned to the reporting layer:
// target → band → state.
type Library map[string]map[string]*BandState

// Get returns the band state, creating parent maps as needed.
func (l Library) Get(target, band string) *BandState {
	if l[target] == nil {
		return nil
	}
	return l[target][band]
}

// Put stores a band state.
func (l Library) Put(st *BandState) {
	if l[st.Target] == nil {
		l[st.Target] = make(map[string]*BandState)
	}
	l[st.Target][st.Band] = st
}

// #endregion library
