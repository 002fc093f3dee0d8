package selfcal

// #region imports
import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/metrics"
	"github.com/r-xue/auto-selfcal/internal/ms"
	"github.com/r-xue/auto-selfcal/internal/sensitivity"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region imaging-constants

const (
	// dirtyNIter/dirtyGain: just enough cleaning to seed an automatic mask
	// on the dirty image without building a real model.
	dirtyNIter = 100
	dirtyGain  = 0.01

	// cleanNIter/cleanGain drive real imaging iterations; tclean stops on
	// threshold long before the iteration cap.
	cleanNIter = 100000
	cleanGain  = 0.1

	// minInitialNSigma floors the starting clean depth of the ladder.
	minInitialNSigma = 5.0
)

// #endregion imaging-constants

// #region prep

// prepBand gathers the facts, plans the solint ladder, runs dirty and
// initial imaging, and captures the baseline statistics for one
// (target, band) pair. flagVersion is the target-level flag snapshot every
// band of the target rolls back to.
func (o *Orchestrator) prepBand(ctx context.Context, target, band string, spwsByVis map[string][]int, flagVersion string) (*BandState, error) {
	facts, err := ms.Gather(ctx, o.exec, target, band, spwsByVis)
	if err != nil {
		return nil, fmt.Errorf("gather facts: %w", err)
	}

	ladder, err := solint.Plan(ms.Timings(facts), facts.CycleTimeSeconds, o.cfg.Planner)
	if err != nil {
		return nil, fmt.Errorf("plan solints: %w", err)
	}

	st := &BandState{
		Target:      target,
		Band:        band,
		Facts:       facts,
		Ladder:      ladder,
		UVRange:     o.cfg.UVRange,
		ObsType:     obsType(facts),
		NTerms:      facts.NTerms,
		FinalSolint: "None",
		FlagVersion: flagVersion,
		Calibration: make(map[string]VisCalibration),
	}

	if err := o.initialImaging(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// #endregion prep

// #region initial-imaging

// initialImaging produces the dirty and initial images and captures the
// *_orig baseline every later iteration is compared against.
func (o *Orchestrator) initialImaging(ctx context.Context, st *BandState) error {
	dirtyName := o.imageName(st, "dirty", 0)
	_, err := o.exec.Tclean(ctx, o.tcleanParams(st, dirtyName, 0, 0, dirtyNIter, dirtyGain, ""))
	if err != nil {
		return fmt.Errorf("dirty image: %w", err)
	}
	dirty, err := o.exec.GetImage(ctx, dirtyName)
	if err != nil {
		return fmt.Errorf("read dirty image: %w", err)
	}

	dirtySNR, dirtyRMS := metrics.EstimateSNR(dirty)
	dirtyNFSNR, dirtyNFRMS := metrics.EstimateNearFieldSNR(dirty)
	dirtyPeak := dirtySNR * dirtyRMS
	log.Printf("[SC] %s %s: dirty SNR=%.1f RMS=%.3g NF SNR=%.1f NF RMS=%.3g",
		st.Target, st.Band, dirtySNR, dirtyRMS, dirtyNFSNR, dirtyNFRMS)

	est, err := o.sens.Theoretical(ctx, visList(st), spwSelections(st), o.cfg.Robust)
	if err != nil {
		return fmt.Errorf("theoretical sensitivity: %w", err)
	}
	st.Sensitivity = est
	st.DRCorrection = sensitivity.DynamicRangeCorrection(o.cfg.Telescope, dirtyPeak, est.JyPerBeam, len(st.Facts.PerVis))

	st.NSigmaInitial = dirtySNR
	if st.NSigmaInitial < minInitialNSigma {
		st.NSigmaInitial = minInitialNSigma
	}

	// Initial image: properly thresholded at the DR-corrected sensitivity.
	initName := o.imageName(st, "initial", 0)
	st.ThresholdOrig = est.JyPerBeam * st.DRCorrection
	_, err = o.exec.Tclean(ctx, o.tcleanParams(st, initName, st.ThresholdOrig, finalNSigma, cleanNIter, cleanGain, ""))
	if err != nil {
		return fmt.Errorf("initial image: %w", err)
	}
	initial, err := o.exec.GetImage(ctx, initName)
	if err != nil {
		return fmt.Errorf("read initial image: %w", err)
	}

	st.SNROrig, st.RMSOrig = metrics.EstimateSNR(initial)
	st.SNRNFOrig, st.RMSNFOrig = metrics.EstimateNearFieldSNR(initial)
	st.BeamOrig = initial.Beam
	st.IntfluxOrig, st.IntfluxUncOrig = metrics.IntegratedFlux(initial, st.RMSOrig)

	st.RMSCurr = st.RMSOrig
	st.RMSNFCurr = st.RMSNFOrig
	if st.RMSNFCurr == metrics.NotComputable {
		// No valid mask yet; the image RMS stands in until one exists.
		st.RMSNFCurr = st.RMSOrig
		st.RMSNFOrig = st.RMSOrig
		st.SNRNFOrig = st.SNROrig
	}

	log.Printf("[SC] %s %s: initial SNR=%.1f RMS=%.3g threshold=%.3g Jy (DR correction %.2f)",
		st.Target, st.Band, st.SNROrig, st.RMSOrig, st.ThresholdOrig, st.DRCorrection)
	return nil
}

// #endregion initial-imaging

// #region naming

// imageName builds the deterministic product name for one imaging stage.
func (o *Orchestrator) imageName(st *BandState, stage string, iteration int) string {
	if stage == "dirty" || stage == "initial" || stage == "final" {
		return fmt.Sprintf("%s_%s_%s", sanitize(st.Target), st.Band, stage)
	}
	return fmt.Sprintf("%s_%s_%s_%d", sanitize(st.Target), st.Band, stage, iteration)
}

// caltableName builds the gain-table path for one (vis, solint) solve.
func (o *Orchestrator) caltableName(st *BandState, vis, tag string, iteration int) string {
	base := strings.TrimSuffix(vis, ".ms")
	return fmt.Sprintf("%s_%s_%s_%s_%d.g", base, sanitize(st.Target), st.Band, tag, iteration)
}

// sanitize makes a field name safe for product paths.
func sanitize(name string) string {
	r := strings.NewReplacer(" ", "_", "*", "_", "(", "", ")", "", "/", "_")
	return r.Replace(name)
}

// #endregion naming

// #region tclean-params

// tcleanParams assembles the common imaging parameters for a band.
func (o *Orchestrator) tcleanParams(st *BandState, name string, thresholdJy, nsigma float64, niter int64, gain float64, savemodel string) casa.TcleanParams {
	gridder := "standard"
	if st.ObsType == "mosaic" {
		gridder = "mosaic"
	}
	return casa.TcleanParams{
		Vis:         visList(st),
		ImageName:   name,
		Field:       st.Target,
		Spw:         bandSpwSelection(st),
		UVRange:     st.UVRange,
		ThresholdJy: thresholdJy,
		NSigma:      nsigma,
		NIter:       niter,
		Gain:        gain,
		NTerms:      st.NTerms,
		Gridder:     gridder,
		Robust:      o.cfg.Robust,
		SaveModel:   savemodel,
		Parallel:    o.cfg.Parallel,
		UseMask:     "auto-multithresh",
	}
}

// #endregion tclean-params

// #region selections

func visList(st *BandState) []string {
	out := make([]string, len(st.Facts.PerVis))
	for i, vf := range st.Facts.PerVis {
		out[i] = vf.Vis
	}
	return out
}

func spwSelections(st *BandState) map[string]string {
	out := make(map[string]string, len(st.Facts.PerVis))
	for _, vf := range st.Facts.PerVis {
		out[vf.Vis] = vf.SpwSelect
	}
	return out
}

// bandSpwSelection joins the per-vis selections for tclean, which accepts
// one selection per input visibility.
func bandSpwSelection(st *BandState) string {
	parts := make([]string, len(st.Facts.PerVis))
	for i, vf := range st.Facts.PerVis {
		parts[i] = vf.SpwSelect
	}
	return strings.Join(parts, ";")
}

// obsType classifies the observation as mosaic or single pointing.
func obsType(f ms.Facts) string {
	if f.Mosaic {
		return "mosaic"
	}
	return "single-point"
}

// #endregion selections
