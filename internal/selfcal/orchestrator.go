package selfcal

// #region imports
import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/flagging"
	"github.com/r-xue/auto-selfcal/internal/metrics"
	"github.com/r-xue/auto-selfcal/internal/ms"
	"github.com/r-xue/auto-selfcal/internal/sensitivity"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region orchestrator-struct

// Orchestrator drives the self-calibration optimization: initial imaging,
// the per-solution-interval loop, and finalization, per (target, band).
type Orchestrator struct {
	exec Executor
	sens *sensitivity.Estimator
	rec  Recorder // may be nil
	cfg  Config
}

// New creates a fully wired orchestrator. rec may be nil to disable
// persistence and the resume fast path.
func New(exec Executor, rec Recorder, cfg Config) *Orchestrator {
	return &Orchestrator{
		exec: exec,
		sens: sensitivity.NewEstimator(exec),
		rec:  rec,
		cfg:  cfg,
	}
}

// #endregion orchestrator-struct

// #region run

// Run discovers targets and bands, then optimizes each (target, band) pair
// sequentially. A failure in one pair never affects the others: unexpected
// executor errors are recorded in the pair's Stop_Reason and the run moves
// on (hardened choice; see DESIGN.md).
func (o *Orchestrator) Run(ctx context.Context, vis []string) (Library, error) {
	targets, err := ms.Targets(ctx, o.exec, vis)
	if err != nil {
		return nil, fmt.Errorf("run selfcal: %w", err)
	}
	bands, err := ms.Bands(ctx, o.exec, vis)
	if err != nil {
		return nil, fmt.Errorf("run selfcal: %w", err)
	}

	lib := make(Library)
	for _, target := range targets {
		// One flag snapshot per target, taken before any band touches the
		// data: a later band's rollback baseline must not carry apply-side
		// flags a sibling band already committed.
		flagVersion, err := o.saveStartingFlags(ctx, target, vis)
		if err != nil {
			log.Printf("[SC] skipping %s: %v", target, err)
			for band := range bands {
				lib.Put(&BandState{
					Target:      target,
					Band:        band,
					FinalSolint: "None",
					StopReason:  fmt.Sprintf("preparation failed: %v", err),
				})
			}
			continue
		}

		for band, spwsByVis := range bands {
			st, err := o.prepBand(ctx, target, band, spwsByVis, flagVersion)
			if err != nil {
				log.Printf("[SC] skipping %s %s: %v", target, band, err)
				lib.Put(&BandState{
					Target:      target,
					Band:        band,
					FinalSolint: "None",
					StopReason:  fmt.Sprintf("preparation failed: %v", err),
				})
				continue
			}

			if err := o.runBand(ctx, st); err != nil {
				st.StopReason = fmt.Sprintf("executor error: %v", err)
				log.Printf("[SC] %s %s: %s", target, band, st.StopReason)
			}
			lib.Put(st)
		}
	}
	return lib, nil
}

// saveStartingFlags snapshots the pre-selfcal flag state of every visibility
// under a fresh per-target version name.
func (o *Orchestrator) saveStartingFlags(ctx context.Context, target string, vis []string) (string, error) {
	version := fmt.Sprintf("selfcal_starting_flags_%s_%s", sanitize(target), uuid.NewString()[:8])
	for _, v := range vis {
		if err := o.exec.Flagmanager(ctx, v, "save", version); err != nil {
			return "", fmt.Errorf("save starting flags: %w", err)
		}
	}
	return version, nil
}

// #endregion run

// #region run-band

// runBand walks the solint ladder for one (target, band), driven entirely
// by LoopSignal transitions, then finalizes.
func (o *Orchestrator) runBand(ctx context.Context, st *BandState) error {
	nsigma := NSigmaLadder(st.NSigmaInitial, st.Ladder, o.cfg.RelThreshScaling)
	log.Printf("[SC] %s %s: solint ladder %v", st.Target, st.Band, st.Ladder.Tags())

	i := 0
	for i < len(st.Ladder.Entries) {
		sig, err := o.runInterval(ctx, st, i, nsigma[i])
		if err != nil {
			return err
		}
		switch sig.Action {
		case ActionContinue:
			i++
		case ActionJump:
			log.Printf("[SC] %s %s: jumping to %s", st.Target, st.Band, st.Ladder.Entries[sig.Index].Interval.Tag())
			i = sig.Index
		case ActionTerminate:
			st.StopReason = sig.Reason
			log.Printf("[SC] %s %s: stopping: %s", st.Target, st.Band, sig.Reason)
			return o.finalize(ctx, st)
		}
	}
	return o.finalize(ctx, st)
}

// #endregion run-band

// #region run-interval

// runInterval executes one rung of the ladder: gate on estimated SNR,
// image, solve, apply, re-image, evaluate, and either promote or roll back.
func (o *Orchestrator) runInterval(ctx context.Context, st *BandState, i int, nsigma float64) (LoopSignal, error) {
	entry := st.Ladder.Entries[i]
	iv := entry.Interval
	tag := iv.Tag()

	// 1. SNR gate.
	base := st.SNROrig
	if st.achievedSNR > 0 {
		base = st.achievedSNR
	}
	est := EstimateSolutionSNR(base, st.Facts.NAnts, iv, st)
	if est < o.cfg.Gate.MinSNRToProceed {
		if sig, ok := o.jumpToAmplitude(st, i); ok {
			return sig, nil
		}
		return signalTerminate(fmt.Sprintf("estimated gain SNR %.2f for solint %s too low to proceed", est, tag)), nil
	}

	cp := TakeCheckpoint(st)
	threshold := nsigma * st.RMSNFCurr
	name := o.imageName(st, tag, i)

	// 2. Resume fast path: reuse a previous run's accepted products.
	resumed := false
	if o.rec != nil {
		if prior, ok := o.rec.PriorAccepted(st.Target, st.Band, tag, st.NTerms); ok {
			if err := o.exec.CopyProducts(ctx, prior, name); err == nil {
				resumed = true
				log.Printf("[SC] %s %s %s: resumed products from %s", st.Target, st.Band, tag, prior)
			}
		}
	}

	// 3. Image at nsigma x the current best near-field noise floor.
	if !resumed {
		if _, err := o.exec.Tclean(ctx, o.tcleanParams(st, name, threshold, nsigma, cleanNIter, cleanGain, "")); err != nil {
			return LoopSignal{}, fmt.Errorf("image solint %s: %w", tag, err)
		}
	}
	pre, err := o.exec.GetImage(ctx, name)
	if err != nil {
		return LoopSignal{}, fmt.Errorf("read image for solint %s: %w", tag, err)
	}

	// 4. Empty-model guard.
	if !metrics.CheckMask(pre) {
		return signalTerminate(fmt.Sprintf("Empty model for solint %s", tag)), nil
	}

	// 5. Restore starting flags, then refresh the model column so the solve
	// never runs against residual flagging from a failed iteration.
	for _, vf := range st.Facts.PerVis {
		if err := o.exec.Flagmanager(ctx, vf.Vis, "restore", st.FlagVersion); err != nil {
			return LoopSignal{}, fmt.Errorf("restore flags before solve: %w", err)
		}
	}
	if _, err := o.exec.Tclean(ctx, o.tcleanParams(st, name, threshold, nsigma, 0, cleanGain, "modelcolumn")); err != nil {
		return LoopSignal{}, fmt.Errorf("save model for solint %s: %w", tag, err)
	}

	preSNR, preRMS := metrics.EstimateSNR(pre)
	preNFSNR, preNFRMS := metrics.EstimateNearFieldSNR(pre)
	preFlux, preFluxUnc := metrics.IntegratedFlux(pre, preRMS)

	// 6. Solve.
	attempt := &Attempt{
		Solint:           tag,
		Solmode:          iv.Solmode(),
		ImageName:        name,
		PerVis:           make(map[string]VisCalibration),
		CleanThresholdJy: threshold,
		NSigma:           nsigma,
		SNRPre:           preSNR,
		SNRNFPre:         preNFSNR,
		RMSPre:           preRMS,
		RMSNFPre:         preNFRMS,
		BeamPre:          pre.Beam,
		IntfluxPre:       preFlux,
		IntfluxUncPre:    preFluxUnc,
	}
	if err := o.solveAndApply(ctx, st, entry, i, attempt); err != nil {
		return LoopSignal{}, fmt.Errorf("solve solint %s: %w", tag, err)
	}

	// 7. Re-image to evaluate the calibration.
	postName := name + "_post"
	if _, err := o.exec.Tclean(ctx, o.tcleanParams(st, postName, threshold, nsigma, cleanNIter, cleanGain, "")); err != nil {
		return LoopSignal{}, fmt.Errorf("post image for solint %s: %w", tag, err)
	}
	post, err := o.exec.GetImage(ctx, postName)
	if err != nil {
		return LoopSignal{}, fmt.Errorf("read post image for solint %s: %w", tag, err)
	}

	attempt.SNRPost, attempt.RMSPost = metrics.EstimateSNR(post)
	attempt.SNRNFPost, attempt.RMSNFPost = metrics.EstimateNearFieldSNR(post)
	attempt.BeamPost = post.Beam
	attempt.IntfluxPost, attempt.IntfluxUncPost = metrics.IntegratedFlux(post, attempt.RMSPost)

	refBeam := st.BeamOrig
	if st.refBeamSet {
		refBeam = st.refBeam
	}

	obs := Observation{
		Solint:           tag,
		IsInfEB:          iv.Kind == solint.KindInfEB,
		SNRPre:           preSNR,
		SNRPost:          attempt.SNRPost,
		SNRNFPre:         preNFSNR,
		SNRNFPost:        attempt.SNRNFPost,
		RMSPre:           preRMS,
		RMSPost:          attempt.RMSPost,
		RMSNFPre:         preNFRMS,
		RMSNFPost:        attempt.RMSNFPost,
		DeltaBeamArea:    metrics.CompareBeams(refBeam, post.Beam),
		EstimatedSNR:     est,
		EstimatedSNRNext: o.estimateNext(st, i, base),
	}
	verdict := Evaluate(obs, o.cfg.Gate)

	// 8. Record the write-once attempt and commit or roll back.
	attempt.Pass = verdict.Accept
	if !verdict.Accept {
		attempt.FailReason = verdict.Reason
	}
	if err := st.RecordAttempt(attempt); err != nil {
		return LoopSignal{}, err
	}
	o.recordDecision(st, tag, verdict)

	if verdict.Accept {
		o.promote(st, iv, tag, attempt, post.Beam, verdict.Marginal)
		return signalContinue(), nil
	}

	if err := cp.Restore(ctx, o.exec); err != nil {
		return LoopSignal{}, fmt.Errorf("rollback after solint %s: %w", tag, err)
	}
	if sig, ok := o.jumpToAmplitude(st, i); ok {
		return sig, nil
	}
	return signalTerminate(fmt.Sprintf("solint %s failed: %s", tag, verdict.Reason)), nil
}

// #endregion run-interval

// #region promote

// promote installs an accepted interval as the new calibration baseline and
// tightens the noise floors. RMS_curr and RMS_NF_curr only ever decrease.
func (o *Orchestrator) promote(st *BandState, iv solint.Interval, tag string, a *Attempt, beam metrics.Beam, marginal bool) {
	st.SCSuccess = true
	st.FinalSolint = tag
	st.FinalSolintMode = iv.Solmode()
	if !iv.Amplitude {
		st.FinalPhaseSolint = tag
	}

	for vis, cal := range a.PerVis {
		st.Calibration[vis] = cal
	}

	if !st.refBeamSet {
		st.refBeam = beam
		st.refBeamSet = true
	}
	if a.RMSPost > 0 && a.RMSPost < st.RMSCurr {
		st.RMSCurr = a.RMSPost
	}
	if a.RMSNFPost > 0 && a.RMSNFPost < st.RMSNFCurr {
		st.RMSNFCurr = a.RMSNFPost
	}
	st.achievedSNR = a.SNRPost

	st.SNRFinal = a.SNRPost
	st.SNRNFFinal = a.SNRNFPost
	st.RMSFinal = a.RMSPost
	st.RMSNFFinal = a.RMSNFPost
	st.BeamFinal = a.BeamPost
	st.IntfluxFinal = a.IntfluxPost
	st.IntfluxUncFinal = a.IntfluxUncPost

	if iv.Kind == solint.KindInfEB && marginal {
		st.provisionalInfEB = true
	} else {
		st.provisionalInfEB = false
	}
	log.Printf("[SC] %s %s: accepted solint %s (SNR %.1f -> %.1f, RMS %.3g -> %.3g)",
		st.Target, st.Band, tag, a.SNRPre, a.SNRPost, a.RMSPre, a.RMSPost)
}

// #endregion promote

// #region solve-apply

// solveAndApply runs gaincal per visibility (with the inf_EB fallback probe
// when applicable) and applies the accumulated chain.
func (o *Orchestrator) solveAndApply(ctx context.Context, st *BandState, entry solint.Entry, i int, attempt *Attempt) error {
	iv := entry.Interval
	tag := iv.Tag()

	for _, vf := range st.Facts.PerVis {
		caltable := o.caltableName(st, vf.Vis, tag, i)
		combine := entry.Combine
		gaintype := o.gaintype(combine)
		spwmap := []int(nil)

		if iv.Kind == solint.KindInfEB {
			decision, err := o.infEBFallback(ctx, st, vf, caltable, entry)
			if err != nil {
				return err
			}
			switch decision.Mode {
			case flagging.FallbackCombineSpw:
				combine = joinCombine(combine, "spw")
				gaintype = "T"
				spwmap = combinedSpwMap(vf.SpwIDs)
			case flagging.FallbackSpwMap:
				spwmap = decision.ApplycalSpwMap
			}
		}

		prior := st.Calibration[vf.Vis]
		err := o.exec.Gaincal(ctx, casa.GaincalParams{
			Vis:       vf.Vis,
			Caltable:  caltable,
			Field:     st.Target,
			Spw:       vf.SpwSelect,
			Refant:    o.refantFor(vf),
			Gaintype:  gaintype,
			Calmode:   iv.Solmode(),
			Solint:    iv.GaincalSolint(),
			MinSNR:    o.cfg.GaincalMinSNR,
			Combine:   combine,
			Gaintable: prior.Gaintables,
			Interp:    prior.Interp,
		})
		if err != nil {
			return err
		}

		cal := VisCalibration{
			Gaintables: append(append([]string(nil), prior.Gaintables...), caltable),
			SpwMaps:    append(copySpwMaps(prior.SpwMaps), spwmap),
			Interp:     append(append([]string(nil), prior.Interp...), o.interpFor(iv, spwmap)),
			ApplyMode:  o.cfg.ApplyMode,
		}
		attempt.PerVis[vf.Vis] = cal

		err = o.exec.Applycal(ctx, casa.ApplycalParams{
			Vis:       vf.Vis,
			Field:     st.Target,
			Spw:       vf.SpwSelect,
			Gaintable: cal.Gaintables,
			Interp:    cal.Interp,
			SpwMaps:   cal.SpwMaps,
			ApplyMode: cal.ApplyMode,
			CalWt:     false,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// infEBFallback solves the per-spw table plus a combine="scan,spw" probe and
// lets the flagging analyzer pick the fallback strategy before the apply.
func (o *Orchestrator) infEBFallback(ctx context.Context, st *BandState, vf ms.VisFacts, caltable string, entry solint.Entry) (flagging.Decision, error) {
	probe := caltable + ".probe"
	prior := st.Calibration[vf.Vis]

	solve := func(table, combine, gaintype string) error {
		return o.exec.Gaincal(ctx, casa.GaincalParams{
			Vis:       vf.Vis,
			Caltable:  table,
			Field:     st.Target,
			Spw:       vf.SpwSelect,
			Refant:    o.refantFor(vf),
			Gaintype:  gaintype,
			Calmode:   "p",
			Solint:    "inf",
			MinSNR:    o.cfg.GaincalMinSNR,
			Combine:   combine,
			Gaintable: prior.Gaintables,
			Interp:    prior.Interp,
		})
	}

	if err := solve(caltable+".perspw", entry.Combine, o.gaintype(entry.Combine)); err != nil {
		return flagging.Decision{}, fmt.Errorf("inf_EB per-spw probe: %w", err)
	}
	if err := solve(probe, "scan,spw", "T"); err != nil {
		return flagging.Decision{}, fmt.Errorf("inf_EB combine probe: %w", err)
	}

	perSpwRows, err := o.exec.CaltableFlagRows(ctx, caltable+".perspw")
	if err != nil {
		return flagging.Decision{}, err
	}
	probeRows, err := o.exec.CaltableFlagRows(ctx, probe)
	if err != nil {
		return flagging.Decision{}, err
	}

	stats := flagging.PerSpwStats(perSpwRows, st.Facts.EffectiveBWHz)
	decision, err := flagging.AnalyzeInfEB(stats, flagging.TotalFlagged(probeRows))
	if err != nil {
		return flagging.Decision{}, err
	}
	if decision.Mode != flagging.FallbackNone {
		log.Printf("[SC] %s %s inf_EB: falling back to %s (spwmap %v)",
			st.Target, st.Band, decision.Mode, decision.ApplycalSpwMap)
	}
	return decision, nil
}

// #endregion solve-apply

// #region policies

// refantFor returns the configured reference antenna when set, otherwise
// the center-out ranking derived from the antenna offsets, as a gaincal
// priority list.
func (o *Orchestrator) refantFor(vf ms.VisFacts) string {
	if o.cfg.Refant != "" {
		return o.cfg.Refant
	}
	return strings.Join(vf.RefAnts, ",")
}

// gaintype returns T for spw-combined solves and for the 7m array, else G.
func (o *Orchestrator) gaintype(combine string) string {
	if o.cfg.Telescope == sensitivity.TelescopeACA || containsSpw(combine) {
		return "T"
	}
	return "G"
}

// interpFor selects the applycal interpolation: linearPD when a short
// interval is applied through an spwmap, plain linear otherwise.
func (o *Orchestrator) interpFor(iv solint.Interval, spwmap []int) string {
	short := iv.Kind == solint.KindDuration || iv.Kind == solint.KindInt
	if short && len(spwmap) > 0 {
		return "linearPD"
	}
	return "linear"
}

// jumpToAmplitude returns the jump signal into the amplitude sub-ladder
// when a phase-only interval shorter than inf has already succeeded and
// amplitude selfcal is enabled. Whole-scan phase gains are too coarse a
// baseline for amplitude solves.
func (o *Orchestrator) jumpToAmplitude(st *BandState, i int) (LoopSignal, bool) {
	ampIdx := st.Ladder.FirstAmplitudeIndex()
	if ampIdx < 0 || i >= ampIdx {
		return LoopSignal{}, false
	}
	switch st.FinalPhaseSolint {
	case "", "inf_EB", "inf":
		return LoopSignal{}, false
	}
	return signalJump(ampIdx), true
}

// estimateNext pre-extrapolates the following rung's solution SNR for the
// marginal inf_EB carve-out.
func (o *Orchestrator) estimateNext(st *BandState, i int, base float64) float64 {
	if i+1 >= len(st.Ladder.Entries) {
		return 0
	}
	return EstimateSolutionSNR(base, st.Facts.NAnts, st.Ladder.Entries[i+1].Interval, st)
}

func (o *Orchestrator) recordDecision(st *BandState, tag string, v Verdict) {
	if o.rec == nil {
		return
	}
	decision := "reject"
	if v.Accept {
		decision = "accept"
	}
	if err := o.rec.RecordDecision(st.Target, st.Band, tag, decision, v.Reason); err != nil {
		log.Printf("[SC] failed to record decision: %v", err)
	}
}

// #endregion policies

// #region helpers

func containsSpw(combine string) bool {
	for _, part := range splitCombine(combine) {
		if part == "spw" {
			return true
		}
	}
	return false
}

func splitCombine(combine string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(combine); i++ {
		if i == len(combine) || combine[i] == ',' {
			if i > start {
				out = append(out, combine[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func joinCombine(a, b string) string {
	for _, part := range splitCombine(a) {
		if part == b {
			return a
		}
	}
	if a == "" {
		return b
	}
	return a + "," + b
}

// combinedSpwMap maps every window of the selection onto the lowest ID,
// where a combined solve stores its single solution.
func combinedSpwMap(spws []int) []int {
	if len(spws) == 0 {
		return nil
	}
	lowest := spws[0]
	maxID := spws[0]
	for _, id := range spws {
		if id < lowest {
			lowest = id
		}
		if id > maxID {
			maxID = id
		}
	}
	m := make([]int, maxID+1)
	for i := range m {
		m[i] = lowest
	}
	return m
}

func copySpwMaps(maps [][]int) [][]int {
	out := make([][]int, len(maps))
	for i, m := range maps {
		out[i] = append([]int(nil), m...)
	}
	return out
}

// #endregion helpers
