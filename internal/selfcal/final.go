package selfcal

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/r-xue/auto-selfcal/internal/metrics"
)

// #endregion imports

// #region constants

// perSpwFluxTolerance flags a spectral window whose integrated flux strays
// this far (fractionally) from the aggregate image.
const perSpwFluxTolerance = 0.5

// #endregion constants

// #region finalize

// finalize closes out one (target, band): revert an unconfirmed marginal
// inf_EB acceptance, produce the final image, re-measure the initial image
// under the final mask so the before/after statistics are comparable, and
// optionally run the per-spw quality check.
func (o *Orchestrator) finalize(ctx context.Context, st *BandState) error {
	if st.provisionalInfEB {
		if err := o.revertProvisionalInfEB(ctx, st); err != nil {
			return err
		}
	}

	finalName := o.imageName(st, "final", 0)
	if st.SCSuccess {
		// Deep final clean: down to the DR-corrected sensitivity or three
		// times the achieved near-field floor, whichever is deeper.
		threshold := st.ThresholdOrig
		if t := finalNSigma * st.RMSNFCurr; t < threshold {
			threshold = t
		}
		_, err := o.exec.Tclean(ctx, o.tcleanParams(st, finalName, threshold, finalNSigma, cleanNIter, cleanGain, ""))
		if err != nil {
			return fmt.Errorf("final image: %w", err)
		}
	} else {
		// Nothing was accepted: the initial image is the final product.
		if err := o.exec.CopyProducts(ctx, o.imageName(st, "initial", 0), finalName); err != nil {
			return fmt.Errorf("copy initial products: %w", err)
		}
	}

	final, err := o.exec.GetImage(ctx, finalName)
	if err != nil {
		return fmt.Errorf("read final image: %w", err)
	}
	st.SNRFinal, st.RMSFinal = metrics.EstimateSNR(final)
	st.SNRNFFinal, st.RMSNFFinal = metrics.EstimateNearFieldSNR(final)
	st.BeamFinal = final.Beam
	st.IntfluxFinal, st.IntfluxUncFinal = metrics.IntegratedFlux(final, st.RMSFinal)

	if st.SCSuccess {
		if err := o.remeasureOriginal(ctx, st, final.Mask); err != nil {
			return err
		}
	}

	if o.cfg.CheckAllSpws {
		if err := o.checkPerSpw(ctx, st); err != nil {
			return err
		}
	}

	log.Printf("[SC] %s %s: done (success=%t, final solint %s, SNR %.1f -> %.1f)",
		st.Target, st.Band, st.SCSuccess, st.FinalSolint, st.SNROrig, st.SNRFinal)
	return nil
}

// #endregion finalize

// #region revert

// revertProvisionalInfEB undoes a marginal inf_EB acceptance that no later
// interval confirmed: restore flags, clear calibration, and reset the band
// record to its pre-selfcal footing.
func (o *Orchestrator) revertProvisionalInfEB(ctx context.Context, st *BandState) error {
	log.Printf("[SC] %s %s: reverting unconfirmed marginal inf_EB", st.Target, st.Band)
	for _, vf := range st.Facts.PerVis {
		if err := o.exec.Flagmanager(ctx, vf.Vis, "restore", st.FlagVersion); err != nil {
			return fmt.Errorf("restore flags for revert: %w", err)
		}
		if err := o.exec.Clearcal(ctx, vf.Vis, st.Target); err != nil {
			return fmt.Errorf("clearcal for revert: %w", err)
		}
	}

	st.Calibration = make(map[string]VisCalibration)
	st.SCSuccess = false
	st.FinalSolint = "None"
	st.FinalSolintMode = ""
	st.FinalPhaseSolint = ""
	st.achievedSNR = 0
	st.refBeamSet = false
	st.RMSCurr = st.RMSOrig
	st.RMSNFCurr = st.RMSNFOrig
	st.provisionalInfEB = false
	if st.StopReason != "" {
		st.StopReason += "; marginal inf_EB reverted"
	} else {
		st.StopReason = "marginal inf_EB reverted"
	}
	return nil
}

// #endregion revert

// #region remeasure

// remeasureOriginal recomputes the initial image's statistics inside the
// final image's mask. The initial mask is usually shallower, which would
// bias the improvement upward; measuring both epochs through one mask makes
// the orig/final comparison honest.
func (o *Orchestrator) remeasureOriginal(ctx context.Context, st *BandState, finalMask metrics.Plane) error {
	initial, err := o.exec.GetImage(ctx, o.imageName(st, "initial", 0))
	if err != nil {
		return fmt.Errorf("reread initial image: %w", err)
	}
	if len(finalMask.Data) != len(initial.Mask.Data) {
		return nil
	}
	initial.Mask = finalMask

	st.SNROrig, st.RMSOrig = metrics.EstimateSNR(initial)
	snrNF, rmsNF := metrics.EstimateNearFieldSNR(initial)
	if rmsNF != metrics.NotComputable {
		st.SNRNFOrig, st.RMSNFOrig = snrNF, rmsNF
	}
	st.IntfluxOrig, st.IntfluxUncOrig = metrics.IntegratedFlux(initial, st.RMSOrig)
	return nil
}

// #endregion remeasure

// #region per-spw

// checkPerSpw images each spectral window of the band on its own and
// records its SNR and integrated flux, flagging windows whose flux strays
// badly from the aggregate image (a signature of a bad per-spw solution).
func (o *Orchestrator) checkPerSpw(ctx context.Context, st *BandState) error {
	ids := make([]int, 0, len(st.Facts.EffectiveBWHz))
	for id := range st.Facts.EffectiveBWHz {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	st.PerSpw = make(map[int]SpwQuality, len(ids))
	for _, id := range ids {
		name := fmt.Sprintf("%s_spw%d", o.imageName(st, "final", 0), id)
		params := o.tcleanParams(st, name, st.ThresholdOrig, finalNSigma, cleanNIter, cleanGain, "")
		params.Spw = perSpwSelection(st, id)
		// A single window has no spectral leverage for a Taylor expansion.
		params.NTerms = 1
		if _, err := o.exec.Tclean(ctx, params); err != nil {
			return fmt.Errorf("per-spw image spw %d: %w", id, err)
		}
		img, err := o.exec.GetImage(ctx, name)
		if err != nil {
			return fmt.Errorf("read per-spw image spw %d: %w", id, err)
		}

		snr, rms := metrics.EstimateSNR(img)
		flux, _ := metrics.IntegratedFlux(img, rms)
		q := SpwQuality{SNR: snr, RMS: rms, Intflux: flux}
		if st.IntfluxFinal > 0 {
			dev := (flux - st.IntfluxFinal) / st.IntfluxFinal
			if dev > perSpwFluxTolerance || dev < -perSpwFluxTolerance {
				q.Suspect = true
				log.Printf("[SC] %s %s spw %d: integrated flux %.3g Jy deviates %.0f%% from aggregate",
					st.Target, st.Band, id, flux, dev*100)
			}
		}
		st.PerSpw[id] = q
	}
	return nil
}

// perSpwSelection narrows the tclean spw selection to a single window,
// per input visibility.
func perSpwSelection(st *BandState, id int) string {
	sel := ""
	for i := range st.Facts.PerVis {
		if i > 0 {
			sel += ";"
		}
		sel += fmt.Sprintf("%d", id)
	}
	return sel
}

// #endregion per-spw
