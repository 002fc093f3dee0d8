package sensitivity

// #region imports
import (
	"context"
	"fmt"
)

// #endregion imports

// #region telescope

// Telescope identifies the array whose dynamic-range heuristics apply.
type Telescope string

const (
	TelescopeALMA Telescope = "ALMA" // 12m array
	TelescopeACA  Telescope = "ACA"  // 7m array
	TelescopeVLA  Telescope = "VLA"
)

// #endregion telescope

// #region estimate

// Estimate is a theoretical sensitivity along with the bandwidth and
// reference frequency it was computed for.
type Estimate struct {
	JyPerBeam  float64
	BWHz       float64
	RefFreqHz  float64
}

// NoiseCalculator is the slice of the imaging backend the estimator needs:
// the apparent-sensitivity calculation for a UV-weighting scheme.
type NoiseCalculator interface {
	ApparentSensitivity(ctx context.Context, vis []string, spw map[string]string, robust float64) (jyPerBeam, bwHz, refFreqHz float64, err error)
}

// Estimator wraps the backend's theoretical-noise calculator.
type Estimator struct {
	calc NoiseCalculator
}

// NewEstimator creates an estimator over the given backend.
func NewEstimator(calc NoiseCalculator) *Estimator {
	return &Estimator{calc: calc}
}

// Theoretical returns the theoretical image noise for the given visibility
// selection and Briggs robust parameter.
func (e *Estimator) Theoretical(ctx context.Context, vis []string, spw map[string]string, robust float64) (Estimate, error) {
	jy, bw, ref, err := e.calc.ApparentSensitivity(ctx, vis, spw, robust)
	if err != nil {
		return Estimate{}, fmt.Errorf("apparent sensitivity: %w", err)
	}
	return Estimate{JyPerBeam: jy, BWHz: bw, RefFreqHz: ref}, nil
}

// #endregion estimate

// #region dr-correction-constants

// Tuned constants from the reference heuristics. The breakpoints have no
// documented derivation; they are preserved exactly.
const (
	tlimit = 2.0

	almaMaxSciEDR    = 150.0
	almaNDRMax       = 2.5
	acaOneEBMaxEDR   = 30.0
	acaOneEBDRThresh = 30.0
	acaOneEBNDRMax   = 2.5
	acaMultiMaxEDR   = 55.0
	acaMultiDRThresh = 75.0
	acaMultiNDRMax   = 3.5
)

// #endregion dr-correction-constants

// #region dr-correction

// DynamicRangeCorrection returns the multiplicative factor applied to the
// theoretical sensitivity to set a realistic clean threshold. Raw theoretical
// noise badly underestimates the achievable floor on dynamic-range-limited
// sources; the factor inflates the threshold to avoid cleaning into sidelobe
// noise. Step function of dirtyPeak/theoreticalSens per telescope; ACA is
// further split by execution-block count. VLA gets no correction here.
func DynamicRangeCorrection(telescope Telescope, dirtyPeak, theoreticalSens float64, nEBs int) float64 {
	if theoreticalSens <= 0 {
		return 1.0
	}
	dr := dirtyPeak / theoreticalSens

	switch telescope {
	case TelescopeALMA:
		if dr > almaMaxSciEDR {
			threshold := max(almaNDRMax*theoreticalSens, dirtyPeak/almaMaxSciEDR*tlimit)
			return threshold / theoreticalSens
		}
		switch {
		case dr > 100.0:
			return 2.5
		case dr > 50.0:
			return 2.0
		case dr > 20.0:
			return 1.5
		default:
			return 1.0
		}

	case TelescopeACA:
		maxEDR, drThresh, nDRMax := acaOneEBMaxEDR, acaOneEBDRThresh, acaOneEBNDRMax
		if nEBs > 1 {
			// Multi-EB 7m data has better dynamic range and cleans deeper.
			maxEDR, drThresh, nDRMax = acaMultiMaxEDR, acaMultiDRThresh, acaMultiNDRMax
		}
		if dr > drThresh {
			threshold := max(nDRMax*theoreticalSens, dirtyPeak/maxEDR*tlimit)
			return threshold / theoreticalSens
		}
		switch {
		case dr > 40.0:
			return 3.0
		case dr > 20.0:
			return 2.5
		case dr > 10.0:
			return 2.0
		case dr > 4.0:
			return 1.5
		default:
			return 1.0
		}

	default:
		return 1.0
	}
}

// #endregion dr-correction
