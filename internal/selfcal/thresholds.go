package selfcal

// #region imports
import (
	"math"

	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region constants

const (
	// finalNSigma is the clean depth the threshold ladder decays to and the
	// amplitude intervals hold flat.
	finalNSigma = 3.0

	// refantExcluded: antennas unavailable as gain references when
	// extrapolating per-antenna solution SNR from image SNR.
	refantExcluded = 3.0
)

// #endregion constants

// #region nsigma-ladder

// NSigmaLadder interpolates the per-iteration clean depth from an initial
// sigma down to 3 sigma across the phase-only rungs, then holds 3 sigma for
// the amplitude rungs. scaling selects the decay shape: "log10" (default),
// "loglinear", or "linear".
func NSigmaLadder(initial float64, ladder solint.Ladder, scaling string) []float64 {
	n := len(ladder.Entries)
	out := make([]float64, n)
	phase := ladder.PhaseCount()

	if initial < finalNSigma {
		initial = finalNSigma
	}

	for i := 0; i < n; i++ {
		if i >= phase {
			out[i] = finalNSigma
			continue
		}
		frac := 0.0
		if phase > 1 {
			frac = float64(i) / float64(phase-1)
		}
		// The endpoints are exact; interpolation only shapes the interior
		// rungs, so round-tripping through Log/Pow never perturbs them.
		switch {
		case frac == 0 || initial == finalNSigma:
			out[i] = initial
		case i == phase-1:
			out[i] = finalNSigma
		default:
			switch scaling {
			case "linear":
				out[i] = initial + frac*(finalNSigma-initial)
			case "loglinear":
				out[i] = math.Exp(math.Log(initial) + frac*(math.Log(finalNSigma)-math.Log(initial)))
			default: // log10
				out[i] = math.Pow(10, math.Log10(initial)+frac*(math.Log10(finalNSigma)-math.Log10(initial)))
			}
		}
	}
	return out
}

// #endregion nsigma-ladder

// #region snr-extrapolation

// EstimateSolutionSNR extrapolates the per-antenna gain solution SNR for a
// solution interval from the image SNR: divide by sqrt(Nants-3) for the
// per-antenna share, scale by the square root of the solution length over
// the total on-source time.
func EstimateSolutionSNR(imageSNR float64, nAnts int, iv solint.Interval, st *BandState) float64 {
	if nAnts <= int(refantExcluded) {
		return 0
	}
	perAnt := imageSNR / math.Sqrt(float64(nAnts)-refantExcluded)

	total := st.Facts.TotalOnSourceSeconds
	if total <= 0 {
		return 0
	}

	var span float64
	switch iv.Kind {
	case solint.KindInfEB:
		span = total
	case solint.KindInf:
		span = medianScan(st)
	case solint.KindDuration:
		span = iv.Seconds
	default:
		span = st.Ladder.IntegrationTime
	}
	if span > total {
		span = total
	}
	return perAnt * math.Sqrt(span/total)
}

// medianScan returns a central scan duration across the band's visibilities.
func medianScan(st *BandState) float64 {
	var sum float64
	var n int
	for _, vf := range st.Facts.PerVis {
		for _, d := range vf.Timing.Durations {
			sum += d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// #endregion snr-extrapolation
