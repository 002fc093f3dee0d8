package metrics

// #region imports
import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// #endregion imports

// #region constants

const (
	// madToSigma converts a median absolute deviation to a Gaussian sigma.
	madToSigma = 1.4826

	// beamAreaFactor converts major*minor FWHM to the area of a 2-D Gaussian.
	beamAreaFactor = math.Pi / (4.0 * math.Ln2)
)

// #endregion constants

// #region estimate-snr

// EstimateSNR returns the peak signal-to-noise ratio and the robust RMS of an
// image. The RMS is 1.4826 x the median absolute deviation of residual pixels
// outside the clean mask. When no valid mask exists the RMS falls back to a
// Chauvenet-clipped estimate over the whole residual. Pure function: calling
// it twice on the same inputs returns identical results.
func EstimateSNR(img Image) (snr, rms float64) {
	peak := planeMax(img.Image)

	var noise []float64
	if CheckMask(img) {
		noise = selectPixels(img.Residual, img.Mask, false)
	}
	if len(noise) > 0 {
		rms = madRMS(noise)
	} else {
		rms = chauvenetRMS(img.Residual.Data)
	}
	if rms <= 0 {
		return NotComputable, NotComputable
	}
	return peak / rms, rms
}

// #endregion estimate-snr

// #region near-field-snr

// EstimateNearFieldSNR returns the peak SNR against the near-field RMS: the
// robust RMS of residual pixels in an annulus obtained by growing the clean
// mask by 3 and by 5 beam widths and subtracting. The annulus captures
// sidelobe-dominated structure just outside the source while excluding the
// thermal far field. Returns (NotComputable, NotComputable) when the mask is
// empty; callers propagate the sentinel rather than treating it as an error.
func EstimateNearFieldSNR(img Image) (snr, rms float64) {
	if !CheckMask(img) {
		return NotComputable, NotComputable
	}

	beamPix := img.Beam.MajorArcsec / img.CellArcsec
	inner := growMask(img.Mask, 3.0*beamPix)
	outer := growMask(img.Mask, 5.0*beamPix)

	var noise []float64
	for i := range outer.Data {
		if outer.Data[i] > 0 && inner.Data[i] == 0 {
			noise = append(noise, img.Residual.Data[i])
		}
	}
	if len(noise) == 0 {
		return NotComputable, NotComputable
	}

	rms = madRMS(noise)
	if rms <= 0 {
		return NotComputable, NotComputable
	}
	return planeMax(img.Image) / rms, rms
}

// #endregion near-field-snr

// #region integrated-flux

// IntegratedFlux sums the image over the clean mask and converts to Jy using
// the beam area in pixels. The uncertainty is sqrt(Nbeams) x rms where Nbeams
// is the number of independent beams covered by the mask.
func IntegratedFlux(img Image, rms float64) (flux, uncertainty float64) {
	if !CheckMask(img) {
		return NotComputable, NotComputable
	}

	beamArea := img.Beam.AreaPixels(img.CellArcsec)
	if beamArea <= 0 {
		return NotComputable, NotComputable
	}

	var sum float64
	var npix int
	for i := range img.Mask.Data {
		if img.Mask.Data[i] > 0 {
			sum += img.Image.Data[i]
			npix++
		}
	}

	nBeams := float64(npix) / beamArea
	return sum / beamArea, math.Sqrt(nBeams) * rms
}

// #endregion integrated-flux

// #region compare-beams

// CompareBeams returns the fractional beam-area change of b relative to a.
// Position angle is ignored.
func CompareBeams(a, b Beam) float64 {
	return (b.Area() - a.Area()) / a.Area()
}

// #endregion compare-beams

// #region check-mask

// CheckMask reports whether the image's mask contains any nonzero pixel.
// An empty mask means clean found no components, which must short-circuit
// flux and near-field calculations downstream.
func CheckMask(img Image) bool {
	for _, v := range img.Mask.Data {
		if v != 0 {
			return true
		}
	}
	return false
}

// #endregion check-mask

// #region robust-statistics

// madRMS computes 1.4826 x the median absolute deviation of vals.
func madRMS(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	med := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	dev := make([]float64, len(sorted))
	for i, v := range sorted {
		dev[i] = math.Abs(v - med)
	}
	sort.Float64s(dev)
	return madToSigma * stat.Quantile(0.5, stat.Empirical, dev, nil)
}

// chauvenetRMS iteratively rejects outliers per the Chauvenet criterion and
// returns the standard deviation of the surviving pixels.
func chauvenetRMS(vals []float64) float64 {
	work := append([]float64(nil), vals...)
	for iter := 0; iter < 10; iter++ {
		n := float64(len(work))
		if n < 3 {
			break
		}
		mean, std := stat.MeanStdDev(work, nil)
		if std == 0 {
			break
		}
		// Reject samples whose expected count at this deviation is < 0.5.
		kept := work[:0]
		for _, v := range work {
			z := math.Abs(v-mean) / std
			expected := n * math.Erfc(z/math.Sqrt2)
			if expected >= 0.5 {
				kept = append(kept, v)
			}
		}
		if len(kept) == len(work) {
			break
		}
		work = kept
	}
	_, std := stat.MeanStdDev(work, nil)
	return std
}

// #endregion robust-statistics

// #region helpers

// planeMax returns the maximum pixel value of a plane.
func planeMax(p Plane) float64 {
	m := math.Inf(-1)
	for _, v := range p.Data {
		if v > m {
			m = v
		}
	}
	return m
}

// selectPixels returns residual pixels where the mask is (or is not) set.
func selectPixels(residual, mask Plane, inside bool) []float64 {
	if len(residual.Data) != len(mask.Data) {
		return nil
	}
	var out []float64
	for i, v := range residual.Data {
		set := mask.Data[i] > 0
		if set == inside {
			out = append(out, v)
		}
	}
	return out
}

// growMask dilates a binary mask with a circular structuring element of the
// given radius in pixels. The growth distance is exact regardless of how
// compact the masked region is, and the output always contains the input.
func growMask(mask Plane, radiusPix float64) Plane {
	out := NewPlane(mask.NX, mask.NY)
	for i, v := range mask.Data {
		if v > 0 {
			out.Data[i] = 1.0
		}
	}
	if radiusPix <= 0 {
		return out
	}

	r := int(math.Ceil(radiusPix))
	r2 := radiusPix * radiusPix
	for y := 0; y < mask.NY; y++ {
		for x := 0; x < mask.NX; x++ {
			if mask.At(x, y) <= 0 {
				continue
			}
			for dy := -r; dy <= r; dy++ {
				yy := y + dy
				if yy < 0 || yy >= mask.NY {
					continue
				}
				for dx := -r; dx <= r; dx++ {
					xx := x + dx
					if xx < 0 || xx >= mask.NX {
						continue
					}
					if float64(dx*dx+dy*dy) <= r2 {
						out.Set(xx, yy, 1.0)
					}
				}
			}
		}
	}
	return out
}

// #endregion helpers
