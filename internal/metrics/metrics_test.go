package metrics

import (
	"math"
	"testing"
)

// #region helpers

// testImage builds a 64x64 image with a 3x3 source blob at the center. The
// residual outside the mask cycles through {-1, 0, +1} x 1e-5, which has a
// median absolute deviation of exactly 1e-5.
func testImage() Image {
	const n = 64
	img := Image{
		Image:      NewPlane(n, n),
		Residual:   NewPlane(n, n),
		Mask:       NewPlane(n, n),
		Beam:       Beam{MajorArcsec: 0.2, MinorArcsec: 0.2},
		CellArcsec: 0.1,
	}

	for i := range img.Residual.Data {
		switch i % 3 {
		case 0:
			img.Residual.Data[i] = -1e-5
		case 1:
			img.Residual.Data[i] = 0
		case 2:
			img.Residual.Data[i] = 1e-5
		}
	}

	for y := 31; y <= 33; y++ {
		for x := 31; x <= 33; x++ {
			img.Mask.Set(x, y, 1)
			img.Image.Set(x, y, 1.4826e-4)
		}
	}
	return img
}

// #endregion helpers

// #region snr-tests

func TestEstimateSNR(t *testing.T) {
	img := testImage()

	snr, rms := EstimateSNR(img)
	if math.Abs(rms-1.4826e-5) > 1e-9 {
		t.Errorf("expected rms 1.4826e-5, got %g", rms)
	}
	if math.Abs(snr-10.0) > 1e-6 {
		t.Errorf("expected snr 10, got %g", snr)
	}
}

// The estimator is a pure function of its input.
func TestEstimateSNR_Deterministic(t *testing.T) {
	img := testImage()

	snr1, rms1 := EstimateSNR(img)
	snr2, rms2 := EstimateSNR(img)
	if snr1 != snr2 || rms1 != rms2 {
		t.Errorf("repeated calls diverged: (%g, %g) vs (%g, %g)", snr1, rms1, snr2, rms2)
	}
}

// Without a mask the RMS falls back to Chauvenet clipping over the whole
// residual rather than failing.
func TestEstimateSNR_NoMaskFallback(t *testing.T) {
	img := testImage()
	img.Mask = NewPlane(img.Mask.NX, img.Mask.NY)

	snr, rms := EstimateSNR(img)
	if rms == NotComputable || rms <= 0 {
		t.Fatalf("expected positive fallback rms, got %g", rms)
	}
	if snr <= 0 {
		t.Errorf("expected positive snr, got %g", snr)
	}
}

// #endregion snr-tests

// #region near-field-tests

func TestEstimateNearFieldSNR(t *testing.T) {
	img := testImage()

	snr, rms := EstimateNearFieldSNR(img)
	if rms == NotComputable {
		t.Fatal("expected computable near-field rms")
	}
	if rms <= 0 {
		t.Errorf("expected positive rms, got %g", rms)
	}
	if snr <= 0 {
		t.Errorf("expected positive snr, got %g", snr)
	}
}

// An empty mask yields the sentinel pair, never an error or a zero.
func TestEstimateNearFieldSNR_EmptyMask(t *testing.T) {
	img := testImage()
	img.Mask = NewPlane(img.Mask.NX, img.Mask.NY)

	snr, rms := EstimateNearFieldSNR(img)
	if snr != NotComputable || rms != NotComputable {
		t.Errorf("expected sentinel pair (-99, -99), got (%g, %g)", snr, rms)
	}
}

// The annulus lies strictly outside the 3-beam dilation, so residual values
// inside and immediately around the source cannot bias the near-field rms.
func TestEstimateNearFieldSNR_ExcludesSourceResiduals(t *testing.T) {
	img := testImage()
	clean := append([]float64(nil), img.Residual.Data...)

	// Corrupt the residual inside the mask blob only.
	for y := 31; y <= 33; y++ {
		for x := 31; x <= 33; x++ {
			img.Residual.Set(x, y, 1.0)
		}
	}
	_, rmsCorrupt := EstimateNearFieldSNR(img)

	img.Residual.Data = clean
	_, rmsClean := EstimateNearFieldSNR(img)

	if rmsCorrupt != rmsClean {
		t.Errorf("masked residuals leaked into near-field rms: %g vs %g", rmsCorrupt, rmsClean)
	}
}

// #endregion near-field-tests

// #region flux-tests

func TestIntegratedFlux(t *testing.T) {
	img := testImage()
	for y := 31; y <= 33; y++ {
		for x := 31; x <= 33; x++ {
			img.Image.Set(x, y, 1.0)
		}
	}

	flux, unc := IntegratedFlux(img, 1e-5)

	// 9 pixels of 1 Jy/beam over a 2x2-pixel FWHM Gaussian beam.
	beamArea := math.Pi / (4 * math.Ln2) * 4.0
	wantFlux := 9.0 / beamArea
	if math.Abs(flux-wantFlux) > 1e-9 {
		t.Errorf("expected flux %g, got %g", wantFlux, flux)
	}
	wantUnc := math.Sqrt(9.0/beamArea) * 1e-5
	if math.Abs(unc-wantUnc) > 1e-12 {
		t.Errorf("expected uncertainty %g, got %g", wantUnc, unc)
	}
}

func TestIntegratedFlux_EmptyMask(t *testing.T) {
	img := testImage()
	img.Mask = NewPlane(img.Mask.NX, img.Mask.NY)

	flux, unc := IntegratedFlux(img, 1e-5)
	if flux != NotComputable || unc != NotComputable {
		t.Errorf("expected sentinel pair, got (%g, %g)", flux, unc)
	}
}

// #endregion flux-tests

// #region beam-tests

func TestCompareBeams(t *testing.T) {
	a := Beam{MajorArcsec: 2.0, MinorArcsec: 1.0}
	b := Beam{MajorArcsec: 2.2, MinorArcsec: 1.1}

	got := CompareBeams(a, b)
	if math.Abs(got-0.21) > 1e-12 {
		t.Errorf("expected fractional change 0.21, got %g", got)
	}
	if CompareBeams(a, a) != 0 {
		t.Error("expected zero change for identical beams")
	}
}

// #endregion beam-tests

// #region mask-tests

func TestCheckMask(t *testing.T) {
	img := testImage()
	if !CheckMask(img) {
		t.Error("expected mask with source blob to be valid")
	}
	img.Mask = NewPlane(img.Mask.NX, img.Mask.NY)
	if CheckMask(img) {
		t.Error("expected empty mask to be invalid")
	}
}

// Dilation never loses pixels: the grown mask is a superset of the original,
// even for a single-pixel mask.
func TestGrowMask_Superset(t *testing.T) {
	mask := NewPlane(32, 32)
	mask.Set(16, 16, 1)

	grown := growMask(mask, 20.0)
	if grown.At(16, 16) == 0 {
		t.Error("original pixel lost in dilation")
	}

	var nOrig, nGrown int
	for i := range mask.Data {
		if mask.Data[i] > 0 {
			nOrig++
		}
		if grown.Data[i] > 0 {
			nGrown++
		}
	}
	if nGrown < nOrig {
		t.Errorf("grown mask smaller than original: %d < %d", nGrown, nOrig)
	}
}

// A compact mask must still grow by the full requested radius, so the annulus
// between the 3- and 5-beam dilations is never empty for a real detection.
func TestGrowMask_CompactMaskExpands(t *testing.T) {
	mask := NewPlane(64, 64)
	for y := 31; y <= 33; y++ {
		for x := 31; x <= 33; x++ {
			mask.Set(x, y, 1)
		}
	}

	inner := growMask(mask, 6.0)
	outer := growMask(mask, 10.0)

	var nInner, nOuter int
	for i := range mask.Data {
		if inner.Data[i] > 0 {
			nInner++
		}
		if outer.Data[i] > 0 {
			nOuter++
		}
	}
	if nInner <= 9 {
		t.Errorf("inner dilation did not expand a 9-pixel mask: %d pixels", nInner)
	}
	if nOuter <= nInner {
		t.Errorf("annulus is empty: outer %d <= inner %d", nOuter, nInner)
	}

	// Distance is honored exactly: 10 pixels straight up from the blob edge
	// is inside the outer mask, 11 is outside.
	if outer.At(32, 33+10) == 0 {
		t.Error("pixel at the dilation radius excluded")
	}
	if outer.At(32, 33+11) != 0 {
		t.Error("pixel beyond the dilation radius included")
	}
}

// #endregion mask-tests
