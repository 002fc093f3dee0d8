package metrics

// #region plane

// Plane is a single 2-D image plane in row-major order.
// Values are Jy/beam for science images, 0/1 for mask planes.
type Plane struct {
	Data []float64
	NX   int
	NY   int
}

// At returns the pixel value at (x, y). No bounds check.
func (p Plane) At(x, y int) float64 { return p.Data[y*p.NX+x] }

// Set writes the pixel value at (x, y). No bounds check.
func (p Plane) Set(x, y int, v float64) { p.Data[y*p.NX+x] = v }

// NewPlane allocates a zeroed plane of the given shape.
func NewPlane(nx, ny int) Plane {
	return Plane{Data: make([]float64, nx*ny), NX: nx, NY: ny}
}

// #endregion plane

// #region beam

// Beam is a restoring beam: major/minor FWHM in arcsec and position angle in degrees.
type Beam struct {
	MajorArcsec float64
	MinorArcsec float64
	PosAngleDeg float64
}

// Area returns the product of the major and minor axes.
// Position angle is ignored everywhere beams are compared.
func (b Beam) Area() float64 { return b.MajorArcsec * b.MinorArcsec }

// AreaPixels returns the Gaussian beam area in pixels for the given cell size.
func (b Beam) AreaPixels(cellArcsec float64) float64 {
	return beamAreaFactor * (b.MajorArcsec / cellArcsec) * (b.MinorArcsec / cellArcsec)
}

// #endregion beam

// #region image

// Image bundles the planes and header values the quality metrics need.
// Residual and Mask may be empty planes when a product does not exist.
type Image struct {
	Name       string
	Image      Plane
	Residual   Plane
	Mask       Plane
	Beam       Beam
	CellArcsec float64
}

// #endregion image

// #region sentinels

// NotComputable is returned for metrics that cannot be derived from the
// available data (no valid mask, fully flagged region). It is an expected
// outcome, not an error.
const NotComputable = -99.0

// #endregion sentinels
