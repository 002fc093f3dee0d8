// Package ms derives per-target, per-band observational facts from the
// measurement-set metadata interface: scan timing, integration times,
// spectral-window layout, antenna counts. All queries are read-only and run
// once per target/band during preparation.
package ms

// #region imports
import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/r-xue/auto-selfcal/internal/casa"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region reader-interface

// Reader abstracts the measurement-set metadata RPCs so facts can be
// gathered without a live executor.
type Reader interface {
	Fields(ctx context.Context, vis string) ([]string, error)
	ScansForField(ctx context.Context, vis, field string) ([]int, error)
	SpwsForScan(ctx context.Context, vis string, scan int) ([]int, error)
	TimesForScan(ctx context.Context, vis string, scan int) ([]float64, error)
	ExposureTime(ctx context.Context, vis string, scan, spw int) (float64, error)
	AntennaNames(ctx context.Context, vis string) ([]string, error)
	AntennaOffsets(ctx context.Context, vis string) (map[string]casa.Offset, error)
	FieldIDsForScans(ctx context.Context, vis string, scans []int) ([]int, error)
	SpwProperties(ctx context.Context, vis string) ([]casa.SpwProperty, error)
}

// #endregion reader-interface

// #region facts

// VisFacts holds the per-visibility observation structure for one target
// and band.
type VisFacts struct {
	Vis       string
	Timing    solint.ScanTiming
	SpwIDs    []int
	SpwSelect string // comma-separated spw selection string
	NAnts     int
	// RefAnts ranks the antennas by distance from the array center, closest
	// first, for use as a gaincal reference priority list.
	RefAnts []string
	Mosaic  bool // more than one field ID covered by the target's scans
}

// Facts is everything the orchestrator needs to know about one
// (target, band) pair before optimization starts.
type Facts struct {
	Target  string
	Band    string
	PerVis  []VisFacts
	NAnts   int // minimum across visibilities
	Mosaic  bool
	NTerms  int
	// TotalOnSourceSeconds is the summed scan time across all visibilities,
	// the time base for per-solint SNR extrapolation.
	TotalOnSourceSeconds float64
	// CycleTimeSeconds is the estimated phase-calibrator revisit interval.
	CycleTimeSeconds float64
	// MeanFreqHz and fractional bandwidth of the band's windows.
	MeanFreqHz          float64
	FractionalBandwidth float64
	EffectiveBWHz       map[int]float64
}

// #endregion facts

// #region constants

// wideFractionalBW: above this fractional bandwidth the sky spectral slope
// matters and imaging uses two Taylor terms.
const wideFractionalBW = 0.08

// #endregion constants

// #region discover

// Targets returns the union of science field names across visibilities,
// in first-seen order.
func Targets(ctx context.Context, r Reader, vis []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, v := range vis {
		names, err := r.Fields(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("discover targets in %s: %w", v, err)
		}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out, nil
}

// Bands returns the receiver bands present across visibilities and the spw
// IDs belonging to each, per visibility.
func Bands(ctx context.Context, r Reader, vis []string) (map[string]map[string][]int, error) {
	bands := make(map[string]map[string][]int) // band → vis → spw IDs
	for _, v := range vis {
		props, err := r.SpwProperties(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("discover bands in %s: %w", v, err)
		}
		for _, p := range props {
			if bands[p.Band] == nil {
				bands[p.Band] = make(map[string][]int)
			}
			bands[p.Band][v] = append(bands[p.Band][v], p.SpwID)
		}
	}
	for _, byVis := range bands {
		for v := range byVis {
			sort.Ints(byVis[v])
		}
	}
	return bands, nil
}

// #endregion discover

// #region gather

// Gather assembles the facts for one (target, band) pair. spwsByVis selects
// the band's windows per visibility. Fails fast when a visibility has no
// scans on the target; the planner is never invoked for such targets.
func Gather(ctx context.Context, r Reader, target, band string, spwsByVis map[string][]int) (Facts, error) {
	f := Facts{
		Target:        target,
		Band:          band,
		NTerms:        1,
		EffectiveBWHz: make(map[int]float64),
	}

	var minFreq, maxFreq, sumFreq float64
	var nFreq int

	for vis, spws := range spwsByVis {
		vf, err := gatherVis(ctx, r, vis, target, spws)
		if err != nil {
			return Facts{}, err
		}
		f.PerVis = append(f.PerVis, vf)

		if f.NAnts == 0 || vf.NAnts < f.NAnts {
			f.NAnts = vf.NAnts
		}
		f.Mosaic = f.Mosaic || vf.Mosaic
		for _, d := range vf.Timing.Durations {
			f.TotalOnSourceSeconds += d
		}

		props, err := r.SpwProperties(ctx, vis)
		if err != nil {
			return Facts{}, fmt.Errorf("spw properties for %s: %w", vis, err)
		}
		inBand := make(map[int]bool)
		for _, id := range spws {
			inBand[id] = true
		}
		for _, p := range props {
			if !inBand[p.SpwID] {
				continue
			}
			f.EffectiveBWHz[p.SpwID] = p.EffectiveBWHz
			lo := p.MeanFreqHz - p.BandwidthHz/2
			hi := p.MeanFreqHz + p.BandwidthHz/2
			if minFreq == 0 || lo < minFreq {
				minFreq = lo
			}
			if hi > maxFreq {
				maxFreq = hi
			}
			sumFreq += p.MeanFreqHz
			nFreq++
		}
	}

	sort.Slice(f.PerVis, func(i, j int) bool { return f.PerVis[i].Vis < f.PerVis[j].Vis })

	if len(f.PerVis) == 0 {
		return Facts{}, fmt.Errorf("no visibilities carry band %s for target %s", band, target)
	}

	if nFreq > 0 {
		f.MeanFreqHz = sumFreq / float64(nFreq)
		f.FractionalBandwidth = (maxFreq - minFreq) / f.MeanFreqHz
	}
	if f.FractionalBandwidth > wideFractionalBW || strings.HasPrefix(band, "EVLA") {
		f.NTerms = 2
	}

	f.CycleTimeSeconds = solint.CycleTime(timings(f.PerVis))
	return f, nil
}

// gatherVis collects the scan structure of one visibility for one target.
func gatherVis(ctx context.Context, r Reader, vis, target string, spws []int) (VisFacts, error) {
	scans, err := r.ScansForField(ctx, vis, target)
	if err != nil {
		return VisFacts{}, fmt.Errorf("scans for %s in %s: %w", target, vis, err)
	}
	if len(scans) == 0 {
		return VisFacts{}, fmt.Errorf("no scans on target %s in %s", target, vis)
	}

	inBand := make(map[int]bool)
	for _, id := range spws {
		inBand[id] = true
	}

	vf := VisFacts{Vis: vis, SpwIDs: spws, SpwSelect: spwSelect(spws)}

	for _, scan := range scans {
		scanSpws, err := r.SpwsForScan(ctx, vis, scan)
		if err != nil {
			return VisFacts{}, fmt.Errorf("spws for scan %d: %w", scan, err)
		}
		overlap := -1
		for _, s := range scanSpws {
			if inBand[s] {
				overlap = s
				break
			}
		}
		if overlap < 0 {
			continue
		}

		times, err := r.TimesForScan(ctx, vis, scan)
		if err != nil {
			return VisFacts{}, fmt.Errorf("times for scan %d: %w", scan, err)
		}
		if len(times) == 0 {
			continue
		}
		exp, err := r.ExposureTime(ctx, vis, scan, overlap)
		if err != nil {
			return VisFacts{}, fmt.Errorf("exposure for scan %d: %w", scan, err)
		}

		start := times[0]
		end := times[len(times)-1]
		vf.Timing.Starts = append(vf.Timing.Starts, start)
		vf.Timing.Ends = append(vf.Timing.Ends, end)
		vf.Timing.Durations = append(vf.Timing.Durations, end-start+exp)
		vf.Timing.IntegrationTimes = append(vf.Timing.IntegrationTimes, exp)
	}

	if len(vf.Timing.Durations) == 0 {
		return VisFacts{}, fmt.Errorf("no scan timing for target %s in %s", target, vis)
	}

	ants, err := r.AntennaNames(ctx, vis)
	if err != nil {
		return VisFacts{}, fmt.Errorf("antenna names for %s: %w", vis, err)
	}
	vf.NAnts = len(ants)

	offsets, err := r.AntennaOffsets(ctx, vis)
	if err != nil {
		return VisFacts{}, fmt.Errorf("antenna offsets for %s: %w", vis, err)
	}
	vf.RefAnts = rankRefAnts(ants, offsets)

	fieldIDs, err := r.FieldIDsForScans(ctx, vis, scans)
	if err != nil {
		return VisFacts{}, fmt.Errorf("field ids for %s: %w", vis, err)
	}
	unique := make(map[int]bool)
	for _, id := range fieldIDs {
		unique[id] = true
	}
	vf.Mosaic = len(unique) > 1

	return vf, nil
}

// #endregion gather

// #region helpers

// Timings extracts the scan timing of each visibility in order.
func Timings(f Facts) []solint.ScanTiming { return timings(f.PerVis) }

func timings(pv []VisFacts) []solint.ScanTiming {
	out := make([]solint.ScanTiming, len(pv))
	for i, v := range pv {
		out[i] = v.Timing
	}
	return out
}

// rankRefAnts orders antennas by distance from the array center, closest
// first. Central antennas share the most short baselines and make the most
// stable gain references. Antennas with no recorded offset sort last, in
// pad order.
func rankRefAnts(names []string, offsets map[string]casa.Offset) []string {
	ranked := append([]string(nil), names...)
	dist := func(name string) float64 {
		o, ok := offsets[name]
		if !ok {
			return math.MaxFloat64
		}
		return math.Hypot(o.Longitude, o.Latitude)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return dist(ranked[i]) < dist(ranked[j]) })
	return ranked
}

// spwSelect renders spw IDs as a CASA selection string.
func spwSelect(spws []int) string {
	parts := make([]string, len(spws))
	for i, id := range spws {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// #endregion helpers
