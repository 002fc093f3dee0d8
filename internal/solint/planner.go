package solint

// #region imports
import (
	"fmt"
	"math"
	"sort"
)

// #endregion imports

// #region config

// PlannerConfig holds the knobs for ladder construction.
type PlannerConfig struct {
	// NSolints is the target number of rungs between the scan length and the
	// integration time.
	NSolints float64
	// InfEBCombine is the gaincal combine policy for the inf_EB rung:
	// "scan", "spw", "scan,spw", or "".
	InfEBCombine string
	// SpwCombine enables spw combination for rungs below inf_EB.
	SpwCombine bool
	// AmplitudeSelfcal appends the amplitude sub-ladder.
	AmplitudeSelfcal bool
}

// DefaultPlannerConfig returns the reference heuristic parameters.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		NSolints:     4.0,
		InfEBCombine: "scan",
		SpwCombine:   true,
	}
}

// #endregion config

// #region constants

const (
	// minIntervalFactor: candidates at or below this multiple of the
	// integration time collapse into the explicit "int" rung and are dropped.
	minIntervalFactor = 1.9

	// longCycleSeconds: when the phase-calibrator cycle time exceeds this,
	// a 300s amplitude rung is inserted ahead of inf_ap to track gain drift.
	longCycleSeconds = 150.0

	// ampMidSolintSeconds is that inserted amplitude rung.
	ampMidSolintSeconds = 300.0
)

// offsetCandidates is the search order for snapping a candidate interval to
// an integer number of integrations. Tuned order from the reference heuristic.
var offsetCandidates = []int{0, -1, 1, -2, 2}

// #endregion constants

// #region plan

// Plan computes the ordered solution-interval ladder for one (target, band)
// pair from the per-visibility scan timing. timings must be non-empty; the
// caller guards targets with no scan data.
func Plan(timings []ScanTiming, cycleTime float64, cfg PlannerConfig) (Ladder, error) {
	if len(timings) == 0 {
		return Ladder{}, fmt.Errorf("plan solints: no scan timing data")
	}

	integration := maxMedianIntegration(timings)
	if integration <= 0 {
		return Ladder{}, fmt.Errorf("plan solints: non-positive integration time")
	}

	maxScantime := medianScanDuration(timings)
	divider := solintDivider(maxScantime, integration, cfg.NSolints)

	// Descending numeric candidates from maxScantime/divider down to just
	// above the integration time, each snapped to a whole number of
	// integrations.
	var numeric []float64
	durations := allDurations(timings)
	for candidate := maxScantime / divider; candidate > minIntervalFactor*integration; candidate /= divider {
		snapped := snapToIntegrations(candidate, integration, durations)
		if snapped <= minIntervalFactor*integration {
			break
		}
		numeric = append(numeric, snapped)
	}

	shortCombine := ""
	if cfg.SpwCombine {
		shortCombine = "spw"
	}

	entries := []Entry{{Interval: InfEB(), Combine: cfg.InfEBCombine}}
	if medianScansPerObservation(timings) > 1 {
		entries = append(entries, Entry{Interval: Inf(), Combine: shortCombine})
	}
	for _, sec := range numeric {
		entries = append(entries, Entry{Interval: Duration(sec), Combine: shortCombine})
	}
	entries = append(entries, Entry{Interval: Interval{Kind: KindInt}, Combine: shortCombine})

	if cfg.AmplitudeSelfcal {
		if cycleTime > longCycleSeconds {
			entries = append(entries, Entry{Interval: AmpDuration(ampMidSolintSeconds), Combine: shortCombine})
		}
		entries = append(entries, Entry{Interval: AmpInf(), Combine: shortCombine})
	}

	return Ladder{Entries: entries, IntegrationTime: integration}, nil
}

// #endregion plan

// #region divider

// solintDivider picks the geometric step so that nSolints divisions of
// maxScantime land near the integration time. Floored at 2.
func solintDivider(maxScantime, integration, nSolints float64) float64 {
	d := math.Round(math.Exp(math.Log(maxScantime/integration) / nSolints))
	if d < 2.0 {
		d = 2.0
	}
	return d
}

// #endregion divider

// #region snap

// snapToIntegrations rounds candidate to a whole number of integrations,
// testing small integer offsets and keeping the one that disrupts the
// observed scan lengths least: fewest scans left with a partial trailing
// interval, then fewest leftover integrations inside those partials.
func snapToIntegrations(candidate, integration float64, scanDurations []float64) float64 {
	base := int(math.Round(candidate / integration))

	bestOffset := 0
	bestPartials := math.MaxInt32
	bestLeftover := math.MaxFloat64
	for _, off := range offsetCandidates {
		n := base + off
		if n < 1 {
			continue
		}
		trial := float64(n) * integration

		partials := 0
		leftover := 0.0
		for _, d := range scanDurations {
			rem := math.Mod(d, trial)
			if rem > 0.5*integration {
				partials++
				leftover += rem / integration
			}
		}
		if partials < bestPartials || (partials == bestPartials && leftover < bestLeftover) {
			bestOffset = off
			bestPartials = partials
			bestLeftover = leftover
		}
	}

	return float64(base+bestOffset) * integration
}

// #endregion snap

// #region timing-statistics

// maxMedianIntegration takes the median integration time of each visibility
// and returns the maximum across visibilities. Using the max protects
// against one dataset carrying an anomalously short nominal integration.
func maxMedianIntegration(timings []ScanTiming) float64 {
	var best float64
	for _, t := range timings {
		if m := median(t.IntegrationTimes); m > best {
			best = m
		}
	}
	return best
}

// medianScanDuration is the median over every scan of every visibility.
// Deliberately not the max, so one long outlier scan cannot dominate.
func medianScanDuration(timings []ScanTiming) float64 {
	return median(allDurations(timings))
}

// medianScansPerObservation returns the median scan count per visibility.
func medianScansPerObservation(timings []ScanTiming) int {
	counts := make([]float64, len(timings))
	for i, t := range timings {
		counts[i] = float64(len(t.Durations))
	}
	return int(math.Round(median(counts)))
}

// CycleTime estimates the time between phase-calibrator visits as the median
// gap between consecutive scan starts, maximised across visibilities.
func CycleTime(timings []ScanTiming) float64 {
	var best float64
	for _, t := range timings {
		starts := append([]float64(nil), t.Starts...)
		sort.Float64s(starts)
		var gaps []float64
		for i := 1; i < len(starts); i++ {
			gaps = append(gaps, starts[i]-starts[i-1])
		}
		if m := median(gaps); m > best {
			best = m
		}
	}
	return best
}

func allDurations(timings []ScanTiming) []float64 {
	var out []float64
	for _, t := range timings {
		out = append(out, t.Durations...)
	}
	return out
}

// median is the interpolating median: even-length inputs average the two
// middle samples, so two observations with 1 and 2 scans sit at 1.5, not 1.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// #endregion timing-statistics
