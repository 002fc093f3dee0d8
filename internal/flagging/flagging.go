package flagging

// #region imports
import (
	"fmt"
	"sort"
)

// #endregion imports

// #region types

// SpwStats holds the per-spectral-window solution flagging counts from one
// calibration table, plus the window's effective bandwidth.
type SpwStats struct {
	SpwID           int
	FlaggedSolns    float64 // flagged antenna solutions
	UnflaggedSolns  float64
	EffectiveBWHz   float64
}

// FallbackMode is the decision output of the inf_EB flagging analysis.
type FallbackMode string

const (
	// FallbackNone keeps the per-spw solve as-is.
	FallbackNone FallbackMode = ""
	// FallbackCombineSpw replaces the per-spw solve with a single
	// spw-combined solution.
	FallbackCombineSpw FallbackMode = "combinespw"
	// FallbackSpwMap keeps the per-spw solve but applies a donor spw's
	// solution to the deficient windows.
	FallbackSpwMap FallbackMode = "spwmap"
)

// Decision is the full output of AnalyzeInfEB.
type Decision struct {
	Mode           FallbackMode
	DonorIndex     int    // index into stats of the donor spw (spwmap mode)
	Mapped         []bool // per-spw: true when the donor's solution replaces it
	ApplycalSpwMap []int  // identity map overridden at mapped indices
}

// #endregion types

// #region constants

// Tuned cutoffs from the reference heuristic; regression outputs are pinned
// to these exact values.
const (
	// combineSpwCutoff: when even the least-flagged spw loses more than this
	// many antennas over the combined-solve baseline, per-spw solving is
	// abandoned entirely.
	combineSpwCutoff = 2.0

	// spwMapCutoff: a spw whose flagged-antenna excess over the least-flagged
	// spw exceeds this is individually remapped.
	spwMapCutoff = 1.0
)

// #endregion constants

// #region analyze

// AnalyzeInfEB decides whether an inf_EB per-spw gain solve suffered a
// flagging deficiency that should be worked around. perSpw comes from the
// per-spw solve, combined from the parallel combine="scan,spw" probe solve
// (one entry, the global solution). Deterministic: same statistics in, same
// spwmap out, with the fewest-flags-then-widest-bandwidth tie-break.
func AnalyzeInfEB(perSpw []SpwStats, combinedFlagged float64) (Decision, error) {
	if len(perSpw) == 0 {
		return Decision{}, fmt.Errorf("analyze inf_EB flagging: no spw statistics")
	}

	stats := append([]SpwStats(nil), perSpw...)
	sort.Slice(stats, func(i, j int) bool { return stats[i].SpwID < stats[j].SpwID })

	// Flagged counts adjusted against the combined-solve baseline: antennas
	// the combined solve also lost are not a per-spw deficiency.
	adjusted := make([]float64, len(stats))
	minAdjusted := stats[0].FlaggedSolns - combinedFlagged
	for i, s := range stats {
		adjusted[i] = s.FlaggedSolns - combinedFlagged
		if adjusted[i] < minAdjusted {
			minAdjusted = adjusted[i]
		}
	}

	identity := identityMap(stats)

	// Even the best spw is badly flagged: combine them all.
	if minAdjusted > combineSpwCutoff {
		return Decision{Mode: FallbackCombineSpw, DonorIndex: -1, Mapped: allTrue(len(stats)), ApplycalSpwMap: identity}, nil
	}

	// Mark individually deficient spws for remapping.
	mapped := make([]bool, len(stats))
	for i := range stats {
		if adjusted[i]-minAdjusted > spwMapCutoff {
			mapped[i] = true
		}
	}

	// A deficient spw drags down comparable-or-narrower windows with it:
	// borrowing into a narrow low-S/N window is worse than remapping it too.
	for i := range stats {
		if !mapped[i] {
			continue
		}
		for j := range stats {
			if !mapped[j] && stats[j].EffectiveBWHz <= stats[i].EffectiveBWHz {
				mapped[j] = true
			}
		}
	}

	if none(mapped) {
		return Decision{Mode: FallbackNone, DonorIndex: -1, Mapped: mapped, ApplycalSpwMap: identity}, nil
	}
	if all(mapped) {
		return Decision{Mode: FallbackCombineSpw, DonorIndex: -1, Mapped: mapped, ApplycalSpwMap: identity}, nil
	}

	donor := pickDonor(stats, mapped)
	spwmap := identityMap(stats)
	for i := range stats {
		if mapped[i] {
			spwmap[stats[i].SpwID] = stats[donor].SpwID
		}
	}

	return Decision{Mode: FallbackSpwMap, DonorIndex: donor, Mapped: mapped, ApplycalSpwMap: spwmap}, nil
}

// #endregion analyze

// #region donor

// pickDonor selects the spw whose solution the mapped windows borrow:
// fewest flagged solutions first, widest effective bandwidth breaking ties.
// The order of the two criteria is load-bearing for regression outputs.
func pickDonor(stats []SpwStats, mapped []bool) int {
	best := -1
	for i := range stats {
		if mapped[i] {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		switch {
		case stats[i].FlaggedSolns < stats[best].FlaggedSolns:
			best = i
		case stats[i].FlaggedSolns == stats[best].FlaggedSolns &&
			stats[i].EffectiveBWHz > stats[best].EffectiveBWHz:
			best = i
		}
	}
	return best
}

// #endregion donor

// #region helpers

// identityMap builds the applycal spwmap covering 0..maxSpwID.
func identityMap(stats []SpwStats) []int {
	maxID := 0
	for _, s := range stats {
		if s.SpwID > maxID {
			maxID = s.SpwID
		}
	}
	m := make([]int, maxID+1)
	for i := range m {
		m[i] = i
	}
	return m
}

func allTrue(n int) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = true
	}
	return b
}

func none(b []bool) bool {
	for _, v := range b {
		if v {
			return false
		}
	}
	return true
}

func all(b []bool) bool {
	for _, v := range b {
		if !v {
			return false
		}
	}
	return true
}

// #endregion helpers
