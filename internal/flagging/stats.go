package flagging

// #region imports
import "sort"

// #endregion imports

// #region solution-row

// SolutionRow is one antenna gain solution read from a calibration table.
type SolutionRow struct {
	SpwID   int
	Antenna string
	Flagged bool
}

// #endregion solution-row

// #region per-spw-stats

// PerSpwStats tallies flagged and unflagged solutions per spectral window
// from raw calibration-table rows. effBWHz supplies each window's effective
// bandwidth; windows absent from it get zero bandwidth and lose every
// donor tie-break.
func PerSpwStats(rows []SolutionRow, effBWHz map[int]float64) []SpwStats {
	bySpw := make(map[int]*SpwStats)
	for _, r := range rows {
		s, ok := bySpw[r.SpwID]
		if !ok {
			s = &SpwStats{SpwID: r.SpwID, EffectiveBWHz: effBWHz[r.SpwID]}
			bySpw[r.SpwID] = s
		}
		if r.Flagged {
			s.FlaggedSolns++
		} else {
			s.UnflaggedSolns++
		}
	}

	out := make([]SpwStats, 0, len(bySpw))
	for _, s := range bySpw {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpwID < out[j].SpwID })
	return out
}

// TotalFlagged sums flagged solutions across windows. Used for the
// combine="scan,spw" probe table, which carries a single merged window.
func TotalFlagged(rows []SolutionRow) float64 {
	var n float64
	for _, r := range rows {
		if r.Flagged {
			n++
		}
	}
	return n
}

// #endregion per-spw-stats
