package solint

// #region imports
import "fmt"

// #endregion imports

// #region kind

// Kind enumerates the solution-interval granularities.
type Kind int

const (
	// KindInfEB combines the entire execution block into one solution.
	KindInfEB Kind = iota
	// KindInf combines one full scan per solution.
	KindInf
	// KindDuration is an explicit duration, an integer multiple of the
	// visibility integration time.
	KindDuration
	// KindInt solves per integration.
	KindInt
)

// #endregion kind

// #region interval

// Interval is one rung of the solution-interval ladder.
type Interval struct {
	Kind      Kind
	Seconds   float64 // only meaningful for KindDuration
	Amplitude bool    // amplitude+phase solve instead of phase-only
}

// InfEB returns the whole-execution-block interval.
func InfEB() Interval { return Interval{Kind: KindInfEB} }

// Inf returns the per-scan interval.
func Inf() Interval { return Interval{Kind: KindInf} }

// Duration returns an explicit phase-only interval of the given length.
func Duration(seconds float64) Interval {
	return Interval{Kind: KindDuration, Seconds: seconds}
}

// AmpDuration returns an explicit amplitude-selfcal interval.
func AmpDuration(seconds float64) Interval {
	return Interval{Kind: KindDuration, Seconds: seconds, Amplitude: true}
}

// AmpInf returns the per-scan amplitude-selfcal interval.
func AmpInf() Interval { return Interval{Kind: KindInf, Amplitude: true} }

// Tag renders the interval in the gaincal solint vocabulary:
// "inf_EB", "inf", "45.23s", "int", "inf_ap", "300s_ap".
func (iv Interval) Tag() string {
	switch iv.Kind {
	case KindInfEB:
		return "inf_EB"
	case KindInf:
		if iv.Amplitude {
			return "inf_ap"
		}
		return "inf"
	case KindDuration:
		if iv.Amplitude {
			return fmt.Sprintf("%gs_ap", iv.Seconds)
		}
		return fmt.Sprintf("%.2fs", iv.Seconds)
	default:
		if iv.Amplitude {
			return "int_ap"
		}
		return "int"
	}
}

// GaincalSolint is the value passed to the gaincal solint parameter:
// the bare duration without EB/amplitude decoration.
func (iv Interval) GaincalSolint() string {
	switch iv.Kind {
	case KindInfEB, KindInf:
		return "inf"
	case KindDuration:
		return fmt.Sprintf("%.2fs", iv.Seconds)
	default:
		return "int"
	}
}

// Solmode returns "ap" for amplitude intervals and "p" otherwise.
func (iv Interval) Solmode() string {
	if iv.Amplitude {
		return "ap"
	}
	return "p"
}

// #endregion interval

// #region entry

// Entry pairs an interval with the gain-table combination policy used when
// solving it.
type Entry struct {
	Interval Interval
	Combine  string // gaincal combine parameter: "scan,spw", "spw", "scan", or ""
}

// #endregion entry

// #region ladder

// Ladder is the ordered list of trial solution intervals for one
// (target, band) pair, coarsest first.
type Ladder struct {
	Entries         []Entry
	IntegrationTime float64 // seconds
}

// Tags returns the solint vocabulary tags in ladder order.
func (l Ladder) Tags() []string {
	tags := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		tags[i] = e.Interval.Tag()
	}
	return tags
}

// PhaseCount returns the number of phase-only rungs.
func (l Ladder) PhaseCount() int {
	n := 0
	for _, e := range l.Entries {
		if !e.Interval.Amplitude {
			n++
		}
	}
	return n
}

// FirstAmplitudeIndex returns the index of the first amplitude rung, or -1.
func (l Ladder) FirstAmplitudeIndex() int {
	for i, e := range l.Entries {
		if e.Interval.Amplitude {
			return i
		}
	}
	return -1
}

// #endregion ladder

// #region timing

// ScanTiming describes the observed scan structure of one visibility file
// for one target: per-scan durations, start/end times, and integration times.
// Times are in seconds (MJD seconds for Starts/Ends).
type ScanTiming struct {
	Durations        []float64
	Starts           []float64
	Ends             []float64
	IntegrationTimes []float64
}

// #endregion timing
