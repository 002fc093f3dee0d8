package selfcal

// #region imports
import (
	"context"
	"fmt"

	"github.com/r-xue/auto-selfcal/internal/casa"
)

// #endregion imports

// #region checkpoint

// Checkpoint captures the last known-good calibration and flagging state of
// one (target, band) before an interval is attempted. Restore is the only
// path back to that state: it re-establishes the flag version and either
// re-applies the recorded gain chain or clears calibration entirely.
type Checkpoint struct {
	Target      string
	FlagVersion string
	Spw         map[string]string // per-vis spw selection
	Calibration map[string]VisCalibration
}

// TakeCheckpoint snapshots the current accepted calibration of a band state.
func TakeCheckpoint(st *BandState) Checkpoint {
	cp := Checkpoint{
		Target:      st.Target,
		FlagVersion: st.FlagVersion,
		Spw:         make(map[string]string, len(st.Facts.PerVis)),
		Calibration: make(map[string]VisCalibration, len(st.Calibration)),
	}
	for _, vf := range st.Facts.PerVis {
		cp.Spw[vf.Vis] = vf.SpwSelect
	}
	for vis, cal := range st.Calibration {
		gt := append([]string(nil), cal.Gaintables...)
		interp := append([]string(nil), cal.Interp...)
		maps := make([][]int, len(cal.SpwMaps))
		for i, m := range cal.SpwMaps {
			maps[i] = append([]int(nil), m...)
		}
		cp.Calibration[vis] = VisCalibration{
			Gaintables: gt,
			SpwMaps:    maps,
			Interp:     interp,
			ApplyMode:  cal.ApplyMode,
		}
	}
	return cp
}

// Restore rolls one visibility set back: restore starting flags, then
// re-apply the recorded chain, or clearcal when no iteration has ever been
// accepted. Idempotent: restoring twice leaves the same state.
func (cp Checkpoint) Restore(ctx context.Context, exec Executor) error {
	for vis := range cp.Spw {
		if err := exec.Flagmanager(ctx, vis, "restore", cp.FlagVersion); err != nil {
			return fmt.Errorf("restore flags for %s: %w", vis, err)
		}
	}
	for vis, spw := range cp.Spw {
		cal, ok := cp.Calibration[vis]
		if !ok || len(cal.Gaintables) == 0 {
			if err := exec.Clearcal(ctx, vis, cp.Target); err != nil {
				return fmt.Errorf("clearcal %s: %w", vis, err)
			}
			continue
		}
		err := exec.Applycal(ctx, casa.ApplycalParams{
			Vis:       vis,
			Field:     cp.Target,
			Spw:       spw,
			Gaintable: cal.Gaintables,
			Interp:    cal.Interp,
			SpwMaps:   cal.SpwMaps,
			ApplyMode: cal.ApplyMode,
			CalWt:     false,
		})
		if err != nil {
			return fmt.Errorf("reapply calibration for %s: %w", vis, err)
		}
	}
	return nil
}

// #endregion checkpoint
