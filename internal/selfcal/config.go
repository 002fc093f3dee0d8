package selfcal

// #region imports
import (
	"github.com/r-xue/auto-selfcal/internal/sensitivity"
	"github.com/r-xue/auto-selfcal/internal/solint"
)

// #endregion imports

// #region config

// Config holds the run-level knobs of the optimizer.
type Config struct {
	Telescope sensitivity.Telescope

	Gate    GateConfig
	Planner solint.PlannerConfig

	// RelThreshScaling selects the clean-depth decay: "log10", "loglinear",
	// or "linear".
	RelThreshScaling string

	Refant        string
	Robust        float64
	UVRange       string
	ApplyMode     string // "calflag" or "calonly"
	GaincalMinSNR float64

	Parallel     bool
	CheckAllSpws bool
}

// DefaultConfig returns the reference parameters for a 12m ALMA run.
func DefaultConfig() Config {
	return Config{
		Telescope:        sensitivity.TelescopeALMA,
		Gate:             DefaultGateConfig(),
		Planner:          DefaultPlannerConfig(),
		RelThreshScaling: "log10",
		Robust:           0.5,
		ApplyMode:        "calflag",
		GaincalMinSNR:    3.0,
	}
}

// DefaultPlannerConfig re-exports the planner defaults so callers configure
// everything through one package.
func DefaultPlannerConfig() solint.PlannerConfig {
	return solint.DefaultPlannerConfig()
}

// #endregion config

// #region recorder

// Recorder receives decisions and attempt records as they happen and serves
// the resume fast path from a previous run's accepted products. A nil
// Recorder disables both.
type Recorder interface {
	RecordDecision(target, band, solint, decision, reason string) error
	PriorAccepted(target, band, solint string, nterms int) (imageName string, ok bool)
}

// #endregion recorder
