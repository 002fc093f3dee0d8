package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
	"github.com/r-xue/auto-selfcal/internal/sensitivity"
)

// #endregion imports

// #region run-config

// RunConfig is the YAML shape of one optimizer invocation.
type RunConfig struct {
	// Vis lists the input visibility files, one per execution block.
	Vis []string `yaml:"vis"`

	DBPath   string `yaml:"db_path"`
	CasaAddr string `yaml:"casa_addr"`

	Telescope string `yaml:"telescope"` // "ALMA" | "ACA" | "VLA"

	Refant        string  `yaml:"refant"`
	Robust        float64 `yaml:"robust"`
	UVRange       string  `yaml:"uvrange"`
	ApplyMode     string  `yaml:"applymode"`
	GaincalMinSNR float64 `yaml:"gaincal_minsnr"`

	RelThreshScaling string `yaml:"rel_thresh_scaling"`

	NSolints         float64 `yaml:"n_solints"`
	AmplitudeSelfcal bool    `yaml:"amplitude_selfcal"`
	// SpwCombine is a pointer so an absent key keeps the default (enabled)
	// instead of silently disabling it.
	SpwCombine *bool `yaml:"spw_combine"`

	DeltaBeamThresh float64 `yaml:"delta_beam_thresh"`
	MinSNR          float64 `yaml:"minsnr_to_proceed"`

	Parallel     bool `yaml:"parallel"`
	CheckAllSpws bool `yaml:"check_all_spws"`
}

// #endregion run-config

// #region load

// Load reads a YAML run configuration, filling unset fields from the
// reference defaults.
func Load(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var rc RunConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RunConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := rc.Validate(); err != nil {
		return RunConfig{}, err
	}
	return rc, nil
}

// Validate rejects configurations the optimizer cannot run with.
func (rc RunConfig) Validate() error {
	if len(rc.Vis) == 0 {
		return fmt.Errorf("config: at least one visibility file is required")
	}
	switch rc.Telescope {
	case "", "ALMA", "ACA", "VLA":
	default:
		return fmt.Errorf("config: unknown telescope %q", rc.Telescope)
	}
	switch rc.RelThreshScaling {
	case "", "log10", "loglinear", "linear":
	default:
		return fmt.Errorf("config: unknown rel_thresh_scaling %q", rc.RelThreshScaling)
	}
	switch rc.ApplyMode {
	case "", "calflag", "calonly":
	default:
		return fmt.Errorf("config: unknown applymode %q", rc.ApplyMode)
	}
	return nil
}

// #endregion load

// #region to-selfcal

// ToSelfcal converts the YAML configuration to the optimizer's config,
// starting from the reference defaults.
func (rc RunConfig) ToSelfcal() selfcal.Config {
	cfg := selfcal.DefaultConfig()

	switch rc.Telescope {
	case "ACA":
		cfg.Telescope = sensitivity.TelescopeACA
	case "VLA":
		cfg.Telescope = sensitivity.TelescopeVLA
	case "ALMA":
		cfg.Telescope = sensitivity.TelescopeALMA
	}

	if rc.Refant != "" {
		cfg.Refant = rc.Refant
	}
	if rc.Robust != 0 {
		cfg.Robust = rc.Robust
	}
	if rc.UVRange != "" {
		cfg.UVRange = rc.UVRange
	}
	if rc.ApplyMode != "" {
		cfg.ApplyMode = rc.ApplyMode
	}
	if rc.GaincalMinSNR != 0 {
		cfg.GaincalMinSNR = rc.GaincalMinSNR
	}
	if rc.RelThreshScaling != "" {
		cfg.RelThreshScaling = rc.RelThreshScaling
	}
	if rc.NSolints != 0 {
		cfg.Planner.NSolints = rc.NSolints
	}
	cfg.Planner.AmplitudeSelfcal = rc.AmplitudeSelfcal
	if rc.SpwCombine != nil {
		cfg.Planner.SpwCombine = *rc.SpwCombine
	}

	if rc.DeltaBeamThresh != 0 {
		cfg.Gate.DeltaBeamThresh = rc.DeltaBeamThresh
	}
	if rc.MinSNR != 0 {
		cfg.Gate.MinSNRToProceed = rc.MinSNR
	}

	cfg.Parallel = rc.Parallel
	cfg.CheckAllSpws = rc.CheckAllSpws
	return cfg
}

// DBPathOr returns the configured database path or a fallback.
func (rc RunConfig) DBPathOr(fallback string) string {
	if rc.DBPath != "" {
		return rc.DBPath
	}
	return fallback
}

// CasaAddrOr returns the configured executor address or a fallback.
func (rc RunConfig) CasaAddrOr(fallback string) string {
	if rc.CasaAddr != "" {
		return rc.CasaAddr
	}
	return fallback
}

// #endregion to-selfcal
