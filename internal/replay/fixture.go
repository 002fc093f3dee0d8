package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/r-xue/auto-selfcal/internal/selfcal"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	StartFloors     FixtureFloors           `json:"start_floors"`
	Config          FixtureGateConfig       `json:"config"`
	Trials          []FixtureTrial          `json:"trials"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureFloors is the JSON-serializable starting noise state.
type FixtureFloors struct {
	RMS   float64 `json:"rms"`
	RMSNF float64 `json:"rms_nf"`
}

// FixtureTrial mirrors selfcal.Observation with JSON tags.
type FixtureTrial struct {
	Solint  string `json:"solint"`
	IsInfEB bool   `json:"is_inf_eb"`

	SNRPre    float64 `json:"snr_pre"`
	SNRPost   float64 `json:"snr_post"`
	SNRNFPre  float64 `json:"snr_nf_pre"`
	SNRNFPost float64 `json:"snr_nf_post"`
	RMSPre    float64 `json:"rms_pre"`
	RMSPost   float64 `json:"rms_post"`
	RMSNFPre  float64 `json:"rms_nf_pre"`
	RMSNFPost float64 `json:"rms_nf_post"`

	DeltaBeamArea    float64 `json:"delta_beam_area"`
	EstimatedSNR     float64 `json:"estimated_snr"`
	EstimatedSNRNext float64 `json:"estimated_snr_next"`
}

// FixtureExpectedResult captures the expected action per trial.
type FixtureExpectedResult struct {
	Solint string `json:"solint"`
	Action string `json:"action"`
}

// FixtureGateConfig mirrors selfcal.GateConfig with JSON tags.
type FixtureGateConfig struct {
	DeltaBeamThresh float64 `json:"delta_beam_thresh"`
	MinSNRToProceed float64 `json:"min_snr_to_proceed"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToFloors converts the fixture starting state to the domain type.
func (ff *FixtureFloors) ToFloors() Floors {
	return Floors{RMS: ff.RMS, RMSNF: ff.RMSNF}
}

// ToObservation converts a FixtureTrial to a domain Observation.
func (ft *FixtureTrial) ToObservation() selfcal.Observation {
	return selfcal.Observation{
		Solint:           ft.Solint,
		IsInfEB:          ft.IsInfEB,
		SNRPre:           ft.SNRPre,
		SNRPost:          ft.SNRPost,
		SNRNFPre:         ft.SNRNFPre,
		SNRNFPost:        ft.SNRNFPost,
		RMSPre:           ft.RMSPre,
		RMSPost:          ft.RMSPost,
		RMSNFPre:         ft.RMSNFPre,
		RMSNFPost:        ft.RMSNFPost,
		DeltaBeamArea:    ft.DeltaBeamArea,
		EstimatedSNR:     ft.EstimatedSNR,
		EstimatedSNRNext: ft.EstimatedSNRNext,
	}
}

// ToGateConfig converts a FixtureGateConfig to the domain config. Zero
// values fall back to the reference thresholds.
func (fc *FixtureGateConfig) ToGateConfig() selfcal.GateConfig {
	cfg := selfcal.DefaultGateConfig()
	if fc.DeltaBeamThresh != 0 {
		cfg.DeltaBeamThresh = fc.DeltaBeamThresh
	}
	if fc.MinSNRToProceed != 0 {
		cfg.MinSNRToProceed = fc.MinSNRToProceed
	}
	return cfg
}

// #endregion fixture-loader
