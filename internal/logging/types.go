package logging

import "time"

// #region eval-entry
// EvalEntry is a single row in the eval_log table.
type EvalEntry struct {
	RunID      string
	Target     string
	Band       string
	Solint     string
	Decision   string // "accept" | "reject"
	Reason     string
	RecordJSON string
	CreatedAt  time.Time
}

// #endregion eval-entry

// #region attempt-record
// AttemptRecord captures the complete acceptance-gate inputs and outputs for
// a single solution interval. Serialized as JSON into eval_log.record_json
// so a past decision can be re-derived offline with full fidelity.
type AttemptRecord struct {
	Solint    string `json:"solint"`
	Solmode   string `json:"solmode"`
	ImageName string `json:"image_name"`

	// Imaging depth active at decision time
	NSigma      float64 `json:"nsigma"`
	ThresholdJy float64 `json:"threshold_jy"`

	// Exact statistics as evaluated at runtime
	SNRPre    float64 `json:"snr_pre"`
	SNRPost   float64 `json:"snr_post"`
	SNRNFPre  float64 `json:"snr_nf_pre"`
	SNRNFPost float64 `json:"snr_nf_post"`
	RMSPre    float64 `json:"rms_pre"`
	RMSPost   float64 `json:"rms_post"`
	RMSNFPre  float64 `json:"rms_nf_pre"`
	RMSNFPost float64 `json:"rms_nf_post"`

	// Beam state on both sides of the solve
	BeamPre  BeamRecord `json:"beam_pre"`
	BeamPost BeamRecord `json:"beam_post"`

	IntfluxPre  float64 `json:"intflux_pre"`
	IntfluxPost float64 `json:"intflux_post"`

	// Per-visibility calibration chains applied by this attempt
	PerVis map[string]CalRecord `json:"per_vis,omitempty"`

	// Gate output
	Pass       bool   `json:"pass"`
	FailReason string `json:"fail_reason,omitempty"`
}

// BeamRecord is the JSON shape of a restoring beam.
type BeamRecord struct {
	MajorArcsec float64 `json:"major_arcsec"`
	MinorArcsec float64 `json:"minor_arcsec"`
	PosAngleDeg float64 `json:"pos_angle_deg"`
}

// CalRecord is the JSON shape of one visibility's calibration chain.
type CalRecord struct {
	Gaintables []string `json:"gaintables"`
	SpwMaps    [][]int  `json:"spwmaps,omitempty"`
	Interp     []string `json:"interp,omitempty"`
	ApplyMode  string   `json:"applymode,omitempty"`
}

// #endregion attempt-record
