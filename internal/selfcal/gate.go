package selfcal

// #region imports
import "fmt"

// #endregion imports

// #region constants

// Tuned acceptance constants from the reference heuristics.
const (
	// rmsRegressionCap: post/pre RMS ratios under this count as "no
	// meaningful noise regression".
	rmsRegressionCap = 1.05

	// rmsOverrideSNR: an RMS regression is forgiven when the interval's
	// pre-estimated solution SNR exceeds this.
	rmsOverrideSNR = 5.0

	// marginalSNRBand: inf_EB may lose up to this fraction of SNR and still
	// be provisionally accepted; its job is bulk phase alignment, not
	// noise improvement.
	marginalSNRBand = 0.02
)

// #endregion constants

// #region observation

// Observation bundles everything the acceptance gate sees for one interval.
type Observation struct {
	Solint string
	IsInfEB bool

	SNRPre    float64
	SNRPost   float64
	SNRNFPre  float64
	SNRNFPost float64
	RMSPre    float64
	RMSPost   float64
	RMSNFPre  float64
	RMSNFPost float64

	// DeltaBeamArea is the fractional beam-area change against the first
	// accepted iteration's beam.
	DeltaBeamArea float64

	// EstimatedSNR is the pre-extrapolated solution SNR for this interval;
	// EstimatedSNRNext for the next planned one.
	EstimatedSNR     float64
	EstimatedSNRNext float64
}

// Verdict is the gate output.
type Verdict struct {
	Accept   bool
	Marginal bool // accepted only through the inf_EB carve-out
	Reason   string
}

// #endregion observation

// #region gate-config

// GateConfig holds the acceptance thresholds.
type GateConfig struct {
	DeltaBeamThresh float64
	MinSNRToProceed float64
}

// DefaultGateConfig returns the reference thresholds.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		DeltaBeamThresh: 0.05,
		MinSNRToProceed: 3.0,
	}
}

// #endregion gate-config

// #region evaluate

// Evaluate applies the acceptance criterion to one interval's before/after
// statistics. The exact structure is load-bearing for regression
// correctness; see the package tests for the pinned boundary cases.
func Evaluate(obs Observation, cfg GateConfig) Verdict {
	rmsRatio := obs.RMSPost / obs.RMSPre
	rmsNFRatio := obs.RMSNFPost / obs.RMSNFPre

	rmsOK := (rmsRatio < rmsRegressionCap && rmsNFRatio < rmsRegressionCap) ||
		((rmsRatio > rmsRegressionCap || rmsNFRatio > rmsRegressionCap) && obs.EstimatedSNR > rmsOverrideSNR)

	beamOK := obs.DeltaBeamArea < cfg.DeltaBeamThresh
	snrImproved := obs.SNRPost >= obs.SNRPre && obs.SNRNFPost >= obs.SNRNFPre

	snrChange := change(obs.SNRPre, obs.SNRPost)
	snrNFChange := change(obs.SNRNFPre, obs.SNRNFPost)

	// inf_EB alone may show a small SNR decrease and still pass, provided
	// the next interval is still worth attempting.
	marginalNextOK := obs.IsInfEB && beamOK &&
		snrChange > -marginalSNRBand && snrChange <= 0 &&
		obs.EstimatedSNRNext > cfg.MinSNRToProceed

	if rmsOK && snrImproved && beamOK {
		return Verdict{Accept: true, Reason: "SNR and noise floor improved"}
	}
	if rmsOK && marginalNextOK && snrNFChange > -marginalSNRBand && beamOK {
		return Verdict{
			Accept:   true,
			Marginal: true,
			Reason:   fmt.Sprintf("marginal inf_EB acceptance: SNR change %.2f%%", snrChange*100),
		}
	}

	switch {
	case !rmsOK:
		return Verdict{Reason: fmt.Sprintf("RMS regression: image %.3fx, near-field %.3fx", rmsRatio, rmsNFRatio)}
	case !beamOK:
		return Verdict{Reason: fmt.Sprintf("beam area changed by %.1f%% (threshold %.1f%%)", obs.DeltaBeamArea*100, cfg.DeltaBeamThresh*100)}
	default:
		return Verdict{Reason: fmt.Sprintf("SNR decreased: image %.2f%%, near-field %.2f%%", snrChange*100, snrNFChange*100)}
	}
}

// change returns the fractional change from pre to post.
func change(pre, post float64) float64 {
	if pre == 0 {
		return 0
	}
	return (post - pre) / pre
}

// #endregion evaluate
