package store

import "time"

// #region run-row
// RunRow is one optimizer invocation.
type RunRow struct {
	RunID     string
	Vis       []string
	StartedAt time.Time
}

// #endregion run-row

// #region band-row
// BandRow is the persisted outcome of one (target, band) optimization.
type BandRow struct {
	RunID  string
	Target string
	Band   string

	SCSuccess        bool
	FinalSolint      string
	FinalSolintMode  string
	FinalPhaseSolint string
	StopReason       string
	NTerms           int

	SNROrig    float64
	SNRFinal   float64
	SNRNFOrig  float64
	SNRNFFinal float64
	RMSOrig    float64
	RMSFinal   float64
	RMSNFOrig  float64
	RMSNFFinal float64

	IntfluxOrig  float64
	IntfluxFinal float64

	DRCorrection  float64
	NSigmaInitial float64
	UpdatedAt     time.Time
}

// #endregion band-row

// #region attempt-row
// AttemptRow is the persisted record of one solution-interval trial.
// Attempts are append-only; the UNIQUE(run, target, band, solint) constraint
// enforces the write-once rule at the storage layer too.
type AttemptRow struct {
	RunID  string
	Target string
	Band   string
	Solint string

	Solmode   string
	ImageName string
	NTerms    int
	NSigma    float64
	Threshold float64

	SNRPre    float64
	SNRPost   float64
	SNRNFPre  float64
	SNRNFPost float64
	RMSPre    float64
	RMSPost   float64
	RMSNFPre  float64
	RMSNFPost float64

	Pass       bool
	FailReason string
	CreatedAt  time.Time
}

// #endregion attempt-row

// #region decision-row
// DecisionRow is one accept/reject event, in arrival order.
type DecisionRow struct {
	RunID     string
	Target    string
	Band      string
	Solint    string
	Decision  string // "accept" | "reject"
	Reason    string
	CreatedAt time.Time
}

// #endregion decision-row
