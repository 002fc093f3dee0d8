package selfcal

// #region loop-signal

// LoopAction tells the driving loop what to do after one interval.
type LoopAction int

const (
	// ActionContinue proceeds to the next interval.
	ActionContinue LoopAction = iota
	// ActionJump skips ahead to a specific interval index (the amplitude
	// sub-ladder after a phase-only success).
	ActionJump
	// ActionTerminate ends the per-(target, band) loop.
	ActionTerminate
)

// LoopSignal is the explicit state-machine transition returned by the loop
// body and consumed by the driver, replacing mutation of a shared loop
// counter.
type LoopSignal struct {
	Action LoopAction
	Index  int    // target index for ActionJump
	Reason string // Stop_Reason for ActionTerminate
}

func signalContinue() LoopSignal          { return LoopSignal{Action: ActionContinue} }
func signalJump(idx int) LoopSignal       { return LoopSignal{Action: ActionJump, Index: idx} }
func signalTerminate(reason string) LoopSignal {
	return LoopSignal{Action: ActionTerminate, Reason: reason}
}

// #endregion loop-signal
