package agent

// MaxConsecutiveTimeouts bounds how many LLM turns in a row may time out
// before the generation loop gives up on the attempt.
const MaxConsecutiveTimeouts = 2

// IterationState carries the loop bookkeeping the controller threads through
// a generation run: which turn it is on and how the last LLM interaction
// ended.
type IterationState struct {
	CurrentIteration           int
	MaxIterations              int
	LastInteractionFailed      bool
	LastErrorMessage           string
	ConsecutiveTimeoutFailures int
}

// ShouldAbortOnTimeouts reports whether the timeout streak has hit the cap.
func (s *IterationState) ShouldAbortOnTimeouts() bool {
	return s.ConsecutiveTimeoutFailures >= MaxConsecutiveTimeouts
}

// RecordSuccess clears failure state after a completed LLM turn.
func (s *IterationState) RecordSuccess() {
	s.LastInteractionFailed = false
	s.LastErrorMessage = ""
	s.ConsecutiveTimeoutFailures = 0
}

// RecordFailure notes a failed turn. Only timeouts extend the streak; any
// other failure resets it so transient model errors do not accumulate.
func (s *IterationState) RecordFailure(errMsg string, isTimeout bool) {
	s.LastInteractionFailed = true
	s.LastErrorMessage = errMsg
	if isTimeout {
		s.ConsecutiveTimeoutFailures++
	} else {
		s.ConsecutiveTimeoutFailures = 0
	}
}
