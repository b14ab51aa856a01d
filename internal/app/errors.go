package app

import "fmt"

// PipelineErrorCode enumerates the failure classes of a planning run.
type PipelineErrorCode string

const (
	// ErrInvalidProfile: the request profile failed validation. Rejected
	// before synthesis ever starts; never retried.
	ErrInvalidProfile PipelineErrorCode = "INVALID_PROFILE"

	// ErrRetrievalUnavailable: a backing store could not be read. The run
	// continues with an empty retrieval context; this code only appears in
	// logs, never as a terminal error.
	ErrRetrievalUnavailable PipelineErrorCode = "RETRIEVAL_UNAVAILABLE"

	// ErrSynthesisFailed / ErrEvaluationFailed: a refinement collaborator
	// failed. The run aborts immediately with the iteration attached.
	ErrSynthesisFailed  PipelineErrorCode = "SYNTHESIS_FAILED"
	ErrEvaluationFailed PipelineErrorCode = "EVALUATION_FAILED"
)

// PipelineError is a typed planning failure. Iteration is the refinement
// iteration at which the failure occurred (0 if before the loop).
type PipelineError struct {
	Code      PipelineErrorCode
	Message   string
	Iteration int
	Err       error
}

func (e *PipelineError) Error() string {
	if e.Iteration > 0 {
		return fmt.Sprintf("%s (iteration %d): %s", e.Code, e.Iteration, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
