package domain

// OutcomeStatus tags the result of one module's compilation attempt.
type OutcomeStatus int

const (
	// StatusSuccess means an artifact was produced (or confirmed).
	StatusSuccess OutcomeStatus = iota + 1
	// StatusSkipped means compilation was not needed: the module was already
	// compiled, or the active execution engine makes compilation redundant.
	StatusSkipped
	// StatusFailed means the module could not be compiled.
	StatusFailed
)

// Outcome is the tagged result of one module per batch run. It is produced
// exactly once; the batch never retries a module.
type Outcome struct {
	Status       OutcomeStatus
	ArtifactPath string
	// Reason explains a skip in human terms.
	Reason string
	// Cause carries the original failure; never wrapped by the batch layer.
	Cause error
}

// SuccessOutcome builds a success result pointing at the artifact.
func SuccessOutcome(artifactPath string) Outcome {
	return Outcome{Status: StatusSuccess, ArtifactPath: artifactPath}
}

// SkippedOutcome builds a skip result. Skips count as success at the batch
// level.
func SkippedOutcome(artifactPath, reason string) Outcome {
	return Outcome{Status: StatusSkipped, ArtifactPath: artifactPath, Reason: reason}
}

// FailedOutcome builds a failure result carrying the original cause.
func FailedOutcome(cause error) Outcome {
	return Outcome{Status: StatusFailed, Cause: cause}
}

// OK reports whether the outcome counts as success for batch purposes.
func (o Outcome) OK() bool {
	return o.Status != StatusFailed
}
