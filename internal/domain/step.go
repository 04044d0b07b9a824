package domain

// Step is the client-facing onboarding phase derived from a merchant record.
// It is a closed set; every surface (HTTP API, SDK, CLI) derives it through
// DeriveStep so the mapping exists in exactly one place.
type Step string

const (
	StepRegister Step = "register"
	StepKYC      Step = "kyc"
	StepPSP      Step = "psp"
	StepComplete Step = "complete"

	// StepInconsistent flags a record whose fields contradict each other
	// (psp_connected without an approved KYC). It is surfaced to operators
	// instead of being rendered as complete.
	StepInconsistent Step = "inconsistent"
)

// StatusProjection is the minimal view of a record needed to derive a step.
// Fields mirror the status endpoint response; KYCStatus keeps the raw wire
// value so an unrecognized server extension degrades predictably.
type StatusProjection struct {
	KYCStatus    KYCStatus
	PSPConnected bool
}

// DeriveStep maps a record projection to its onboarding step. It is total:
// a nil record means no registration happened yet, and an unknown KYC status
// on an existing record maps to StepKYC rather than StepRegister, because
// re-registering would mint a duplicate merchant.
func DeriveStep(rec *StatusProjection) Step {
	if rec == nil {
		return StepRegister
	}
	if rec.PSPConnected {
		if rec.KYCStatus != KYCApproved {
			return StepInconsistent
		}
		return StepComplete
	}
	switch rec.KYCStatus {
	case KYCApproved:
		return StepPSP
	case KYCPending:
		return StepKYC
	case KYCRejected, "":
		return StepRegister
	default:
		return StepKYC
	}
}

// stepOrder positions steps along the expected monotonic progression.
// StepInconsistent sits outside the progression and never orders.
var stepOrder = map[Step]int{
	StepRegister: 0,
	StepKYC:      1,
	StepPSP:      2,
	StepComplete: 3,
}

// Before reports whether s precedes other in the onboarding progression.
// Either side being StepInconsistent yields false.
func (s Step) Before(other Step) bool {
	a, ok1 := stepOrder[s]
	b, ok2 := stepOrder[other]
	return ok1 && ok2 && a < b
}

// Terminal reports whether no further client action can advance the step.
func (s Step) Terminal() bool {
	return s == StepComplete || s == StepInconsistent
}
