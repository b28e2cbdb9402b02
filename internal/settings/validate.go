package settings

import "fmt"

// ValidationError is a single failed check on a settings payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProctoringState carries everything the proctoring validation rules inspect.
// Requested values are nil when the field is absent from the payload (which
// happens both when it was not edited and when it is excluded for the caller).
type ProctoringState struct {
	CurrentProvider          string
	RequestedProvider        *string
	CurrentEscalationEmail   string
	RequestedEscalationEmail *string
	CourseStarted            bool
	Staff                    bool
	SupportEmail             string
}

// providerChanged reports whether the payload actually requests a different
// proctoring provider. An absent requested provider is never a change.
func (st ProctoringState) providerChanged() bool {
	return st.RequestedProvider != nil && *st.RequestedProvider != st.CurrentProvider
}

// effectiveEscalationEmail is the escalation contact after the update would apply.
func (st ProctoringState) effectiveEscalationEmail() string {
	if st.RequestedEscalationEmail != nil {
		return *st.RequestedEscalationEmail
	}
	return st.CurrentEscalationEmail
}

// ValidateProctoring applies the proctoring business rules and returns all
// violations found.
func ValidateProctoring(st ProctoringState) []ValidationError {
	var errs []ValidationError

	// Non-staff may not switch providers once the course has started.
	if !st.Staff && st.providerChanged() && st.CourseStarted {
		errs = append(errs, ValidationError{
			Field: "proctoring_provider",
			Message: fmt.Sprintf(
				"The proctoring provider cannot be modified after a course has started. Contact %s for assistance",
				st.SupportEmail,
			),
		})
	}

	missingEscalationMsg := func(provider string) string {
		return fmt.Sprintf("Provider '%s' requires an exam escalation contact.", provider)
	}

	// Selecting proctortrack requires an escalation contact.
	if st.RequestedProvider != nil && *st.RequestedProvider == ProctortrackBackend {
		if st.effectiveEscalationEmail() == "" {
			errs = append(errs, ValidationError{
				Field:   "proctoring_provider",
				Message: missingEscalationMsg(*st.RequestedProvider),
			})
		}
	}

	// Clearing the escalation contact while proctortrack stays the provider.
	if st.RequestedEscalationEmail != nil && st.RequestedProvider == nil &&
		st.CurrentProvider == ProctortrackBackend {
		if st.effectiveEscalationEmail() == "" {
			errs = append(errs, ValidationError{
				Field:   "proctoring_escalation_email",
				Message: missingEscalationMsg(st.CurrentProvider),
			})
		}
	}

	return errs
}
