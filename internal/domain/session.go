package domain

// Step is one position in the form sequence
type Step int

const (
	StepName Step = iota
	StepPhone
	StepUsername
	StepExtraPhone
	StepBrandModel
	StepExterior
	StepInterior
	StepPackage
	StepBudget
	StepYear
	StepWishes
	StepDone

	// StepAwaitingAdminReply is entered only by an operator composing
	// a direct message to a user; it is not part of the form.
	StepAwaitingAdminReply
)

// Next returns the successor step in the form order
func (s Step) Next() Step {
	if s >= StepDone {
		return StepDone
	}
	return s + 1
}

// Answer keys, shared by the form engine, the repository and the mirror
const (
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldUsername   = "username"
	FieldExtraPhone = "extra_phone"
	FieldBrandModel = "brand_model"
	FieldExterior   = "exterior"
	FieldInterior   = "interior"
	FieldPackage    = "package"
	FieldBudget     = "budget"
	FieldYear       = "year"
	FieldWishes     = "wishes"
)

// Session holds a user's transient conversation state.
// A session exists only while the user is mid-form, or while an
// operator is composing a direct message.
type Session struct {
	UserID  int64
	Step    Step
	Answers map[string]string

	// TargetUserID is set only in StepAwaitingAdminReply
	TargetUserID int64
}

// NewSession creates a session positioned at the first form step
func NewSession(userID int64) *Session {
	return &Session{
		UserID:  userID,
		Step:    StepName,
		Answers: make(map[string]string),
	}
}
