package form

import (
	"github.com/drigmma/zabugorn/internal/config"
	"github.com/drigmma/zabugorn/internal/domain"
	"github.com/drigmma/zabugorn/internal/validate"
)

// Engine applies one answer to a session and produces the reply to
// send. It never touches the transport or the session store.
type Engine struct {
	phone config.PhoneConfig
}

// NewEngine creates a form engine
func NewEngine(phone config.PhoneConfig) *Engine {
	return &Engine{phone: phone}
}

// Result is the outcome of applying one answer
type Result struct {
	// Reply is the text to send back: the next prompt on acceptance,
	// the rejection reason otherwise.
	Reply string

	// Rejected means the answer was not recorded and the step did not
	// advance.
	Rejected bool

	// Done means the form is complete; Answers holds all fields.
	Done    bool
	Answers map[string]string
}

// Advance validates input against the session's current step. Accepted
// answers are recorded and the session moves to the next step; rejected
// input leaves the session untouched.
func (e *Engine) Advance(sess *domain.Session, input string) Result {
	spec, ok := Spec(sess.Step)
	if !ok {
		return Result{Reply: "Пожалуйста, используйте клавиатуру.", Rejected: true}
	}

	value, err := e.validateField(spec.Kind, input)
	if err != nil {
		return Result{Reply: err.Error(), Rejected: true}
	}

	sess.Answers[spec.Key] = value
	sess.Step = sess.Step.Next()

	if sess.Step == domain.StepDone {
		return Result{Done: true, Answers: sess.Answers}
	}

	next, _ := Spec(sess.Step)
	return Result{Reply: next.Prompt}
}

func (e *Engine) validateField(kind Kind, input string) (string, error) {
	switch kind {
	case KindName:
		return validate.FullName(input)
	case KindPhone:
		return validate.Phone(input, e.phone)
	case KindOptionalPhone:
		if validate.IsSkip(input) {
			return "", nil
		}
		return validate.Phone(input, e.phone)
	case KindOptionalText:
		if validate.IsSkip(input) {
			return "", nil
		}
		return validate.FreeText(input)
	default:
		return validate.FreeText(input)
	}
}
