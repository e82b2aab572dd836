// Package form drives the linear car request questionnaire.
package form

import (
	"github.com/drigmma/zabugorn/internal/domain"
)

// Kind selects the validator used for a field's answers
type Kind int

const (
	KindName Kind = iota
	KindPhone
	KindOptionalPhone
	KindText
	KindOptionalText
)

// FieldSpec describes one form step: the answer key it fills, the
// prompt sent when the step is entered and how answers are validated.
type FieldSpec struct {
	Step   domain.Step
	Key    string
	Prompt string
	Kind   Kind
}

// fields is the complete form in traversal order
var fields = []FieldSpec{
	{domain.StepName, domain.FieldName, "Начнём заполнение анкеты. Введите ФИО:", KindName},
	{domain.StepPhone, domain.FieldPhone, "Номер телефона (в международном формате, например +7...):", KindPhone},
	{domain.StepUsername, domain.FieldUsername, "Username в Telegram (если есть), или напишите '-':", KindOptionalText},
	{domain.StepExtraPhone, domain.FieldExtraPhone, "Дополнительный номер телефона (если есть), или '-':", KindOptionalPhone},
	{domain.StepBrandModel, domain.FieldBrandModel, "Марка/модель автомобиля:", KindText},
	{domain.StepExterior, domain.FieldExterior, "Экстерьер (коротко):", KindText},
	{domain.StepInterior, domain.FieldInterior, "Интерьер (коротко):", KindText},
	{domain.StepPackage, domain.FieldPackage, "Комплектация/пакет (коротко):", KindText},
	{domain.StepBudget, domain.FieldBudget, "Бюджет (со включенной логистикой/растаможкой):", KindText},
	{domain.StepYear, domain.FieldYear, "Год выпуска:", KindText},
	{domain.StepWishes, domain.FieldWishes, "Пожелания/комментарии (если есть), или '-':", KindOptionalText},
}

// Spec returns the field spec for a form step
func Spec(step domain.Step) (FieldSpec, bool) {
	for _, f := range fields {
		if f.Step == step {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// StartPrompt is the prompt for the first form step
func StartPrompt() string {
	return fields[0].Prompt
}
