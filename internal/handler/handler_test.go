package handler

import (
	"testing"

	"github.com/drigmma/zabugorn/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCallbackID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{
			name:     "plain id",
			input:    "42",
			expected: 42,
		},
		{
			name:     "id with whitespace",
			input:    " 42 ",
			expected: 42,
		},
		{
			name:        "not a number",
			input:       "abc",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := callbackID(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestRequestFromAnswers(t *testing.T) {
	answers := map[string]string{
		domain.FieldName:       "Иванов Иван",
		domain.FieldPhone:      "+79991234567",
		domain.FieldUsername:   "@ivanov",
		domain.FieldExtraPhone: "",
		domain.FieldBrandModel: "BMW X5",
		domain.FieldExterior:   "черный",
		domain.FieldInterior:   "бежевая кожа",
		domain.FieldPackage:    "стандарт",
		domain.FieldBudget:     "5-7 млн",
		domain.FieldYear:       "2021",
		domain.FieldWishes:     "",
	}

	req := requestFromAnswers(123, answers)

	assert.Equal(t, int64(123), req.UserID)
	assert.Equal(t, "Иванов Иван", req.Name)
	// Skipped secondary phone is omitted, not delimited
	assert.Equal(t, "+79991234567", req.Phones)
	assert.Equal(t, "@ivanov", req.Username)
	assert.Equal(t, "BMW X5", req.BrandModel)
	assert.Equal(t, "", req.Wishes)
	assert.Equal(t, domain.StatusNew, req.Status)
}

func TestRequestFromAnswers_TwoPhones(t *testing.T) {
	answers := map[string]string{
		domain.FieldPhone:      "+79991234567",
		domain.FieldExtraPhone: "+79991112233",
	}

	req := requestFromAnswers(123, answers)

	assert.Equal(t, "+79991234567, +79991112233", req.Phones)
}

func TestRequestSummary(t *testing.T) {
	req := &domain.Request{
		ID:         42,
		Name:       "Иванов Иван",
		Phones:     "+79991234567",
		Username:   "@ivanov",
		BrandModel: "BMW X5",
		Exterior:   "черный",
		Interior:   "бежевая кожа",
		Package:    "стандарт",
		Budget:     "5-7 млн",
		Year:       "2021",
		Wishes:     "",
	}

	text := requestSummary(req)

	assert.Contains(t, text, "Новая заявка #42")
	assert.Contains(t, text, "ФИО: Иванов Иван")
	assert.Contains(t, text, "Телефон: +79991234567")
	assert.Contains(t, text, "Марка/модель: BMW X5")
	assert.Contains(t, text, "Год: 2021")
}

func TestAdminRequestMarkup(t *testing.T) {
	markup := adminRequestMarkup(42, 123)

	// One action per row: message, take, reject, delete
	assert.Len(t, markup.InlineKeyboard, 4)
	for _, row := range markup.InlineKeyboard {
		assert.Len(t, row, 1)
	}

	assert.Contains(t, markup.InlineKeyboard[0][0].Data, "123")
	assert.Contains(t, markup.InlineKeyboard[1][0].Data, "42")
	assert.Contains(t, markup.InlineKeyboard[2][0].Data, "42")
	assert.Contains(t, markup.InlineKeyboard[3][0].Data, "42")
}
