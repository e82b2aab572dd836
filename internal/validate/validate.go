// Package validate holds the pure per-field validators for form answers.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/drigmma/zabugorn/internal/config"
)

// skipTokens short-circuit validation on optional fields
var skipTokens = map[string]struct{}{
	"-":      {},
	"нет":    {},
	"no":     {},
	"none":   {},
	"ничего": {},
}

// IsSkip reports whether raw is an explicit "no value" answer.
// Only optional fields consult this.
func IsSkip(raw string) bool {
	_, ok := skipTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// FullName validates a full name: Cyrillic letters, spaces and hyphens,
// at least two words.
func FullName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("ФИО не может быть пустым")
	}

	for _, r := range name {
		if unicode.Is(unicode.Cyrillic, r) || r == ' ' || r == '-' {
			continue
		}
		return "", fmt.Errorf("ФИО должно содержать только русские буквы, пробелы и дефисы")
	}

	if len(strings.Fields(name)) < 2 {
		return "", fmt.Errorf("Укажите фамилию и имя через пробел")
	}

	return name, nil
}

// Phone normalizes a phone number to +<country code><digits> form.
// Digits are extracted from the raw input; a leading plus is preserved,
// otherwise a national trunk prefix is rewritten to the country code
// when the config enables it.
func Phone(raw string, cfg config.PhoneConfig) (string, error) {
	trimmed := strings.TrimSpace(raw)
	hadPlus := strings.HasPrefix(trimmed, "+")

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	ds := digits.String()
	if ds == "" {
		return "", fmt.Errorf("Номер телефона должен содержать цифры")
	}

	var normalized string
	switch {
	case hadPlus:
		normalized = "+" + ds
	case cfg.RewriteTrunk && strings.HasPrefix(ds, cfg.TrunkPrefix):
		normalized = "+" + cfg.CountryCode + ds[len(cfg.TrunkPrefix):]
	default:
		normalized = "+" + ds
	}

	if !strings.HasPrefix(normalized, "+"+cfg.CountryCode) || len(normalized) != cfg.Length {
		return "", fmt.Errorf("Введите номер в международном формате, например +%s9991234567", cfg.CountryCode)
	}

	return normalized, nil
}

// FreeText accepts any non-empty answer verbatim
func FreeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("Ответ не может быть пустым")
	}
	return text, nil
}
