package tools

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeContactNumber limpa o número de contato usado como chave natural do chat.
//
// Regras:
// - remove espaços e separadores visuais ( - . ( ) )
// - aceita apenas dígitos, com um '+' opcional no início
// - não prefixa DDI: o número é guardado como o cliente informou
func NormalizeContactNumber(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty phone")
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case unicode.IsSpace(r) || strings.ContainsRune("-.()", r):
			// separador, ignora
		default:
			return "", fmt.Errorf("invalid character %q in phone", r)
		}
	}

	phone := b.String()
	if strings.TrimPrefix(phone, "+") == "" {
		return "", fmt.Errorf("phone without digits")
	}
	return phone, nil
}
