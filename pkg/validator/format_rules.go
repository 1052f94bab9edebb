package validator

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail checks the required flag, then the email format. Length
// bounds are deliberately not applied: the format defines its own structure.
func (b *Builder) ValidateEmail() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	return First(Rule{
		Check: func() bool {
			return isValidEmail(b.str)
		},
		Error: ValidationError{
			Kind:           KindInvalidFormat,
			Field:          b.field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": b.field,
			},
		},
	})
}

// ValidateBase64Bytes checks the required flag, decodes the value as
// URL-safe Base64, and compares the decoded byte count against the exact
// length constraint when one is set. The constraint applies to the decoded
// payload, not the encoded string.
func (b *Builder) ValidateBase64Bytes() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	decoded, err := decodeBase64(b.str)
	if err != nil {
		return ValidationErrors{{
			Kind:           KindInvalidFormat,
			Field:          b.field,
			Message:        "must be a valid base64 string",
			TranslationKey: "validation.base64",
			TranslationValues: map[string]any{
				"field": b.field,
			},
		}}
	}

	length := len(decoded)
	return First(Rule{
		Check: func() bool {
			return b.length == nil || length == *b.length
		},
		Error: ValidationError{
			Kind:           KindLengthMismatch,
			Field:          b.field,
			Detail:         fmt.Sprintf("decoded %d bytes, expected %d", length, deref(b.length)),
			Message:        fmt.Sprintf("must decode to exactly %d bytes", deref(b.length)),
			TranslationKey: "validation.base64_length",
			TranslationValues: map[string]any{
				"field": b.field,
				"len":   deref(b.length),
			},
		},
	})
}

// isValidEmail parses with net/mail, then applies the structural domain
// checks a mail server would: a non-empty local part and a dotted domain
// with no empty labels.
func isValidEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// decodeBase64 decodes URL-safe Base64, with or without padding.
func decodeBase64(value string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(value, "="))
}
