package validator

import (
	"fmt"
	"sort"
)

// Translator renders a translation key into a human-readable message.
// The signature matches the i18n package's Translator so it can be passed
// directly; the validator core never owns a message catalog.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize renders the error through the given translator. Translation
// values are passed as named parameters, so catalog templates can reference
// %{field}, %{min}, %{options}, %{parent} and friends.
func (e ValidationError) Localize(tr Translator, lang string) string {
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}

	return tr.T(lang, e.TranslationKey, args...)
}

// Localize renders every error in the collection, preserving order.
func (ve ValidationErrors) Localize(tr Translator, lang string) []string {
	if len(ve) == 0 {
		return nil
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Localize(tr, lang))
	}
	return messages
}
