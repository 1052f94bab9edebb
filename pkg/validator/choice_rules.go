package validator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ValidateListString checks the required flag, then membership in the
// configured option list. Case-sensitive comparison does exact matching;
// case-insensitive folds both sides. A pre-lowercased list always folds the
// input, regardless of the case-sensitivity flag. No list configured means
// any value passes.
func (b *Builder) ValidateListString() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	return First(Rule{
		Check: b.optionMatch,
		Error: ValidationError{
			Kind:           KindNotInList,
			Field:          b.field,
			Detail:         strings.Join(b.options, ", "),
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(b.options, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":   b.field,
				"options": strings.Join(b.options, ", "),
			},
		},
	})
}

// ValidateListOptions evaluates exactly like ValidateListString but renders
// the allowed set into the error detail and contextualizes the message with
// the parent label when one is set.
func (b *Builder) ValidateListOptions() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	options := formatOptionList(b.options)

	message := fmt.Sprintf("must be one of %s", options)
	values := map[string]any{
		"field":   b.field,
		"options": options,
	}
	if b.parent != "" {
		message += " within " + b.parent
		values["parent"] = b.parent
	}

	key := "validation.in_list_options"
	if b.parent != "" {
		key = "validation.in_list_options_parent"
	}

	return First(Rule{
		Check: b.optionMatch,
		Error: ValidationError{
			Kind:              KindNotInList,
			Field:             b.field,
			Detail:            options,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	})
}

// optionMatch reports whether the string value is a member of the option
// list under the configured comparison strategy. The two historical paths
// (case-sensitivity flag vs pre-lowercased list) share one comparator.
func (b *Builder) optionMatch() bool {
	if b.options == nil {
		return true
	}

	switch {
	case b.optionsLower:
		// List entries were lowercased at configuration time.
		value := strings.ToLower(b.str)
		for _, option := range b.options {
			if value == option {
				return true
			}
		}
	case b.caseSensitive:
		for _, option := range b.options {
			if b.str == option {
				return true
			}
		}
	default:
		folder := cases.Fold()
		value := folder.String(b.str)
		for _, option := range b.options {
			if value == folder.String(option) {
				return true
			}
		}
	}
	return false
}

// formatOptionList renders the allowed set for display: each entry wrapped
// in ❛❜ quotes, the last joined with "and".
func formatOptionList(options []string) string {
	wrapped := make([]string, len(options))
	for i, option := range options {
		wrapped[i] = "❛" + option + "❜"
	}

	if len(wrapped) > 1 {
		return strings.Join(wrapped[:len(wrapped)-1], ", ") + " and " + wrapped[len(wrapped)-1]
	}
	return strings.Join(wrapped, "")
}
