package i18n

// DefaultCatalog returns the built-in English templates for every
// validation translation key emitted by the validator package. Use it
// directly with a MapAdapter, or as the base layer under custom catalogs.
func DefaultCatalog() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"validation": map[string]any{
				"required":      "The %{field} field is required.",
				"min_length":    "The %{field} must be at least %{min} characters long.",
				"max_length":    "The %{field} must not exceed %{max} characters.",
				"min":           "The %{field} must be at least %{min}.",
				"max":           "The %{field} must not exceed %{max}.",
				"email":         "The %{field} must be a valid email address.",
				"name":          "The %{field} may contain only letters, spaces, hyphens and apostrophes.",
				"base64":        "The %{field} must be a valid base64 string.",
				"base64_length": "The %{field} must decode to exactly %{len} bytes.",

				"in_list":                "The %{field} must be one of: %{options}.",
				"in_list_options":        "The %{field} must be one of %{options}.",
				"in_list_options_parent": "The %{field} must be one of %{options} within %{parent}.",

				"password_min_length": "The %{field} must be at least %{min} characters long.",
				"password_max_length": "The %{field} must not exceed %{max} characters.",
				"password_uppercase":  "The %{field} must contain at least one uppercase letter.",
				"password_lowercase":  "The %{field} must contain at least one lowercase letter.",
				"password_digit":      "The %{field} must contain at least one digit.",
				"password_special":    "The %{field} must contain at least one special character.",

				"misconfigured": "The %{field} validator is misconfigured: %{detail}.",
			},
		},
	}
}
