// Package i18n provides the localization collaborator for the validation
// engine: a Translator that resolves dot-separated keys against per-language
// catalogs and substitutes named %{param} placeholders.
//
// # Architecture
//
// Catalogs are loaded once at construction through a TranslationAdapter
// (MapAdapter for in-memory data, FileAdapter for YAML or JSON files) and
// held behind a read-write mutex, so a single Translator can serve
// concurrent renderers. Missing translations fall back to the key itself by
// default; WithMissingTranslationsLogging enables slog warnings for catalog
// gaps.
//
// # Usage
//
//	t, err := i18n.NewTranslator(ctx, &i18n.MapAdapter{Data: i18n.DefaultCatalog()})
//	if err != nil {
//	    // handle error
//	}
//	msg := t.T("en", "validation.required", "field", "email")
//	// "The email field is required."
//
// DefaultCatalog ships English templates for every translation key the
// validator package emits; the Translator satisfies validator.Translator, so
// it can be passed straight to ValidationError.Localize.
package i18n
