// Package validator provides a fluent, single-field validation engine: a
// Builder accumulates declaratively-configured constraints (length bounds,
// numeric ranges, required/nullable flags, option lists, password policy)
// and one terminal Validate* call evaluates them against a typed value.
//
// # Architecture
//
// A Builder is created per field with New, configured through chainable
// setters, and consumed read-only by exactly one evaluator family:
//
//   - ValidateString / ValidateName       – length and format checks
//   - ValidateEmail / ValidateBase64Bytes – format delegation
//   - ValidateInt32/Int64/Float32/Float64 – one generic bounds evaluator
//   - ValidatePasswordSimple / Strict     – policy-driven complexity rules
//   - ValidateListString / ListOptions    – option-list membership
//
// Setters never validate; all evaluation is deferred to the terminal call.
// Evaluators are built from small Rule values executed through First
// (short-circuit, first failure wins) or Apply (accumulate every failure,
// used only by the strict password evaluator).
//
// # Error Handling
//
// Every evaluator returns nil on success or a ValidationErrors collection
// carrying (Kind, Field, Detail) tuples plus translation metadata. Errors
// are values, never panics; a terminal call for a type whose value setter
// was never invoked yields KindMisconfigured instead of being treated as an
// absent value. Inverted bounds are rejected the same way.
//
// # Localization
//
// The package owns no message catalog. Each error carries a TranslationKey
// and named TranslationValues; Localize renders them through any Translator
// (the i18n package's Translator satisfies the interface).
//
// # Usage
//
//	err := validator.New("username").
//	    SetStringValue(input).
//	    SetAsRequired(true).
//	    SetMin(3).
//	    SetMax(20).
//	    ValidateString()
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect kinds or localize messages
//	}
//
// Builders hold no shared state; validating many fields concurrently needs
// no coordination as long as each goroutine uses its own Builder.
package validator
