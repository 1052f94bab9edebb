// Package config loads environment-backed configuration structs, caching
// each type for the process lifetime. It backs deployment-tunable validation
// policies such as validator.PasswordPolicy:
//
//	var policy validator.PasswordPolicy
//	config.MustLoad(&policy)
//	err := validator.New("password").
//	    SetStringValue(input).
//	    SetPasswordPolicy(policy).
//	    ValidatePasswordStrict()
//
// A .env file in the working directory is loaded once before the first
// parse; real environment variables take precedence.
package config
