// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package contract

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Shared validation predicates. Server handlers and the session client apply
// these identically; a value accepted by one side is accepted by the other.
var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Password strength: at least 8 characters, at least one letter, one
	// digit, and one symbol from @$!%*#?&, with no other characters allowed.
	// Go's regexp has no lookahead, so the rule is decomposed into the
	// alphabet check plus three containment checks.
	passwordAlphabet = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)
	passwordLetter   = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit    = regexp.MustCompile(`\d`)
	passwordSymbol   = regexp.MustCompile(`[@$!%*#?&]`)
)

// IsValidEmail reports whether email matches the standard local@domain.tld
// form required of every account email.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsValidPassword reports whether password satisfies the shared strength
// rule: length ≥ 8, at least one letter, one digit, and one symbol from
// @$!%*#?&.
func IsValidPassword(password string) bool {
	return passwordAlphabet.MatchString(password) &&
		passwordLetter.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSymbol.MatchString(password)
}

// NormalizeEmail canonicalizes an email for lookup and uniqueness purposes.
// Emails are matched case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance with the contract's custom
// rules registered. The "password" tag delegates to [IsValidPassword]; the
// builtin "email" rule is replaced with [IsValidEmail] so that both sides of
// the wire agree on exactly one email grammar.
//
// The instance is created once and is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return IsValidPassword(fl.Field().String())
		})
		_ = validate.RegisterValidation("email", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
	})

	return validate
}

// ValidateStruct runs the shared validator against a DTO and returns the
// first rule violation as-is, or nil when the value passes.
func ValidateStruct(dto any) error {
	return Validator().Struct(dto)
}
