package impl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"petplace/config"
	domainerrors "petplace/internal/domain/errors"
)

// passwordPolicy enforces passwordStrength from config.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

func newPasswordPolicy(cfg *config.Config) passwordPolicy {
	policy := passwordPolicy{minLength: 8, maxLength: 72}
	if cfg == nil || cfg.PasswordStrength == nil {
		return policy
	}

	ps := cfg.PasswordStrength
	if ps.MinLength > 0 {
		policy.minLength = ps.MinLength
	}
	if ps.MaxLength > 0 {
		policy.maxLength = ps.MaxLength
	}
	policy.requireUppercase = ps.RequireUppercase
	policy.requireLowercase = ps.RequireLowercase
	policy.requireNumbers = ps.RequireNumbers
	policy.requireSpecial = ps.RequireSpecial

	return policy
}

// validate returns ErrPasswordStrength listing every unmet rule.
func (p passwordPolicy) validate(password string) error {
	var problems []string

	length := utf8.RuneCountInString(password)
	if length < p.minLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", p.minLength))
	}
	if length > p.maxLength {
		problems = append(problems, fmt.Sprintf("at most %d characters", p.maxLength))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.requireUppercase && !hasUpper {
		problems = append(problems, "an uppercase letter")
	}
	if p.requireLowercase && !hasLower {
		problems = append(problems, "a lowercase letter")
	}
	if p.requireNumbers && !hasNumber {
		problems = append(problems, "a number")
	}
	if p.requireSpecial && !hasSpecial {
		problems = append(problems, "a special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs " + strings.Join(problems, ", "))
	}

	return nil
}
