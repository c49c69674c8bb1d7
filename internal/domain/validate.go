package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxProjectNameLength is the upper bound on project names, in runes.
const maxProjectNameLength = 16

// ValidateNotBlank fails with ErrBlankInput if the input is empty or
// whitespace-only. Pure; no side effects.
func ValidateNotBlank(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrBlankInput
	}
	return nil
}

// ValidateProjectName applies the blank check plus the project-specific
// length rule: names longer than 16 runes fail with ErrProjectNameTooLong.
func ValidateProjectName(name string) error {
	if err := ValidateNotBlank(name); err != nil {
		return err
	}
	if utf8.RuneCountInString(name) > maxProjectNameLength {
		return ErrProjectNameTooLong
	}
	return nil
}

// ValidateCredentials checks a username/password pair: either blank fails
// with ErrBlankInput, and a username containing any whitespace character
// fails with ErrInvalidUsername. The same rules apply to registration and
// login.
func ValidateCredentials(username, password string) error {
	if err := ValidateNotBlank(username); err != nil {
		return err
	}
	if err := ValidateNotBlank(password); err != nil {
		return err
	}
	if strings.ContainsFunc(username, unicode.IsSpace) {
		return ErrInvalidUsername
	}
	return nil
}
