package contacts

import (
	"regexp"
	"unicode/utf8"
)

// PhoneFormatDescription is shown to users entering an invalid number.
const PhoneFormatDescription = "9-15 digits, optionally starting with '+'"

const (
	minNameLength = 2
	maxNameLength = 30
)

var phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)

// Name is a validated contact name.
type Name string

// NewName validates and wraps a contact name.
func NewName(s string) (Name, error) {
	length := utf8.RuneCountInString(s)
	if length < minNameLength || length > maxNameLength {
		return "", Validationf("Username must be between %d and %d characters long.", minNameLength, maxNameLength)
	}
	return Name(s), nil
}

// Phone is a validated phone number.
type Phone string

// NewPhone validates and wraps a phone number.
func NewPhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return "", Validationf("Phone number must be %s.", PhoneFormatDescription)
	}
	return Phone(s), nil
}
