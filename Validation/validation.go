package Validation

import (
	"errors"
	"regexp"
	"strconv"
)

var phonePattern = regexp.MustCompile(`^\+?\d{8,15}$`)

// ValidatePhone accepts an optional leading '+' followed by 8 to 15
// digits.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

var ErrInvalidFee = errors.New("fee must be a non-negative number")

// ValidateFee parses a fee entered as form text. Empty input means the
// fee was left unspecified, which is allowed and distinct from zero.
func ValidateFee(fee string) (*float64, error) {
	if fee == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(fee, 64)
	if err != nil || !(f >= 0) {
		// !(f >= 0) also rejects NaN, which ParseFloat accepts
		return nil, ErrInvalidFee
	}
	return &f, nil
}
