package Validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	accepted := []string{
		"+201234567890",
		"12345678",
		"+12345678",
		"123456789012345",
	}
	for _, phone := range accepted {
		assert.True(t, ValidatePhone(phone), phone)
	}

	rejected := []string{
		"",
		"123",
		"1234567",          // too short
		"1234567890123456", // too long
		"12345678a",
		"+",
		"++12345678",
		"1234 5678",
		"(123)45678",
		"12345678+",
	}
	for _, phone := range rejected {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateFee(t *testing.T) {
	fee, err := ValidateFee("25.5")
	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.Equal(t, 25.5, *fee)

	fee, err = ValidateFee("0")
	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.Equal(t, 0.0, *fee)

	// Absent fee is unspecified, not zero
	fee, err = ValidateFee("")
	require.NoError(t, err)
	assert.Nil(t, fee)

	for _, bad := range []string{"-1", "-0.01", "abc", "25,5", "1e", "NaN", "nan"} {
		_, err := ValidateFee(bad)
		assert.ErrorIs(t, err, ErrInvalidFee, bad)
	}
}
