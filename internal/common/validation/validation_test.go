package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valids := []string{
		"admin@rafflefox.local",
		"a@b.co",
		"  padded@example.com  ",
		"first.last+tag@sub.example.org",
	}
	for _, v := range valids {
		assert.NoError(t, ValidateEmail(v), v)
	}

	invalids := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@nouser.com",
		"two@@example.com",
		"spaces in@example.com",
		strings.Repeat("a", MaxEmailLength) + "@example.com",
	}
	for _, v := range invalids {
		assert.Error(t, ValidateEmail(v), v)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
	assert.NoError(t, ValidatePassword("123456"))
}
