package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.False(t, Username(""))
	assert.False(t, Username("ab"))
	assert.True(t, Username("abc"))
}

func TestPassword(t *testing.T) {

	testCases := []struct {
		name     string
		password string
		creating bool
		result   bool
	}{
		{"empty on create", "", true, false},
		{"short on create", "12345", true, false},
		{"ok on create", "123456", true, true},
		{"empty on update keeps password", "", false, true},
		{"short on update", "123", false, false},
		{"ok on update", "secret-pass", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.result, Password(tc.password, tc.creating))
		})
	}
}
