package password_test

import (
	"strings"
	"testing"

	"atoll/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "four digit pin", input: "1234"},
		{name: "special characters", input: "P@ssw0rd!#$%"},
		{name: "empty", input: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", input: strings.Repeat("a", 100), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, password.IsHash(hash))
			assert.NoError(t, password.Verify(tt.input, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("4821")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		hash    string
		wantErr error
	}{
		{name: "match", input: "4821", hash: hash},
		{name: "mismatch", input: "1111", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty input", input: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", input: "4821", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", input: "4821", hash: "invalid_hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.input, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyPIN(t *testing.T) {
	hash, err := password.Hash("0042")
	require.NoError(t, err)

	tests := []struct {
		name   string
		pin    string
		stored string
		ok     bool
	}{
		{name: "plain match", pin: "1234", stored: "1234", ok: true},
		{name: "plain mismatch", pin: "1235", stored: "1234"},
		{name: "plain prefix is not a match", pin: "123", stored: "1234"},
		{name: "hashed match", pin: "0042", stored: hash, ok: true},
		{name: "hashed mismatch", pin: "0043", stored: hash},
		{name: "empty pin", pin: "", stored: "1234"},
		{name: "nothing stored", pin: "1234", stored: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.VerifyPIN(tt.pin, tt.stored)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("1234")
	require.NoError(t, err)

	second, err := password.Hash("1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
