package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScryptHasher_Hash(t *testing.T) {
	t.Parallel()

	h := NewScryptHasher()

	encoded, err := h.Hash("stranglehold")
	require.NoError(t, err)

	assert.NotEqual(t, "stranglehold", encoded)
	salt, hash, ok := strings.Cut(encoded, ".")
	require.True(t, ok, "encoded value should contain a separator")
	assert.Len(t, salt, saltBytes*2)
	assert.Len(t, hash, keyLength*2)
}

func TestScryptHasher_Hash_UsesFreshSalt(t *testing.T) {
	t.Parallel()

	h := NewScryptHasher()

	first, err := h.Hash("390")
	require.NoError(t, err)
	second, err := h.Hash("390")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password should not encode identically")
}

func TestScryptHasher_Hash_RandFailure(t *testing.T) {
	t.Parallel()

	h := &ScryptHasher{rand: func([]byte) (int, error) {
		return 0, errors.New("entropy exhausted")
	}}

	encoded, err := h.Hash("390")

	assert.Error(t, err)
	assert.Empty(t, encoded)
}

func TestScryptHasher_Verify(t *testing.T) {
	t.Parallel()

	h := NewScryptHasher()
	encoded, err := h.Hash("390")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		want     bool
		wantErr  error
	}{
		{name: "correct password", password: "390", encoded: encoded, want: true},
		{name: "wrong password", password: "password", encoded: encoded, want: false},
		{name: "empty password", password: "", encoded: encoded, want: false},
		{name: "no separator", password: "390", encoded: "abcdef", wantErr: ErrMalformedHash},
		{name: "empty salt", password: "390", encoded: ".abcdef", wantErr: ErrMalformedHash},
		{name: "empty hash", password: "390", encoded: "abcdef.", wantErr: ErrMalformedHash},
		{name: "non-hex hash", password: "390", encoded: "abcdef.zzzz", wantErr: ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, err := h.Verify(tt.password, tt.encoded)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
