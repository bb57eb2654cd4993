package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
	}{
		{"simple", "password123"},
		{"symbols", "P@ssw0rd!#$%^&*()"},
		{"long", strings.Repeat("a", 100)},
		{"empty", ""},
		{"unicode", "пароль🔒密码"},
		{"whitespace", "   spaces   "},
	}

	h := NewHasher(Params{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Contains(t, parts[3], "m=")
			require.Contains(t, parts[3], "t=")
			require.Contains(t, parts[3], "p=")
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])
		})
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, h.Verify("correct horse battery staple", hash))
	require.ErrorIs(t, h.Verify("correct horse battery stapler", hash), ErrMismatch)
	require.ErrorIs(t, h.Verify("", hash), ErrMismatch)
}

func TestSaltsDiffer(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)

	// Same input, fresh salt each time, so encodings must differ
	require.NotEqual(t, a, b)
	require.NoError(t, h.Verify("same password", a))
	require.NoError(t, h.Verify("same password", b))
}

func TestVerifyUsesEmbeddedParams(t *testing.T) {
	t.Parallel()

	cheap := NewHasher(Params{MemoryKiB: 8 * 1024, Iterations: 1, Parallelism: 1})
	hash, err := cheap.Hash("migrating password")
	require.NoError(t, err)

	// A hasher configured with heavier params still verifies the old hash
	heavy := NewHasher(Params{MemoryKiB: 32 * 1024, Iterations: 3, Parallelism: 2})
	require.NoError(t, heavy.Verify("migrating password", hash))
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())
	good, err := h.Hash("intact")
	require.NoError(t, err)

	withPart := func(i int, v string) string {
		parts := strings.Split(good, "$")
		parts[i] = v
		return strings.Join(parts, "$")
	}

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not phc", "plainly-not-a-hash"},
		{"missing parts", "$argon2id$v=19$m=19456,t=2,p=1"},
		{"wrong function", withPart(1, "argon2i")},
		{"wrong version", withPart(2, "v=16")},
		{"garbled costs", withPart(3, "m=x,t=y,p=z")},
		{"bad salt encoding", withPart(4, "*not-base64*")},
		{"bad hash encoding", withPart(5, "*not-base64*")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify("intact", tt.encoded)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrMismatch)
		})
	}
}

func TestZeroParamsFallBack(t *testing.T) {
	t.Parallel()

	h := NewHasher(Params{})
	hash, err := h.Hash("anything")
	require.NoError(t, err)
	require.Contains(t, hash, "m=19456,t=2,p=1")
}
