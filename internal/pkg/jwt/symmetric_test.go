package jwt

import (
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "00000000-0000-0000-0000-000000000001" }

func newTestJWT(t *testing.T, secret string, now time.Time, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    []byte(secret),
		Issuer:    "authgate",
		Audiences: []string{"authgate-api"},
		TTL:       ttl,
		Clock:     fakeClock{now: now},
		UUID:      fakeUUID{},
	})
	require.NoError(t, err)

	return s
}

var (
	secretA = strings.Repeat("a", 64)
	secretB = strings.Repeat("b", 64)
)

func TestNewHS512_ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetric_RoundTrip(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	token, err := s.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)

	clm, err := s.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(1), clm.UserID)
	assert.Equal(t, "Root Admin", clm.UserName)
	assert.Equal(t, "admin", clm.Role)
	assert.Equal(t, "1", clm.Subject)
	assert.Equal(t, "authgate", clm.Issuer)
}

func TestSymmetric_VerifyIsIdempotent(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	token, err := s.Generate(7, "Someone", "user")
	require.NoError(t, err)

	first, err := s.Verify(token)
	require.NoError(t, err)
	second, err := s.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSymmetric_WrongSecret(t *testing.T) {
	signer := newTestJWT(t, secretB, time.Now(), time.Hour)
	verifier := newTestJWT(t, secretA, time.Now(), time.Hour)

	token, err := signer.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSymmetric_Expired(t *testing.T) {
	// Issued two hours ago with a one hour TTL, so expiry passed an hour ago.
	s := newTestJWT(t, secretA, time.Now().Add(-2*time.Hour), time.Hour)

	token, err := s.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestSymmetric_Tampered(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	token, err := s.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = "eyJyb2xlIjoiYWRtaW4ifQ"

	_, err = s.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSymmetric_Garbage(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := s.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}

func TestSymmetric_RejectsForeignSigningMethod(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	now := time.Now()
	foreign, err := libJWT.NewWithClaims(libJWT.SigningMethodHS256, Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			Issuer:    "authgate",
			Audience:  []string{"authgate-api"},
			IssuedAt:  libJWT.NewNumericDate(now),
			ExpiresAt: libJWT.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: 1,
		Role:   "admin",
	}).SignedString([]byte(secretA))
	require.NoError(t, err)

	_, err = s.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSymmetric_RejectsMissingExpiry(t *testing.T) {
	s := newTestJWT(t, secretA, time.Now(), time.Hour)

	eternal, err := libJWT.NewWithClaims(libJWT.SigningMethodHS512, Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			Issuer:   "authgate",
			Audience: []string{"authgate-api"},
			IssuedAt: libJWT.NewNumericDate(time.Now()),
		},
		UserID: 1,
		Role:   "admin",
	}).SignedString([]byte(secretA))
	require.NoError(t, err)

	_, err = s.Verify(eternal)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthContext(t *testing.T) {
	t.Run("empty context has no claims", func(t *testing.T) {
		assert.Nil(t, GetAuth(t.Context()))
	})

	t.Run("stored claims round trip", func(t *testing.T) {
		ctx := SetAuth(t.Context(), Claims{UserID: 9, UserName: "N", Role: "user"})

		clm := GetAuth(ctx)
		require.NotNil(t, clm)
		assert.Equal(t, int64(9), clm.UserID)
		assert.Equal(t, "user", clm.Role)
	})
}
