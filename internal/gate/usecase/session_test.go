package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/authgate/internal/pkg/goerror"
	"github.com/adiwira/authgate/internal/pkg/jwt"
)

func TestUsecase_Session(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no claims in context", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{}, now, "")

		out, err := uc.Session(context.Background(), SessionInput{})
		assert.Nil(t, out)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
	})

	t.Run("claims are reported verbatim", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{}, now, "")

		issued := now.Add(-10 * time.Minute)
		expires := now.Add(50 * time.Minute)
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        "tok-1",
				IssuedAt:  libJWT.NewNumericDate(issued),
				ExpiresAt: libJWT.NewNumericDate(expires),
			},
			UserID:   42,
			UserName: "Jo",
			Role:     "user",
		})

		out, err := uc.Session(ctx, SessionInput{})
		require.NoError(t, err)

		assert.Equal(t, int64(42), out.UserID)
		assert.Equal(t, "Jo", out.UserName)
		assert.Equal(t, "user", out.Role)
		assert.Equal(t, "tok-1", out.TokenID)
		assert.Equal(t, issued, out.IssuedAt)
		assert.Equal(t, expires, out.ExpiresAt)
		assert.Equal(t, 50*time.Minute, out.ExpiresIn)
	})

	t.Run("claims without timestamps", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{}, now, "")

		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7, Role: "admin"})

		out, err := uc.Session(ctx, SessionInput{})
		require.NoError(t, err)
		assert.True(t, out.IssuedAt.IsZero())
		assert.True(t, out.ExpiresAt.IsZero())
		assert.Zero(t, out.ExpiresIn)
	})
}

func TestUsecase_SessionErrorIsBusiness(t *testing.T) {
	uc := newTestUsecase(t, stubJWT{}, time.Now(), "")

	_, err := uc.Session(context.Background(), SessionInput{})

	var gerr *goerror.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, goerror.TypeBusiness, gerr.Type())
}
