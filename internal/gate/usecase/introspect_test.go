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

func TestUsecase_Introspect(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing token is a validation error", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{}, now, "")

		out, err := uc.Introspect(context.Background(), IntrospectInput{})
		assert.Nil(t, out)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
	})

	t.Run("accepted token is active", func(t *testing.T) {
		issued := now.Add(-time.Minute)
		expires := now.Add(time.Hour)
		uc := newTestUsecase(t, stubJWT{claims: jwt.Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        "tok-9",
				IssuedAt:  libJWT.NewNumericDate(issued),
				ExpiresAt: libJWT.NewNumericDate(expires),
			},
			UserID:   9,
			UserName: "Sam",
			Role:     "service",
		}}, now, "")

		out, err := uc.Introspect(context.Background(), IntrospectInput{Token: "sometoken"})
		require.NoError(t, err)

		assert.True(t, out.Active)
		assert.Empty(t, out.Reason)
		assert.Equal(t, int64(9), out.UserID)
		assert.Equal(t, "Sam", out.UserName)
		assert.Equal(t, "service", out.Role)
		assert.Equal(t, "tok-9", out.TokenID)
		assert.Equal(t, issued, out.IssuedAt)
		assert.Equal(t, expires, out.ExpiresAt)
	})

	t.Run("expired token reports expired without error", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{err: jwt.ErrTokenExpired}, now, "")

		out, err := uc.Introspect(context.Background(), IntrospectInput{Token: "sometoken"})
		require.NoError(t, err)

		assert.False(t, out.Active)
		assert.Equal(t, IntrospectReasonExpired, out.Reason)
		assert.Zero(t, out.UserID)
	})

	t.Run("wrapped expiry is still reported as expired", func(t *testing.T) {
		wrapped := errors.Join(jwt.ErrTokenExpired, errors.New("token has invalid claims"))
		uc := newTestUsecase(t, stubJWT{err: wrapped}, now, "")

		out, err := uc.Introspect(context.Background(), IntrospectInput{Token: "sometoken"})
		require.NoError(t, err)
		assert.Equal(t, IntrospectReasonExpired, out.Reason)
	})

	t.Run("bad signature reports invalid without error", func(t *testing.T) {
		uc := newTestUsecase(t, stubJWT{err: jwt.ErrInvalidToken}, now, "")

		out, err := uc.Introspect(context.Background(), IntrospectInput{Token: "sometoken"})
		require.NoError(t, err)

		assert.False(t, out.Active)
		assert.Equal(t, IntrospectReasonInvalid, out.Reason)
	})
}
