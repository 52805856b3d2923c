package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adiwira/authgate/internal/pkg/config"
	"github.com/adiwira/authgate/internal/pkg/instrument"
	"github.com/adiwira/authgate/internal/pkg/jwt"
	"github.com/adiwira/authgate/internal/pkg/validator"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type stubJWT struct {
	claims jwt.Claims
	err    error
}

func (s stubJWT) Generate(int64, string, string) (string, error) {
	return "", nil
}

func (s stubJWT) Verify(string) (jwt.Claims, error) {
	return s.claims, s.err
}

func newTestUsecase(t *testing.T, verifier jwt.JWT, now time.Time, yaml string) *Usecase {
	t.Helper()

	var cfg config.Config
	if yaml != "" {
		c, err := config.NewViperFromBytes("yaml", []byte(yaml))
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		cfg = c
	}

	val, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		Validator:  val,
		Config:     cfg,
		Clock:      fixedClock{now: now},
		JWT:        verifier,
		Instrument: instrument.NewNoop(),
	})
}
