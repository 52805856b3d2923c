package inbound

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/authgate/internal/gate/usecase"
	"github.com/adiwira/authgate/internal/pkg/clock"
	"github.com/adiwira/authgate/internal/pkg/config"
	"github.com/adiwira/authgate/internal/pkg/instrument"
	"github.com/adiwira/authgate/internal/pkg/jwt"
	"github.com/adiwira/authgate/internal/pkg/router"
	"github.com/adiwira/authgate/internal/pkg/uid"
	"github.com/adiwira/authgate/internal/pkg/validator"
)

type gateFixture struct {
	router *router.Router
	signer *jwt.Symmetric
}

func newGateFixture(t *testing.T, yaml string) gateFixture {
	t.Helper()

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(strings.Repeat("k", 64)),
		Issuer:    "authgate",
		Audiences: []string{"authgate-api"},
		TTL:       time.Hour,
		Clock:     clock.New(),
		UUID:      uid.NewUUID(),
	})
	require.NoError(t, err)

	var cfg config.Config
	if yaml != "" {
		c, err := config.NewViperFromBytes("yaml", []byte(yaml))
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		cfg = c
	}

	val, err := validator.NewV10Validator()
	require.NoError(t, err)

	ro := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})

	uc := usecase.New(usecase.Dependency{
		Validator:  val,
		Config:     cfg,
		Clock:      clock.New(),
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})

	RegisterHTTPEndpoint(ro, uc, cfg)

	return gateFixture{router: ro, signer: signer}
}

func (f gateFixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHTTPEndpoint_Session(t *testing.T) {
	f := newGateFixture(t, "")

	t.Run("without credential", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/gate/session", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with credential", func(t *testing.T) {
		token, err := f.signer.Generate(42, "Jo", "user")
		require.NoError(t, err)

		rec := f.do(t, http.MethodGet, "/api/v1/gate/session", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":42`)
		assert.Contains(t, rec.Body.String(), `"role":"user"`)
		assert.Contains(t, rec.Body.String(), `"authorized":true`)
	})
}

func TestHTTPEndpoint_Introspect(t *testing.T) {
	f := newGateFixture(t, "")

	adminToken, err := f.signer.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)
	userToken, err := f.signer.Generate(2, "Jo", "user")
	require.NoError(t, err)

	t.Run("non-admin caller is rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", userToken, `{"token":"x"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("active token", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", adminToken, `{"token":"`+userToken+`"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":true`)
		assert.Contains(t, rec.Body.String(), `"role":"user"`)
	})

	t.Run("garbage token is inactive not an error", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", adminToken, `{"token":"not-a-jwt"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":false`)
		assert.Contains(t, rec.Body.String(), `"reason":"invalid"`)
	})

	t.Run("missing token field", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", adminToken, `{}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", adminToken, `{"token":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPEndpoint_IntrospectConfiguredRoles(t *testing.T) {
	f := newGateFixture(t, "gate:\n  introspect_roles: admin,service\n")

	svcToken, err := f.signer.Generate(3, "Robot", "service")
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/gate/introspect", svcToken, `{"token":"not-a-jwt"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPEndpoint_Roles(t *testing.T) {
	f := newGateFixture(t, "")

	adminToken, err := f.signer.Generate(1, "Root Admin", "admin")
	require.NoError(t, err)
	userToken, err := f.signer.Generate(2, "Jo", "user")
	require.NoError(t, err)

	t.Run("admin caller", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/gate/roles", adminToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"introspect_roles":["admin"]`)
	})

	t.Run("non-admin caller", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/gate/roles", userToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
