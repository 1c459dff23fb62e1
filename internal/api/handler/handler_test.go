package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/api/handler/router"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"github.com/vfg2006/transport-admin-api/pkg/middleware"
)

var (
	adminClaims   = &domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}
	managerClaims = &domain.Claims{UserID: 2, UserRole: domain.RoleManager}
	driverClaims  = &domain.Claims{UserID: 3, UserRole: domain.RoleDriver}
)

// serve passa a requisição pelo router real, com as claims já no contexto como faria o AuthMiddleware
func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[apiErrors.APIError](t, rec).Code
}

func ptr[T any](v T) *T {
	return &v
}
