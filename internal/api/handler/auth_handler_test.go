package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

type stubAuthService struct {
	admin *domain.Administrador
	token string
}

func (s *stubAuthService) Authenticate(_ context.Context, identificacion, password string) (*domain.Administrador, error) {
	if s.admin == nil || identificacion != s.admin.Identificacion || password != "S3cret,pass" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.admin, nil
}

func (s *stubAuthService) IssueToken(_ *domain.Administrador) (string, error) {
	return s.token, nil
}

func postForm(e *echo.Echo, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Token_Success(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		admin: &domain.Administrador{ID: "admin-1", Identificacion: "1030567"},
		token: "signed-token",
	})

	c, rec := postForm(e, url.Values{"username": {"1030567"}, "password": {"S3cret,pass"}})
	if err := h.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("unexpected token type: %q", resp.TokenType)
	}
}

func TestAuthHandler_Token_InvalidCredentials(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{
		admin: &domain.Administrador{ID: "admin-1", Identificacion: "1030567"},
	})

	c, _ := postForm(e, url.Values{"username": {"1030567"}, "password": {"wrong"}})
	if err := h.Token(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
