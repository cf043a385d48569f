package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weatherhub/weather-api/internal/token"
)

func issueToken(t *testing.T, secret string) string {
	t.Helper()
	tok, err := token.NewIssuer(secret, time.Hour).Issue("42", "testuser", "test@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	now := time.Now().Unix()
	payload, err := json.Marshal(token.Claims{
		Sub:       "42",
		Username:  "testuser",
		Email:     "test@example.com",
		IssuedAt:  now - 7200,
		ExpiresAt: now - 3600,
	})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	headerSeg := token.EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloadSeg := token.EncodeSegment(payload)
	return headerSeg + "." + payloadSeg + "." + token.Sign(headerSeg, payloadSeg, []byte(secret))
}

func runAuth(t *testing.T, verifier *token.Verifier, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, "secret"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(token.NewVerifier("secret", nil), zerolog.Nop())(func(c echo.Context) error {
		claims, ok := c.Get(ContextUserKey).(*token.Claims)
		if !ok {
			t.Fatalf("claims not set under %q", ContextUserKey)
		}
		if claims.Username != "testuser" {
			t.Fatalf("unexpected username: %s", claims.Username)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, token.NewVerifier("secret", nil), "")
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_EmptyBearerToken(t *testing.T) {
	rec, called := runAuth(t, token.NewVerifier("secret", nil), "Bearer ")
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// The scheme prefix is case-sensitive, matching the reference behavior.
func TestAuth_LowercaseScheme(t *testing.T) {
	rec, called := runAuth(t, token.NewVerifier("secret", nil), "bearer "+issueToken(t, "secret"))
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	tok := issueToken(t, "secret")
	tampered := tok[:len(tok)-2] + "xx"
	rec, called := runAuth(t, token.NewVerifier("secret", nil), "Bearer "+tampered)
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	rec, called := runAuth(t, token.NewVerifier("secret", nil), "Bearer "+expiredToken(t, "secret"))
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

type stubDenylist struct {
	revoked bool
	err     error
}

func (s *stubDenylist) IsRevoked(_ context.Context, _ string, _ int64) (bool, error) {
	return s.revoked, s.err
}

func TestAuth_RevokedToken(t *testing.T) {
	verifier := token.NewVerifier("secret", &stubDenylist{revoked: true})
	rec, called := runAuth(t, verifier, "Bearer "+issueToken(t, "secret"))
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DenylistFailure(t *testing.T) {
	verifier := token.NewVerifier("secret", &stubDenylist{err: errors.New("redis down")})
	rec, called := runAuth(t, verifier, "Bearer "+issueToken(t, "secret"))
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
