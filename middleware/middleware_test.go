package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vipcourses/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signTestToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := Claims{
		Username: userID,
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	header := "Bearer " + signTestToken(t, "u1", "user")

	orig := isRevoked
	defer func() { isRevoked = orig }()

	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	// not revoked: request passes and carries the claims
	isRevoked = func(ctx context.Context, authHeader string) bool { return false }
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", header)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", rec.Code)
	}
	if gotUserID != "u1" {
		t.Fatalf("expected userId u1 in context, got %q", gotUserID)
	}

	// same token replayed after logout: the denylist wins over a valid
	// signature
	isRevoked = func(ctx context.Context, authHeader string) bool { return authHeader == header }
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", header)
	rec = httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
}

func TestRevocationKeyStablePerToken(t *testing.T) {
	a := RevocationKey("Bearer aaa")
	b := RevocationKey("Bearer bbb")
	if a == b {
		t.Fatal("distinct tokens must map to distinct keys")
	}
	if a != RevocationKey("Bearer aaa") {
		t.Fatal("key derivation must be deterministic")
	}
	if len(a) <= len("auth:revoked:") {
		t.Fatalf("key %q is missing its hash suffix", a)
	}
}
