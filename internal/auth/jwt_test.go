package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/quiz-wizard/internal/auth"
)

const testSecret = "a-long-enough-secret-for-signing-test-tokens"
const testSessionID = "6f1c3f0e-3c5e-4c1b-9a43-0d6d2b7c5a11"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic on an empty secret")
			}
		}()

		auth.Init("")
	})

	t.Run("ValidSecret", func(t *testing.T) {
		auth.Init(testSecret)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testSessionID, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed: %v", err)
		}
		if claims.SessionID != testSessionID {
			t.Errorf("SessionID = %s, want %s", claims.SessionID, testSessionID)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testSessionID, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("err = %v, want %v", err, jwt.ErrTokenExpired)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testSessionID, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		auth.Init("a-different-secret-than-the-one-that-signed")
		defer auth.Init(testSecret)

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("err = %v, want %v", err, jwt.ErrTokenSignatureInvalid)
		}
	})

	t.Run("MissingSessionID", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT("", time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, auth.ErrInvalidClaims) {
			t.Errorf("err = %v, want %v", err, auth.ErrInvalidClaims)
		}
	})
}

func TestSessionMiddleware(t *testing.T) {
	auth.Init(testSecret)

	r := chi.NewRouter()
	r.With(auth.SessionMiddleware).Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetSessionClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing from context: %v", err)
		}
		w.Write([]byte(claims.SessionID))
	})

	valid, err := auth.GenerateJWT(testSessionID, time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	other, err := auth.GenerateJWT("another-session", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "Bearer", header: "Bearer " + valid, want: http.StatusOK},
		{name: "Cookie", cookie: valid, want: http.StatusOK},
		{name: "Missing", want: http.StatusUnauthorized},
		{name: "Garbage", header: "Bearer not-a-token", want: http.StatusUnauthorized},
		{name: "OtherSession", header: "Bearer " + other, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sessions/"+testSessionID, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
