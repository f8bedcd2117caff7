package zeniapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func jsonHandler(t *testing.T, status int, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("path = %q want /login", r.URL.Path)
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "ana@example.com" || req.Password != "segredo1" {
			t.Errorf("credentials = %q / %q", req.Email, req.Password)
		}
		jsonHandler(t, http.StatusOK, `{"message": "Login realizado com sucesso", "user_id": 42, "name": "Ana"}`)(w, r)
	}))
	defer backend.Close()

	user, err := New(backend.URL).Login("ana@example.com", "segredo1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if user.ID != 42 {
		t.Fatalf("ID = %d want 42", user.ID)
	}
	if user.Name != "Ana" {
		t.Fatalf("Name = %q want %q", user.Name, "Ana")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("Email = %q want %q", user.Email, "ana@example.com")
	}
}

func TestLoginRejectedDetailPassesThrough(t *testing.T) {
	backend := httptest.NewServer(jsonHandler(t, http.StatusUnauthorized, `{"detail": "Email ou senha incorretos"}`))
	defer backend.Close()

	_, err := New(backend.URL).Login("ana@example.com", "errada")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("Status = %d want 401", apiErr.Status)
	}
	if apiErr.Detail != "Email ou senha incorretos" {
		t.Fatalf("Detail = %q, want backend message verbatim", apiErr.Detail)
	}
	if apiErr.Error() != "Email ou senha incorretos" {
		t.Fatalf("Error() = %q, want the detail", apiErr.Error())
	}
}

func TestTransportFailureIsNotAnAPIError(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	backend.Close() // connection refused from here on

	_, err := New(backend.URL).Login("ana@example.com", "segredo1")
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure surfaced as APIError: %v", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	backend := httptest.NewServer(jsonHandler(t, http.StatusBadRequest, `{"detail": "Email já cadastrado"}`))
	defer backend.Close()

	_, err := New(backend.URL).Register("Ana", "ana@example.com", "segredo1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "Email já cadastrado" {
		t.Fatalf("err = %v, want conflict detail", err)
	}
}

func TestForgotPassword(t *testing.T) {
	backend := httptest.NewServer(jsonHandler(t, http.StatusOK,
		`{"message": "Instruções enviadas", "reset_link": "http://localhost:3000/reset-password?token=abc"}`))
	defer backend.Close()

	result, err := New(backend.URL).ForgotPassword("ana@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}
	if result.Message != "Instruções enviadas" {
		t.Fatalf("Message = %q", result.Message)
	}
	if result.ResetLink == "" {
		t.Fatal("ResetLink is empty")
	}
}

func TestVerifyResetToken(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/verify-reset-token/valid" {
			jsonHandler(t, http.StatusOK, `{"message": "Token válido"}`)(w, r)
			return
		}
		jsonHandler(t, http.StatusBadRequest, `{"detail": "Token inválido ou expirado"}`)(w, r)
	}))
	defer backend.Close()

	c := New(backend.URL)
	if err := c.VerifyResetToken("valid"); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if err := c.VerifyResetToken("stale"); err == nil {
		t.Fatal("stale token accepted")
	}
}

func TestChatUnavailable(t *testing.T) {
	backend := httptest.NewServer(jsonHandler(t, http.StatusServiceUnavailable,
		`{"detail": "IA em manutenção"}`))
	defer backend.Close()

	_, err := New(backend.URL).Chat("session-1", 42, "monta um treino")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("Status = %d want 503", apiErr.Status)
	}
	if apiErr.Detail != "IA em manutenção" {
		t.Fatalf("Detail = %q", apiErr.Detail)
	}
}
