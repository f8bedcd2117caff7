// Package zeniapi is the HTTP client for the remote Zeni backend. The
// backend is an external collaborator: this client only shuttles JSON
// and passes server-reported `detail` messages through untouched.
package zeniapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
)

// APIError is a non-2xx response carrying the backend's detail message.
// Transport failures are returned as plain errors, never as APIError,
// so callers can tell the two apart.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("zeni api: status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
}

// Login exchanges credentials for the account record.
func (c *Client) Login(email, password string) (*models.User, error) {
	var resp authResponse
	if err := c.postJSON("/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &models.User{ID: resp.UserID, Name: resp.Name, Email: email}, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(name, email, password string) (*models.User, error) {
	var resp authResponse
	if err := c.postJSON("/register", registerRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &models.User{ID: resp.UserID, Name: resp.Name, Email: email}, nil
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResult carries the confirmation message and, in demo
// deployments, the reset link the backend would otherwise email out.
type ForgotPasswordResult struct {
	Message   string `json:"message"`
	ResetLink string `json:"reset_link"`
}

func (c *Client) ForgotPassword(email string) (*ForgotPasswordResult, error) {
	var resp ForgotPasswordResult
	if err := c.postJSON("/forgot-password", forgotPasswordRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyResetToken checks a deep-link token against the backend. A nil
// return means the token is usable.
func (c *Client) VerifyResetToken(token string) error {
	resp, err := c.http.Get(c.baseURL + "/verify-reset-token/" + token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return apiErrorFrom(resp)
	}
	return nil
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (c *Client) ResetPassword(token, newPassword, confirmPassword string) error {
	var resp struct {
		Message string `json:"message"`
	}
	return c.postJSON("/reset-password", resetPasswordRequest{
		Token:           token,
		NewPassword:     newPassword,
		ConfirmPassword: confirmPassword,
	}, &resp)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
}

// Chat forwards a message to the AI trainer. The backend currently
// answers 503 while the feature is down for maintenance.
func (c *Client) Chat(sessionID string, userID int64, message string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.postJSON("/chat", chatRequest{SessionID: sessionID, UserID: userID, Message: message}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *Client) postJSON(path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiErrorFrom(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiErrorFrom(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
