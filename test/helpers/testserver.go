package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"accounts_backend/internal/app"
	"accounts_backend/internal/auth"
	"accounts_backend/internal/config"
	"accounts_backend/internal/email"
)

// TestServer runs the full HTTP stack against a fresh in-memory database
// and a mail mock that captures outgoing messages.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mail   *email.MockProvider
}

// NewTestServer builds a fully wired server for one test.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	cfg := config.GetConfig()

	db := OpenTestDB(t)
	mail := email.NewMockProvider()
	container := app.BuildServices(mail)

	router := app.SetupRouter(cfg, db, container)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Mail:   mail,
	}
}

// SendRequest performs an HTTP request against the test server. A non-empty
// token is sent as a bearer credential. It returns the response and the
// fully read body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(data)
}

// RegisterAndActivate drives the public registration flow and returns the
// id of the now-active user.
func (ts *TestServer) RegisterAndActivate(t *testing.T, emailAddr, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
		"email":    emailAddr,
		"password": password,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with status %d: %s", res.StatusCode, body)
	}

	mail := ts.Mail.Last()
	if mail == nil || mail.Kind != "activation" {
		t.Fatalf("expected an activation mail after registration")
	}

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/users/activation", "", map[string]interface{}{
		"uid":   mail.UID,
		"token": mail.Token,
	})
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("activation failed with status %d: %s", res.StatusCode, body)
	}

	userID, err := auth.DecodeUID(mail.UID)
	if err != nil {
		t.Fatalf("failed to decode uid from activation mail: %v", err)
	}
	return userID
}

// Login authenticates via the API and returns the token pair.
func (ts *TestServer) Login(t *testing.T, emailAddr, password string) (access, refresh string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/jwt/create", "", map[string]interface{}{
		"email":    emailAddr,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", res.StatusCode, body)
	}

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal([]byte(body), &pair); err != nil {
		t.Fatalf("failed to parse token pair: %v", err)
	}

	return pair.Access, pair.Refresh
}
