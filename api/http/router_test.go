package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/incollege/backend/api/http"
	"github.com/incollege/backend/api/http/handlers"
	"github.com/incollege/backend/pkg/health"
	"github.com/incollege/backend/pkg/job"
	"github.com/incollege/backend/pkg/legacy"
	"github.com/incollege/backend/pkg/message"
	"github.com/incollege/backend/pkg/network"
	"github.com/incollege/backend/pkg/profile"
	fsrepo "github.com/incollege/backend/pkg/repository/flatfile"
	"github.com/incollege/backend/pkg/security/jwt"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

// scriptedRunner fakes the legacy executable: any login or registration
// succeeds with the canonical phrase.
type scriptedRunner struct{}

func (scriptedRunner) Run(_ context.Context, lines []string) (string, error) {
	if len(lines) > 0 && lines[0] == "2" {
		return "Your Account Created successfully\n", nil
	}
	return "You have successfully logged in\n", nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := flatdir.Open(t.TempDir())
	require.NoError(t, err)

	const (
		secret = "test-secret"
		issuer = "incollege"
	)
	generator := jwt.NewGenerator(secret, issuer, time.Hour)

	profiles := fsrepo.NewProfileRepository(store)
	profileSvc := profile.NewService(profiles)
	networkSvc := network.NewService(fsrepo.NewNetworkRepository(store), profiles)
	jobSvc := job.NewService(fsrepo.NewJobRepository(store), fsrepo.NewApplicationRepository(store))
	messageSvc := message.NewService(fsrepo.NewMessageRepository(store), networkSvc)
	authSvc := legacy.NewAuthService(scriptedRunner{}, generator)

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewAuthHandler(authSvc),
		handlers.NewHealthHandler(health.NewService()),
		handlers.NewProfileHandler(profileSvc),
		handlers.NewJobHandler(jobSvc),
		handlers.NewConnectionHandler(networkSvc),
		handlers.NewMessageHandler(messageSvc),
		jwt.NewAuthMiddleware(secret, issuer),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"username": username, "password": "Pass123!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/profiles/jdoe", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/jdoe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp2, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestHealthEndpointIsOpen(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterReturnsToken(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"username": "jdoe", "password": "Pass123!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestProfileRoundTripOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jdoe")

	resp, body := doJSON(t, app, http.MethodPut, "/api/v1/profiles/jdoe", token, map[string]any{
		"firstName": "Jane", "lastName": "Doe",
		"school": "USF", "major": "CS", "gradYear": "2026",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["created"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/profiles/jdoe", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane", body["firstName"])

	// Lookup by name ignores case.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/profiles/search?first=jane&last=DOE", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jdoe", body["username"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/profiles/search?first=Nobody&last=Here", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No user profile exists for the name you have entered.", body["message"])
}

func TestMessagingRequiresConnection(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jdoe")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/messages", token, map[string]string{
		"sender": "jdoe", "recipient": "asmith", "text": "hello",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Connect the two users, then the same send goes through.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/connections/request", token, map[string]string{
		"sender": "jdoe", "recipient": "asmith",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/connections/respond", token, map[string]string{
		"sender": "jdoe", "recipient": "asmith", "action": "accept",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/messages", token, map[string]string{
		"sender": "jdoe", "recipient": "asmith", "text": "hello",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages/asmith", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	inboxResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, inboxResp.StatusCode)
	var inbox []map[string]any
	require.NoError(t, json.NewDecoder(inboxResp.Body).Decode(&inbox))
	require.Len(t, inbox, 1)
	assert.Equal(t, "hello", inbox[0]["text"])
}
