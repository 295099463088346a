package server

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"photoshare/internal/config"
	"photoshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ResponseOmitsPasswordHash(t *testing.T) {
	_, app := newTestApp(t)
	reg := testutil.FakeRegistration()

	resp, body, raw := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		registrationFields(reg), formFile{"profile", "me.png", testutil.PNG()}))

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "User successfully added", body["message"])
	assert.Equal(t, reg.Username, body["username"])
	assert.Equal(t, reg.FirstName, body["firstname"])
	assert.Equal(t, reg.Email, body["email"])
	assert.Equal(t, "/api/v1/photo/me.png", body["profile_photo"])
	assert.NotEmpty(t, body["joined_on"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, string(raw), reg.Password)
}

func TestRegister_ExposePasswordHashFlag(t *testing.T) {
	_, app := newTestApp(t, func(c *config.Config) { c.ExposePasswordHash = true })
	reg := testutil.FakeRegistration()

	resp, body, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		registrationFields(reg), formFile{"profile", "me.png", testutil.PNG()}))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	hash, ok := body["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, reg.Password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestRegister_FormErrors(t *testing.T) {
	_, app := newTestApp(t)

	resp, body, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		map[string]string{"username": "ada"}))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].([]interface{})
	assert.Contains(t, errs, "Error in the Password field - This field is required.")
	assert.Contains(t, errs, "Error in the First Name field - This field is required.")
	assert.Contains(t, errs, "Error in the Profile field - This field is required.")
	assert.NotContains(t, errs, "Error in the Username field - This field is required.")
}

func TestRegister_RejectsNonImageBeforeWriting(t *testing.T) {
	srv, app := newTestApp(t)
	reg := testutil.FakeRegistration()

	resp, body, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		registrationFields(reg), formFile{"profile", "me.gif", []byte("GIF89a")}))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []interface{}{"Error in the Profile field - Images only!"}, body["errors"])

	entries, err := os.ReadDir(srv.config.UploadFolder)
	require.NoError(t, err)
	assert.Empty(t, entries)

	resp, _, _ = do(t, app, jsonRequest(t, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"username": reg.Username, "password": reg.Password}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	srv, app := newTestApp(t)
	reg := testutil.FakeRegistration()
	fields := registrationFields(reg)

	resp, _, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		fields, formFile{"profile", "first.png", testutil.PNG()}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/register",
		fields, formFile{"profile", "second.png", testutil.PNG()}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already taken", body["error"])

	// The second upload is cleaned up after the failed insert.
	entries, err := os.ReadDir(srv.config.UploadFolder)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first.png", entries[0].Name())
}

func TestLogin(t *testing.T) {
	srv, app := newTestApp(t)
	acct := signUp(t, app)

	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		expectedError  string
	}{
		{"Unknown user", "nobody-" + acct.Username, acct.Password, http.StatusUnauthorized, "User does not exist!"},
		{"Wrong password", acct.Username, acct.Password + "x", http.StatusUnauthorized, "Invalid credentials!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body, _ := do(t, app, jsonRequest(t, http.MethodPost, "/api/v1/auth/login",
				map[string]string{"username": tt.username, "password": tt.password}))
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedError, body["error"])
		})
	}

	t.Run("Form encoded", func(t *testing.T) {
		resp, body, _ := do(t, app, multipartRequest(t, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"username": acct.Username, "password": acct.Password}))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "User successfully logged in", body["message"])

		claims, err := srv.tokens.Verify(body["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, acct.ID, claims.ID)
		assert.Equal(t, acct.Username, claims.Username)
	})

	t.Run("Missing fields", func(t *testing.T) {
		resp, body, _ := do(t, app, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, body["errors"], 2)
	})
}

func TestLogout(t *testing.T) {
	_, app := newTestApp(t)

	resp, _, raw := do(t, app, jsonRequest(t, http.MethodPost, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"User logged out"}`, string(raw))
}
