package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photoshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, app := newTestApp(t)

	requests := []*http.Request{
		multipartRequest(t, http.MethodPost, "/api/v1/users/1/posts", map[string]string{"caption": "x"}),
		httptest.NewRequest(http.MethodGet, "/api/v1/users/1/posts", nil),
		jsonRequest(t, http.MethodPost, "/api/users/1/follow", map[string]uint{"follow_id": 2}),
		httptest.NewRequest(http.MethodGet, "/api/users/1/follow", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/posts/1/like", nil),
		withToken(httptest.NewRequest(http.MethodPost, "/api/v1/posts/1/like", nil), "not-a-jwt"),
		withToken(httptest.NewRequest(http.MethodGet, "/api/v1/users/currentuser", nil), "not-a-jwt"),
	}
	for _, req := range requests {
		resp, _, raw := do(t, app, req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, req.URL.Path)
		assert.Equal(t, `{"error":"token missing!"}`, string(raw), req.URL.Path)
	}
}

func TestGetUser_CurrentUserAlias(t *testing.T) {
	_, app := newTestApp(t)
	acct := signUp(t, app)

	_, byID, rawByID := do(t, app, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", acct.ID), nil))
	resp, _, rawAlias := do(t, app, withToken(httptest.NewRequest(http.MethodGet, "/api/v1/users/currentuser", nil), acct.Token))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, string(rawByID), string(rawAlias))
	assert.Equal(t, acct.Username, byID["username"])
	assert.NotContains(t, byID, "password")

	resp, _, raw := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/users/currentuser", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `{"error":"token missing!"}`, string(raw))
}

func TestGetUser_NotFoundAndBadID(t *testing.T) {
	_, app := newTestApp(t)

	resp, _, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/users/999", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostsAndLikesFlow(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)
	bob := signUp(t, app)

	resp, body, raw := do(t, app, withToken(multipartRequest(t, http.MethodPost, "/api/v1/users/currentuser/posts",
		map[string]string{"caption": "sunset"}, formFile{"photo", "sunset.jpg", testutil.JPEG()}), alice.Token))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, "post created", body["message"])
	post := body["post"].(map[string]interface{})
	assert.Equal(t, "/api/v1/photo/sunset.jpg", post["photo"])
	postID := uint(post["id"].(float64))

	resp, _, _ = do(t, app, withToken(multipartRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/posts", alice.ID),
		map[string]string{"caption": "second"}, formFile{"photo", "second.png", testutil.PNG()}), alice.Token))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	likePath := fmt.Sprintf("/api/v1/posts/%d/like", postID)
	for want := 1; want <= 2; want++ {
		resp, body, _ = do(t, app, withToken(httptest.NewRequest(http.MethodPost, likePath, nil), bob.Token))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "You liked the post", body["message"])
		assert.Equal(t, float64(want), body["likes"])
	}

	resp, body, _ = do(t, app, withToken(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/posts", alice.ID), nil), bob.Token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	userPosts := body["posts"].([]interface{})
	require.Len(t, userPosts, 2)
	assert.Equal(t, "sunset", userPosts[0].(map[string]interface{})["caption"])
	assert.Equal(t, "second", userPosts[1].(map[string]interface{})["caption"])

	resp, body, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := body["posts"].([]interface{})
	require.Len(t, all, 2)
	assert.Equal(t, float64(2), all[0].(map[string]interface{})["likes"])
	assert.Equal(t, float64(0), all[1].(map[string]interface{})["likes"])
}

func TestCreatePost_OnBehalfOfAnotherUserIsForbidden(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)
	bob := signUp(t, app)

	resp, _, _ := do(t, app, withToken(multipartRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/posts", alice.ID),
		map[string]string{"caption": "not mine"}, formFile{"photo", "x.png", testutil.PNG()}), bob.Token))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreatePost_FormErrors(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)

	resp, body, _ := do(t, app, withToken(multipartRequest(t, http.MethodPost, "/api/v1/users/currentuser/posts",
		map[string]string{}, formFile{"photo", "notes.txt", []byte("hello")}), alice.Token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].([]interface{})
	assert.Contains(t, errs, "Error in the Photo field - Images only!")
	assert.Contains(t, errs, "Error in the Caption field - This field is required.")
}

func TestLikePost_MissingPost(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)

	resp, _, _ := do(t, app, withToken(httptest.NewRequest(http.MethodPost, "/api/v1/posts/4242/like", nil), alice.Token))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowFlow(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)
	bob := signUp(t, app)

	resp, body, raw := do(t, app, withToken(jsonRequest(t, http.MethodPost, "/api/users/currentuser/follow",
		map[string]uint{"follow_id": bob.ID}), alice.Token))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, "You are now following "+bob.Username, body["message"])

	counts := func(id uint) map[string]interface{} {
		resp, body, _ := do(t, app, withToken(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/users/%d/follow", id), nil), alice.Token))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return body
	}

	assert.Equal(t, map[string]interface{}{"followers": float64(1), "following": float64(0)}, counts(bob.ID))
	assert.Equal(t, map[string]interface{}{"followers": float64(0), "following": float64(1)}, counts(alice.ID))
}

func TestFollow_Errors(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)
	bob := signUp(t, app)

	tests := []struct {
		name           string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{"Other actor", fmt.Sprintf("/api/users/%d/follow", bob.ID), map[string]uint{"follow_id": alice.ID}, http.StatusForbidden},
		{"Unknown target", "/api/users/currentuser/follow", map[string]uint{"follow_id": 9999}, http.StatusNotFound},
		{"Missing target", "/api/users/currentuser/follow", map[string]string{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _, _ := do(t, app, withToken(jsonRequest(t, http.MethodPost, tt.path, tt.body), alice.Token))
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetPhoto(t *testing.T) {
	srv, app := newTestApp(t)
	content := testutil.PNG()
	name, err := srv.blobs.Save("avatar.png", content)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/photo/"+name, nil), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(content, got))

	for _, target := range []string{
		"/api/v1/photo/missing.png",
		"/api/v1/photo/..%2f..%2fetc%2fpasswd",
		"/api/v1/photo/%2e%2e",
	} {
		resp, _, _ := do(t, app, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
	}
}

func TestUploadedPhotoIsServed(t *testing.T) {
	_, app := newTestApp(t)
	alice := signUp(t, app)

	resp, body, _ := do(t, app, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", alice.ID), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	photo := body["profile_photo"].(string)
	require.True(t, strings.HasPrefix(photo, PhotoPrefix))

	resp, _, _ = do(t, app, httptest.NewRequest(http.MethodGet, photo, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
