package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGetUserReturnsSeededProfile(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/buyer_1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "Sarah Chen", user.Name)
	assert.Equal(t, "buyer", user.Role)
}

func TestGetUnknownUserAnswersNull(t *testing.T) {
	app, _ := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(body))
}

func TestUpsertUpdatesExistingProfileWithoutDuplicate(t *testing.T) {
	app, db := newTestApp(t, nil)

	resp, err := app.Test(putJSON(t, "/api/users/buyer_1", map[string]string{
		"name":  "Sarah Chen-Okafor",
		"email": "sarah.chen@example.com",
		"bio":   "Now VP People.",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var users []models.User
	require.NoError(t, db.Where("id = ?", "buyer_1").Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "Sarah Chen-Okafor", users[0].Name)
	assert.Equal(t, "Now VP People.", users[0].Bio)
}

func TestUpsertNeverChangesRole(t *testing.T) {
	app, db := newTestApp(t, nil)

	resp, err := app.Test(putJSON(t, "/api/users/buyer_1", map[string]string{
		"name":  "Sarah Chen",
		"email": "sarah.chen@example.com",
		"role":  "seller",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "buyer_1").Error)
	assert.Equal(t, "buyer", user.Role)
}

func TestUpsertCreatesMissingProfileWithDefaultRole(t *testing.T) {
	app, db := newTestApp(t, nil)

	resp, err := app.Test(putJSON(t, "/api/users/consultant_7", map[string]string{
		"name":  "Priya Nair",
		"email": "priya.nair@example.com",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "consultant_7").Error)
	assert.Equal(t, "Priya Nair", user.Name)
	assert.Equal(t, "buyer", user.Role)
}

func TestUpsertDuplicateEmailSurfacesRawStoreError(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// seller_1 already owns this email address
	resp, err := app.Test(putJSON(t, "/api/users/imposter", map[string]string{
		"name":  "Someone Else",
		"email": "marcus.webb@example.com",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Error)
}
