package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metagym/metagym-api/internal/config"
	"github.com/metagym/metagym-api/internal/email"
	ierr "github.com/metagym/metagym-api/internal/errors"
	"github.com/metagym/metagym-api/internal/logger"
)

func newTestSender(t *testing.T, endpoint string) *HTTPSender {
	t.Helper()

	cfg := config.GetDefaultConfig()
	cfg.Email.CredentialsURL = endpoint
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	return NewHTTPSender(cfg, log)
}

func credentialsRequest() email.CredentialsEmailRequest {
	return email.CredentialsEmailRequest{
		ToEmail:  "owner@iron.gym",
		ToName:   "Ana García López",
		GymName:  "Iron Gym",
		Email:    "admin@iron.gym",
		Password: "s3cret-pass",
		TenantID: "tenant_K3F9X2QA",
		GymCode:  "GYM4T7QPX",
	}
}

func TestHTTPSenderPostsCredentialsPayload(t *testing.T) {
	var got map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"id": "msg_1"},
		})
	}))
	defer srv.Close()

	sender := newTestSender(t, srv.URL)
	require.NoError(t, sender.SendCredentials(context.Background(), credentialsRequest()))

	// Field names are part of the delivery contract.
	assert.Equal(t, "owner@iron.gym", got["toEmail"])
	assert.Equal(t, "Ana García López", got["toName"])
	assert.Equal(t, "Iron Gym", got["gymName"])
	assert.Equal(t, "admin@iron.gym", got["email"])
	assert.Equal(t, "s3cret-pass", got["password"])
	assert.Equal(t, "tenant_K3F9X2QA", got["tenantId"])
	assert.Equal(t, "GYM4T7QPX", got["gymCode"])
}

func TestHTTPSenderRejectsUnsuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "mail provider unavailable",
		})
	}))
	defer srv.Close()

	sender := newTestSender(t, srv.URL)
	err := sender.SendCredentials(context.Background(), credentialsRequest())
	require.Error(t, err)
	assert.True(t, ierr.Is(err, ierr.ErrHTTPClient))
}

func TestHTTPSenderRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := newTestSender(t, srv.URL)
	err := sender.SendCredentials(context.Background(), credentialsRequest())
	require.Error(t, err)
	assert.True(t, ierr.Is(err, ierr.ErrHTTPClient))
}

func TestHTTPSenderRequiresEndpoint(t *testing.T) {
	sender := newTestSender(t, "")
	err := sender.SendCredentials(context.Background(), credentialsRequest())
	require.Error(t, err)
	assert.False(t, ierr.Is(err, ierr.ErrHTTPClient))
}
