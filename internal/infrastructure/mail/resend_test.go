package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roronge/iuran04/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResendMailer_Send(t *testing.T) {
	var gotAuth string
	var gotBody sendEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer := NewResendMailer(config.MailConfig{
		APIKey:      "re_test_key",
		FromAddress: "noreply@rt04.example.com",
		FromName:    "Pengurus RT",
		BaseURL:     server.URL,
	}, zap.NewNop())

	err := mailer.Send(context.Background(), "budi@example.com", "Tagihan iuran", "<p>Halo</p>")
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "Pengurus RT <noreply@rt04.example.com>", gotBody.From)
	assert.Equal(t, []string{"budi@example.com"}, gotBody.To)
	assert.Equal(t, "Tagihan iuran", gotBody.Subject)
	assert.Equal(t, "<p>Halo</p>", gotBody.HTML)
}

func TestResendMailer_Send_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	mailer := NewResendMailer(config.MailConfig{
		APIKey:  "re_test_key",
		BaseURL: server.URL,
	}, zap.NewNop())

	err := mailer.Send(context.Background(), "budi@example.com", "Tagihan", "<p>Halo</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestNopMailer_Send(t *testing.T) {
	assert.NoError(t, NopMailer{}.Send(context.Background(), "a@b.com", "s", "b"))
}
