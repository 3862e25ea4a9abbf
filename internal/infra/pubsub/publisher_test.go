package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/config"
	"bookshelf/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleEvent() *service.BookImportedEvent {
	return &service.BookImportedEvent{
		RequestID:   "req-1",
		BookID:      "0b6d0b0e-0000-5000-8000-000000000001",
		ExternalKey: "/works/OL27448W",
		Title:       "The Lord of the Rings",
		Author:      "J.R.R. Tolkien",
		ImportedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}} {
		publisher, err := NewEventPublisher(context.Background(), cfg, testLogger())
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishBookImported(context.Background(), sampleEvent()))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: config.PubSubProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "t"}},
		{"google without topic", &config.PubSubConfig{Provider: config.PubSubProviderGoogle, ProjectID: "p"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(context.Background(), tt.cfg, testLogger())
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(context.Background(), &config.PubSubConfig{
		Provider:      config.PubSubProviderLocal,
		LocalEndpoint: server.URL,
	}, testLogger())
	require.NoError(t, err)

	require.NoError(t, publisher.PublishBookImported(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "book.imported", got.Message.Attributes["event_type"])
	assert.Equal(t, "/works/OL27448W", got.Message.Attributes["external_key"])
	assert.NotEmpty(t, got.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.BookImportedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "The Lord of the Rings", event.Title)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	assert.Error(t, publisher.PublishBookImported(context.Background(), sampleEvent()))
}

