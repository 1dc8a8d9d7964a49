package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClassifySuccess(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`[[{"label":"POSITIVE","score":0.92},{"label":"NEGATIVE","score":0.08}]]`))
	}))
	defer srv.Close()

	client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
	result := client.Classify(context.Background(), "Great day!")

	require.NotNil(t, result)
	assert.Equal(t, "POSITIVE", result.Label)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.InDelta(t, 0.92, result.Score, 1e-9)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.JSONEq(t, `{"inputs":"Great day!"}`, gotBody)
}

func TestClassifyNegativeSignsScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"POSITIVE","score":0.25},{"label":"NEGATIVE","score":0.75}]]`))
	}))
	defer srv.Close()

	client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
	result := client.Classify(context.Background(), "Terrible day")

	require.NotNil(t, result)
	assert.Equal(t, "NEGATIVE", result.Label)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
	assert.InDelta(t, -0.75, result.Score, 1e-9)
}

func TestClassifyNeutralLabelZeroScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"MIXED","score":0.6}]]`))
	}))
	defer srv.Close()

	client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
	result := client.Classify(context.Background(), "meh")

	require.NotNil(t, result)
	assert.Equal(t, "MIXED", result.Label)
	assert.Zero(t, result.Score)
}

func TestClassifySkippedWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the API key is missing")
	}))
	defer srv.Close()

	client := NewSentimentClient(srv.URL, "", time.Second, testLogger())
	assert.Nil(t, client.Classify(context.Background(), "Great day!"))
}

func TestClassifySkippedForBlankText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for blank text")
	}))
	defer srv.Close()

	client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
	assert.Nil(t, client.Classify(context.Background(), ""))
	assert.Nil(t, client.Classify(context.Background(), "   \n\t"))
}

func TestClassifyDegradesOnFailure(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
		assert.Nil(t, client.Classify(context.Background(), "text"))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected":"shape"}`))
		}))
		defer srv.Close()

		client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
		assert.Nil(t, client.Classify(context.Background(), "text"))
	})

	t.Run("empty candidate list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[[]]`))
		}))
		defer srv.Close()

		client := NewSentimentClient(srv.URL, "test-key", time.Second, testLogger())
		assert.Nil(t, client.Classify(context.Background(), "text"))
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewSentimentClient("http://127.0.0.1:1", "test-key", time.Second, testLogger())
		assert.Nil(t, client.Classify(context.Background(), "text"))
	})

	t.Run("timeout aborts the call", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client := NewSentimentClient(srv.URL, "test-key", 50*time.Millisecond, testLogger())
		start := time.Now()
		assert.Nil(t, client.Classify(context.Background(), "text"))
		assert.Less(t, time.Since(start), time.Second)
	})
}
