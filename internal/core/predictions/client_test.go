package predictions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"plant_name":    "Tomato",
			"health_status": "Early_blight",
			"confidence":    0.93,
			"message":       "The model is confident about the result.",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	prediction, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "Tomato", prediction.PlantName)
	assert.Equal(t, "Early_blight", prediction.HealthStatus)
	assert.InDelta(t, 0.93, prediction.Confidence, 0.001)
	assert.Contains(t, prediction.Message, "confident")
}

func TestHTTPClient_Predict_LowConfidenceResult(t *testing.T) {
	// The model still answers with a classification below its confidence
	// threshold; it just says so in the message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"plant_name":    "Potato",
			"health_status": "Late_blight",
			"confidence":    0.41,
			"message":       "The model is not confident about the result.",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	prediction, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "Late_blight", prediction.HealthStatus)
	assert.Contains(t, prediction.Message, "not confident")
}

func TestHTTPClient_PredictLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"plant_name":    "Tomato",
			"health_status": "healthy",
			"confidence":    0.99,
			"message":       "The model is confident about the result.",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	label, err := client.PredictLabel(context.Background(), []byte("fake-jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "healthy", label)
}

func TestHTTPClient_Predict_ServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	_, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Predict_RejectedImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "No file uploaded"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	_, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	require.Error(t, err)
	// A 4xx is the caller's fault, not an outage
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Predict_Unreachable(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", nil)
	_, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Predict_EmptyImage(t *testing.T) {
	client := NewHTTPClient("http://unused.test", nil)
	_, err := client.Predict(context.Background(), nil)
	assert.Error(t, err)
}

func TestHTTPClient_Predict_MissingHealthStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"confidence": 0.5})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, nil)
	_, err := client.Predict(context.Background(), []byte("fake-jpeg"))
	assert.Error(t, err)
}
