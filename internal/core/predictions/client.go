package predictions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrUnavailable is returned when the disease-model service cannot be reached
// or answers with a server fault
var ErrUnavailable = errors.New("prediction service unavailable")

// Prediction is the disease model's classification of a plant image.
// HealthStatus is the disease label used as a plant's health status;
// Message carries the model's own confidence commentary.
type Prediction struct {
	PlantName    string  `json:"plant_name"`
	HealthStatus string  `json:"health_status"`
	Confidence   float64 `json:"confidence"`
	Message      string  `json:"message"`
}

// Client classifies plant images via the external disease model
type Client interface {
	Predict(ctx context.Context, image []byte) (*Prediction, error)
	// PredictLabel is a convenience for callers that only need the label.
	// Satisfies plants.HealthPredictor and versions.HealthPredictor.
	PredictLabel(ctx context.Context, image []byte) (string, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a prediction client against the model service's base URL.
// client can be nil, in which case a default with a 30 second timeout is used.
func NewHTTPClient(baseURL string, client *http.Client) Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpClient{
		baseURL: baseURL,
		client:  client,
	}
}

// Predict sends the image to the model's /predict endpoint as a multipart
// upload and decodes the classification. Each call carries a correlation id
// so failures can be matched against the model service's logs.
func (c *httpClient) Predict(ctx context.Context, image []byte) (*Prediction, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is required")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "plant.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := c.baseURL + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close prediction response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "... (truncated)"
		}
		log.Printf("[PREDICT-ERROR] status=%d body=%s", resp.StatusCode, bodyPreview)
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: model returned %d", ErrUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("model rejected image: status %d", resp.StatusCode)
	}

	var prediction Prediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return nil, fmt.Errorf("failed to parse prediction response: %w", err)
	}
	if prediction.HealthStatus == "" {
		return nil, fmt.Errorf("prediction response missing health_status")
	}

	return &prediction, nil
}

func (c *httpClient) PredictLabel(ctx context.Context, image []byte) (string, error) {
	prediction, err := c.Predict(ctx, image)
	if err != nil {
		return "", err
	}
	return prediction.HealthStatus, nil
}
