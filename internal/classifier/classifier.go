package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/docshelf/docshelf/internal/common"
)

// Prediction is a single category suggestion from the ML service.
type Prediction struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Classifier suggests document categories from extracted text.
type Classifier interface {
	IsAvailable(ctx context.Context) bool
	Classify(ctx context.Context, text string) (*Prediction, error)
}

type httpClassifier struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPClassifier talks to the document classification service over
// its REST API.
func NewHTTPClassifier(cfg common.MLConfig, logger *slog.Logger) Classifier {
	return &httpClassifier{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *httpClassifier) IsAvailable(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("classifier.health.unreachable", "error", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func (c *httpClassifier) Classify(ctx context.Context, text string) (*Prediction, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, common.WrapError(err, "encode classify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, common.WrapError(err, "build classify request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, common.WrapError(err, "call classifier")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewAppError("CLASSIFIER_STATUS",
			fmt.Sprintf("classifier returned %d", resp.StatusCode), nil)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, common.WrapError(err, "decode classify response")
	}
	return &pred, nil
}
