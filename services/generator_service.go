package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrGeneratorUnavailable means the external text-generation service
// could not be reached at all.
var ErrGeneratorUnavailable = errors.New("workout generator unreachable")

// GeneratorService proxies free-text workout-generation requests to the
// external AI service.
type GeneratorService struct {
	apiURL string
	client *http.Client
}

func NewGeneratorService() *GeneratorService {
	apiURL := os.Getenv("AI_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5000/generate"
	}
	return &GeneratorService{
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate forwards inputText and passes the upstream answer through.
// JSON responses are returned as-is; anything else is wrapped in a
// {"generatedText": ...} object.
func (s *GeneratorService) Generate(inputText string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{"inputText": inputText})
	if err != nil {
		return nil, err
	}

	preview := inputText
	if len(preview) > 100 {
		preview = preview[:100]
	}
	log.Infof("Sending request to generator API: %s...", preview)

	resp, err := s.client.Post(s.apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generator response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator API error %d: %s", resp.StatusCode, string(body))
	}

	if json.Valid(body) {
		return json.RawMessage(body), nil
	}
	wrapped, err := json.Marshal(map[string]string{"generatedText": string(body)})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(wrapped), nil
}

// Status probes the upstream service with a throwaway prompt.
func (s *GeneratorService) Status() (string, int) {
	payload, _ := json.Marshal(map[string]string{"inputText": "Connection test"})
	resp, err := s.client.Post(s.apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "offline", 0
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK {
		return "online", resp.StatusCode
	}
	return "error", resp.StatusCode
}
