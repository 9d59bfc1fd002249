package subtitles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrTranscriptionDisabled = errors.New("transcription API is not configured")

// Transcriber calls an external speech-to-text service that accepts a media
// URL and returns WebVTT captions. The call is synchronous and network
// bound, often tens of seconds; a failed call surfaces immediately with no
// retry or backoff.
type Transcriber struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewTranscriber(apiURL, apiKey string) *Transcriber {
	return &Transcriber{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type transcribeRequest struct {
	MediaURL string `json:"media_url"`
	Language string `json:"language"`
	Format   string `json:"format"`
}

type transcribeResponse struct {
	Status string `json:"status"`
	VTT    string `json:"vtt"`
	Error  string `json:"error,omitempty"`
}

// Transcribe submits the media URL and returns the generated VTT content
func (t *Transcriber) Transcribe(ctx context.Context, mediaURL, language string) (string, error) {
	payload, err := json.Marshal(transcribeRequest{
		MediaURL: mediaURL,
		Language: language,
		Format:   "vtt",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CineHub/1.0")
	if t.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.apiKey))
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("transcription HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse transcription response: %w", err)
	}

	if result.Status != "completed" || result.VTT == "" {
		return "", fmt.Errorf("transcription did not complete: %s", result.Error)
	}

	return result.VTT, nil
}
