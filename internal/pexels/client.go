package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	photoBaseURL = "https://api.pexels.com/v1"
	videoBaseURL = "https://api.pexels.com/videos"

	// Pexels allows 200 requests per hour on the free plan; keep well under it
	rateLimit = 1
	rateBurst = 5

	defaultPerPage = 15
	maxPerPage     = 80
)

// Client is a thin wrapper over the Pexels photo/video search API.
// Requests are rate limited and carry a fixed timeout. Failures surface
// immediately to the caller; there is no retry policy.
type Client struct {
	photoBaseURL string
	videoBaseURL string
	apiKey       string
	httpClient   *http.Client
	rateLimiter  *rate.Limiter
}

// NewClient creates a new Pexels API client
func NewClient(apiKey string) *Client {
	return &Client{
		photoBaseURL: photoBaseURL,
		videoBaseURL: videoBaseURL,
		apiKey:       apiKey,
		rateLimiter:  rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SearchPhotos queries the photo search endpoint
func (c *Client) SearchPhotos(ctx context.Context, query string, perPage int) (*PhotoSearchResponse, error) {
	params := buildSearchParams(query, perPage)

	var response PhotoSearchResponse
	if err := c.doRequest(ctx, c.photoBaseURL+"/search", params, &response); err != nil {
		return nil, fmt.Errorf("failed to search photos: %w", err)
	}
	return &response, nil
}

// SearchVideos queries the video search endpoint
func (c *Client) SearchVideos(ctx context.Context, query string, perPage int) (*VideoSearchResponse, error) {
	params := buildSearchParams(query, perPage)

	var response VideoSearchResponse
	if err := c.doRequest(ctx, c.videoBaseURL+"/search", params, &response); err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	return &response, nil
}

// doRequest performs a rate-limited GET and decodes the JSON response
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	fullURL := endpoint
	if params != nil {
		fullURL += "?" + params.Encode()
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "CineHub/1.0")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func buildSearchParams(query string, perPage int) url.Values {
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	return params
}
