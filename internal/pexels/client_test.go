package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	client := NewClient("test-api-key")
	client.photoBaseURL = serverURL
	client.videoBaseURL = serverURL
	return client
}

func TestSearchVideosParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "nature", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"per_page": 10,
			"total_results": 1,
			"videos": [{
				"id": 857195,
				"image": "https://images.pexels.com/videos/857195/preview.jpg",
				"duration": 15,
				"user": {"id": 1, "name": "Ruvim Miksanskiy"},
				"video_files": [
					{"id": 1, "quality": "hd", "file_type": "video/mp4", "link": "https://player.pexels.com/857195.mp4"}
				]
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.SearchVideos(context.Background(), "nature", 10)
	require.NoError(t, err)

	require.Len(t, resp.Videos, 1)
	video := resp.Videos[0]
	assert.Equal(t, int64(857195), video.ID)
	assert.Equal(t, "Ruvim Miksanskiy", video.User.Name)
	assert.Equal(t, "https://player.pexels.com/857195.mp4", video.FirstPlayableLink())
}

func TestSearchVideosSurfacesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchVideos(context.Background(), "nature", 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchPhotosClampsPerPage(t *testing.T) {
	var perPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perPage = r.URL.Query().Get("per_page")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"per_page":80,"total_results":0,"photos":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchPhotos(context.Background(), "nature", 500)
	require.NoError(t, err)
	assert.Equal(t, "80", perPage)

	_, err = client.SearchPhotos(context.Background(), "nature", 0)
	require.NoError(t, err)
	assert.Equal(t, "15", perPage)
}

func TestFirstPlayableLink(t *testing.T) {
	var empty Video
	assert.Equal(t, "", empty.FirstPlayableLink())

	video := Video{VideoFiles: []VideoFile{
		{Link: ""},
		{Link: "https://player.pexels.com/fallback.mp4"},
	}}
	assert.Equal(t, "https://player.pexels.com/fallback.mp4", video.FirstPlayableLink())
}
