package subtitles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCaption(t *testing.T, dir, name string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte("WEBVTT\n\n"), 0o644)
	require.NoError(t, err)
}

func TestListTracksEmptyDirectory(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	tracks, err := svc.ListTracks(7)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestListTracksSpanishIsDefault(t *testing.T) {
	dir := t.TempDir()
	writeCaption(t, dir, "7.en.vtt")
	writeCaption(t, dir, "7.es.vtt")
	writeCaption(t, dir, "7.fr.vtt")

	svc := NewService(dir, nil)
	tracks, err := svc.ListTracks(7)
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	byLang := map[string]Track{}
	for _, track := range tracks {
		byLang[track.Language] = track
	}

	assert.True(t, byLang["es"].Default)
	assert.False(t, byLang["en"].Default)
	assert.False(t, byLang["fr"].Default)
	assert.Equal(t, "Español", byLang["es"].Label)
	assert.Equal(t, "/captions/7.es.vtt", byLang["es"].Path)
}

func TestListTracksFirstIsDefaultWithoutSpanish(t *testing.T) {
	dir := t.TempDir()
	writeCaption(t, dir, "7.de.vtt")
	writeCaption(t, dir, "7.en.vtt")

	svc := NewService(dir, nil)
	tracks, err := svc.ListTracks(7)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	defaults := 0
	for _, track := range tracks {
		if track.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.True(t, tracks[0].Default)
}

func TestListTracksIgnoresOtherMovies(t *testing.T) {
	dir := t.TempDir()
	writeCaption(t, dir, "7.en.vtt")
	writeCaption(t, dir, "8.en.vtt")
	writeCaption(t, dir, "77.en.vtt")

	svc := NewService(dir, nil)
	tracks, err := svc.ListTracks(7)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "/captions/7.en.vtt", tracks[0].Path)
}

func TestGenerateMaterializesMissingTracks(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"completed","vtt":"WEBVTT\n\n00:00.000 --> 00:02.000\nhola\n"}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	svc := NewService(dir, NewTranscriber(server.URL, "test-key"))

	tracks, err := svc.Generate(context.Background(), 7, "https://videos.example.com/7.mp4", []string{"es"})
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "es", tracks[0].Language)
	assert.True(t, tracks[0].Default)
	assert.Equal(t, 1, requests)

	data, err := os.ReadFile(filepath.Join(dir, "7.es.vtt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "WEBVTT")

	// A second generation finds the file and skips the API call
	_, err = svc.Generate(context.Background(), 7, "https://videos.example.com/7.mp4", []string{"es"})
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestGenerateSurfacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewService(t.TempDir(), NewTranscriber(server.URL, ""))

	_, err := svc.Generate(context.Background(), 7, "https://videos.example.com/7.mp4", []string{"en"})
	assert.Error(t, err)
}

func TestGenerateWithoutTranscriberIsDisabled(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	_, err := svc.Generate(context.Background(), 7, "https://videos.example.com/7.mp4", []string{"en"})
	assert.ErrorIs(t, err, ErrTranscriptionDisabled)
}

func TestParseLang(t *testing.T) {
	cases := []struct {
		name string
		lang string
		ok   bool
	}{
		{"7.en.vtt", "en", true},
		{"7.ES.vtt", "es", true},
		{"8.en.vtt", "", false},
		{"7.vtt", "", false},
		{"7..vtt", "", false},
		{"7.en.srt", "", false},
	}

	for _, tc := range cases {
		lang, ok := parseLang(tc.name, 7)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.lang, lang, tc.name)
	}
}
