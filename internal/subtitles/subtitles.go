// Package subtitles resolves caption tracks for movies.
//
// Caption files live in a flat directory and follow the naming scheme
// <movieID>.<lang>.vtt. The track list is computed on every request and
// never persisted. Missing tracks can be materialized on demand through
// an external transcription API (see transcriber.go).
package subtitles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// served path prefix for static caption files
const servePrefix = "/captions"

// Track describes one caption file found for a movie
type Track struct {
	Language string `json:"language"` // ISO 639-1 code, e.g. "es"
	Label    string `json:"label"`    // human-readable name
	Path     string `json:"path"`     // served path under /captions
	Default  bool   `json:"default"`
}

var languageLabels = map[string]string{
	"en": "English",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
	"it": "Italiano",
	"pt": "Português",
	"ja": "日本語",
}

// Service scans the captions directory and drives on-demand generation
type Service struct {
	dir         string
	transcriber *Transcriber // nil when TRANSCRIBE_API_URL is absent
}

func NewService(dir string, transcriber *Transcriber) *Service {
	return &Service{dir: dir, transcriber: transcriber}
}

// GenerationEnabled reports whether the transcription API is configured
func (s *Service) GenerationEnabled() bool {
	return s.transcriber != nil
}

// ListTracks scans the captions directory for <movieID>.<lang>.vtt files.
// The Spanish track is marked default when present, else the first found.
// An empty list (not an error) is returned when no files match.
func (s *Service) ListTracks(movieID int64) ([]Track, error) {
	pattern := filepath.Join(s.dir, fmt.Sprintf("%d.*.vtt", movieID))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan captions dir: %w", err)
	}

	tracks := make([]Track, 0, len(matches))
	for _, match := range matches {
		lang, ok := parseLang(filepath.Base(match), movieID)
		if !ok {
			continue
		}
		tracks = append(tracks, Track{
			Language: lang,
			Label:    labelFor(lang),
			Path:     servePrefix + "/" + filepath.Base(match),
		})
	}

	markDefault(tracks)
	return tracks, nil
}

// Generate materializes caption files for the given languages, invoking the
// transcription API for each one that does not exist yet, then returns the
// full track list. Transcription is synchronous and slow; the caller's
// context bounds it. No retry is attempted on failure.
func (s *Service) Generate(ctx context.Context, movieID int64, videoURL string, languages []string) ([]Track, error) {
	if s.transcriber == nil {
		return nil, ErrTranscriptionDisabled
	}

	for _, lang := range languages {
		lang = strings.ToLower(lang)
		target := filepath.Join(s.dir, fmt.Sprintf("%d.%s.vtt", movieID, lang))
		if _, err := os.Stat(target); err == nil {
			continue // already materialized
		}

		vtt, err := s.transcriber.Transcribe(ctx, videoURL, lang)
		if err != nil {
			return nil, fmt.Errorf("transcribe %q track: %w", lang, err)
		}

		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return nil, fmt.Errorf("create captions dir: %w", err)
		}
		if err := os.WriteFile(target, []byte(vtt), 0o644); err != nil {
			return nil, fmt.Errorf("write caption file: %w", err)
		}
	}

	return s.ListTracks(movieID)
}

// parseLang extracts the language code from <movieID>.<lang>.vtt
func parseLang(name string, movieID int64) (string, bool) {
	parts := strings.Split(name, ".")
	if len(parts) != 3 || parts[0] != fmt.Sprintf("%d", movieID) || parts[2] != "vtt" {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return strings.ToLower(parts[1]), true
}

func labelFor(lang string) string {
	if label, ok := languageLabels[lang]; ok {
		return label
	}
	return strings.ToUpper(lang)
}

// markDefault flags the Spanish track, else the first one
func markDefault(tracks []Track) {
	for i := range tracks {
		if tracks[i].Language == "es" {
			tracks[i].Default = true
			return
		}
	}
	if len(tracks) > 0 {
		tracks[0].Default = true
	}
}
