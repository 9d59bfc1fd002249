package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"cinehub/internal/dto"
	"cinehub/internal/models"
	"cinehub/internal/pexels"
	"cinehub/internal/repository"
)

var ErrPexelsDisabled = errors.New("pexels API is not configured")

const importWorkers = 4

// PexelsAPI is the slice of the Pexels client the import service consumes
type PexelsAPI interface {
	SearchPhotos(ctx context.Context, query string, perPage int) (*pexels.PhotoSearchResponse, error)
	SearchVideos(ctx context.Context, query string, perPage int) (*pexels.VideoSearchResponse, error)
}

type ImportService interface {
	SearchPhotos(ctx context.Context, query string, perPage int) (*pexels.PhotoSearchResponse, error)
	SearchVideos(ctx context.Context, query string, perPage int) (*pexels.VideoSearchResponse, error)
	Import(ctx context.Context, query string, perPage int) (*dto.ImportResult, error)
}

type importService struct {
	client    PexelsAPI // nil when PEXELS_API_KEY is absent
	movieRepo repository.MovieRepository
}

func NewImportService(client PexelsAPI, movieRepo repository.MovieRepository) ImportService {
	return &importService{
		client:    client,
		movieRepo: movieRepo,
	}
}

// SearchPhotos proxies the photo search endpoint
func (s *importService) SearchPhotos(ctx context.Context, query string, perPage int) (*pexels.PhotoSearchResponse, error) {
	if s.client == nil {
		return nil, ErrPexelsDisabled
	}
	return s.client.SearchPhotos(ctx, query, perPage)
}

// SearchVideos proxies the video search endpoint
func (s *importService) SearchVideos(ctx context.Context, query string, perPage int) (*pexels.VideoSearchResponse, error) {
	if s.client == nil {
		return nil, ErrPexelsDisabled
	}
	return s.client.SearchVideos(ctx, query, perPage)
}

// Import runs a best-effort bulk import of search results as movies.
// Entries without a playable rendition link and entries whose video URL is
// already in the catalog are skipped; persistence failures are counted but
// do not abort the batch. There is no rollback.
func (s *importService) Import(ctx context.Context, query string, perPage int) (*dto.ImportResult, error) {
	if s.client == nil {
		return nil, ErrPexelsDisabled
	}

	response, err := s.client.SearchVideos(ctx, query, perPage)
	if err != nil {
		return nil, err
	}

	var imported, skipped, failed atomic.Int64

	pool := pexels.NewWorkerPool(importWorkers)
	pool.Start()

	for i := range response.Videos {
		video := response.Videos[i]
		pool.Submit(func(ctx context.Context) error {
			link := video.FirstPlayableLink()
			if link == "" || video.Image == "" {
				skipped.Add(1)
				return nil
			}

			// dedup by exact video URL match
			exists, err := s.movieRepo.ExistsByVideoURL(link)
			if err != nil {
				failed.Add(1)
				return err
			}
			if exists {
				skipped.Add(1)
				return nil
			}

			movie := &models.Movie{
				Title:    fmt.Sprintf("%s #%d", query, video.ID),
				Genre:    &query,
				Rating:   0,
				VideoURL: link,
				ImageURL: video.Image,
			}
			if video.User.Name != "" {
				author := video.User.Name
				movie.Author = &author
			}

			if err := s.movieRepo.Create(movie); err != nil {
				failed.Add(1)
				return err
			}

			imported.Add(1)
			return nil
		})
	}

	pool.Wait()

	return &dto.ImportResult{
		Query:    query,
		Imported: int(imported.Load()),
		Skipped:  int(skipped.Load()),
		Failed:   int(failed.Load()),
	}, nil
}
