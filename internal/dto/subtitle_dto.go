package dto

// GenerateSubtitlesRequest asks the transcription service to materialize
// caption files for a movie in the given languages.
type GenerateSubtitlesRequest struct {
	Languages []string `json:"languages" binding:"required,min=1,dive,len=2"`
}
