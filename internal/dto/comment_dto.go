package dto

// CreateCommentRequest for creating a comment on a movie.
// Rating is a JSON number so fractional input survives binding; the service
// rounds it to the nearest integer and clamps it into [1,5]. A missing rating
// defaults to 3. Out-of-range values are clamped, never rejected.
type CreateCommentRequest struct {
	Author  string   `json:"author" binding:"required,min=1,max=100"`
	Content string   `json:"content" binding:"required,min=1,max=5000"`
	Rating  *float64 `json:"rating,omitempty"`
}
