package dto

// ImportRequest asks for a bulk import of Pexels videos as movies
type ImportRequest struct {
	Query   string `json:"query" binding:"required,min=1,max=100"`
	PerPage int    `json:"per_page" binding:"omitempty,gte=1,lte=80"`
}

// ImportResult reports the outcome of a best-effort bulk import.
// Partial success is normal: some entries imported, some skipped
// (no playable link or duplicate URL), some failed to persist.
type ImportResult struct {
	Query    string `json:"query"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}
