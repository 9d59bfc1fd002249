package pexels

// Response shapes for the Pexels photo and video search APIs, normalized
// to the subset of fields the backend consumes.

// PhotoSource holds the rendition URLs of a photo
type PhotoSource struct {
	Original  string `json:"original"`
	Large2x   string `json:"large2x"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// Photo is a single photo search result
type Photo struct {
	ID           int64       `json:"id"`
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	URL          string      `json:"url"`
	Photographer string      `json:"photographer"`
	Alt          string      `json:"alt"`
	Src          PhotoSource `json:"src"`
}

// PhotoSearchResponse is the /v1/search response
type PhotoSearchResponse struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
	NextPage     string  `json:"next_page,omitempty"`
}

// VideoFile is one encoded rendition of a video
type VideoFile struct {
	ID       int64  `json:"id"`
	Quality  string `json:"quality"` // "hd", "sd", ...
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Link     string `json:"link"`
}

// VideoUser is the videographer attribution
type VideoUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Video is a single video search result
type Video struct {
	ID         int64       `json:"id"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	URL        string      `json:"url"`
	Image      string      `json:"image"` // thumbnail
	Duration   int         `json:"duration"`
	User       VideoUser   `json:"user"`
	VideoFiles []VideoFile `json:"video_files"`
}

// VideoSearchResponse is the /videos/search response
type VideoSearchResponse struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Videos       []Video `json:"videos"`
	NextPage     string  `json:"next_page,omitempty"`
}

// FirstPlayableLink returns the link of the first rendition carrying one,
// or "" when the entry has no playable file at all.
func (v *Video) FirstPlayableLink() string {
	for _, f := range v.VideoFiles {
		if f.Link != "" {
			return f.Link
		}
	}
	return ""
}
