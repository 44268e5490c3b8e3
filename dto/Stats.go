package dto

// Stats backs the admin dashboard counters.
type Stats struct {
	Pages              int64 `json:"pages"`
	CaseStudies        int64 `json:"caseStudies"`
	BlogPosts          int64 `json:"blogPosts"`
	ContactSubmissions int64 `json:"contactSubmissions"`
}
