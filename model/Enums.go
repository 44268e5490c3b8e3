package model

// Role controls which admin operations a user may perform.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleEditor         Role = "editor"
	RoleContentCreator Role = "content_creator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleContentCreator:
		return true
	}
	return false
}

// Language of a content record. The site is bilingual.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

func (l Language) IsValid() bool {
	return l == LangEnglish || l == LangArabic
}

// BlogPostStatus is the editorial state of a blog post. Only "published"
// posts are visible on the public site.
type BlogPostStatus string

const (
	BlogStatusDraft     BlogPostStatus = "draft"
	BlogStatusReview    BlogPostStatus = "review"
	BlogStatusScheduled BlogPostStatus = "scheduled"
	BlogStatusPublished BlogPostStatus = "published"
)

func (s BlogPostStatus) IsValid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusReview, BlogStatusScheduled, BlogStatusPublished:
		return true
	}
	return false
}

// PageStatus is the editorial state of a CMS page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

func (s PageStatus) IsValid() bool {
	return s == PageStatusDraft || s == PageStatusPublished
}

// SubmissionStatus tracks triage of a contact submission. Every submission
// starts at "new"; admins may move it to "read" or "replied".
type SubmissionStatus string

const (
	SubmissionNew     SubmissionStatus = "new"
	SubmissionRead    SubmissionStatus = "read"
	SubmissionReplied SubmissionStatus = "replied"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionNew, SubmissionRead, SubmissionReplied:
		return true
	}
	return false
}
