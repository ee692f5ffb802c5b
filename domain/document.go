package domain

import "time"

// Document is an opaque stored artifact (a rendered calculation, a draft
// contract). The content is never re-parsed after saving.
type Document struct {
	Filename  string
	UserID    int64
	Category  string
	Name      string
	Content   []byte
	DocType   string
	CreatedAt time.Time
}
