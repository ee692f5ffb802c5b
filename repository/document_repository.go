package repository

import "faraid-agent/domain"

// DocumentRepository stores opaque user documents (rendered calculations,
// drafts). Content is write-once; documents are listed, never re-parsed.
type DocumentRepository interface {
	Save(doc domain.Document) error
	ByUser(userID int64) []domain.Document
}
