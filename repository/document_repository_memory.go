package repository

import (
	"sync"

	"faraid-agent/domain"
)

// DocumentRepositoryMemory is an in-memory DocumentRepository. Safe for
// concurrent use by the bot and the HTTP handlers.
type DocumentRepositoryMemory struct {
	mu   sync.RWMutex
	data map[int64][]domain.Document
}

func NewDocumentRepositoryMemory() *DocumentRepositoryMemory {
	return &DocumentRepositoryMemory{
		data: make(map[int64][]domain.Document),
	}
}

func (r *DocumentRepositoryMemory) Save(doc domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.UserID] = append(r.data[doc.UserID], doc)
	return nil
}

func (r *DocumentRepositoryMemory) ByUser(userID int64) []domain.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := make([]domain.Document, len(r.data[userID]))
	copy(docs, r.data[userID])
	return docs
}
