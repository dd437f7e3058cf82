package core

import "github.com/bethropolis/kite/internal/logger"

// BufferList is the ordered set of open documents and which one is active.
// There is always at least one document.
type BufferList struct {
	docs   []*Document
	active int
}

// NewBufferList creates a list holding docs, or a single scratch document
// when docs is empty. The first document is active.
func NewBufferList(docs ...*Document) *BufferList {
	if len(docs) == 0 {
		docs = []*Document{NewDocument()}
	}
	return &BufferList{docs: docs}
}

// Active returns the active document.
func (b *BufferList) Active() *Document {
	return b.docs[b.active]
}

// Index returns the 0-based index of the active document.
func (b *BufferList) Index() int {
	return b.active
}

// Count returns the number of documents.
func (b *BufferList) Count() int {
	return len(b.docs)
}

// All returns the documents for iteration.
func (b *BufferList) All() []*Document {
	return b.docs
}

// Next activates the following document, wrapping around.
func (b *BufferList) Next() {
	b.active = (b.active + 1) % len(b.docs)
	logger.Debugf("BufferList: switched to %d/%d", b.active+1, len(b.docs))
}

// Prev activates the preceding document, wrapping around.
func (b *BufferList) Prev() {
	b.active = (b.active - 1 + len(b.docs)) % len(b.docs)
	logger.Debugf("BufferList: switched to %d/%d", b.active+1, len(b.docs))
}

// AnyModified reports whether some document has unsaved changes.
func (b *BufferList) AnyModified() bool {
	for _, d := range b.docs {
		if d.Modified() {
			return true
		}
	}
	return false
}
