// Package playlist keeps the ordered list of documents a reading session
// moves through.
package playlist

import (
	"path/filepath"
	"strings"
)

// Document is a single item in the reading list.
type Document struct {
	Title string
	Path  string
}

// Playlist manages an ordered list of documents. It is only mutated from
// Bubbletea's single-threaded Update loop.
type Playlist struct {
	docs    []Document
	current int
}

// New creates a Playlist from the given documents.
func New(docs []Document) *Playlist {
	return &Playlist{docs: docs}
}

// FromPaths builds a Playlist with titles derived from file names.
func FromPaths(paths []string) *Playlist {
	docs := make([]Document, len(paths))
	for i, p := range paths {
		base := filepath.Base(p)
		docs[i] = Document{
			Title: strings.TrimSuffix(base, filepath.Ext(base)),
			Path:  p,
		}
	}
	return New(docs)
}

// Current returns a pointer to the current document, or nil if empty.
func (p *Playlist) Current() *Document {
	if p.current < 0 || p.current >= len(p.docs) {
		return nil
	}
	return &p.docs[p.current]
}

// Advance moves forward by one document. Returns false if already at the end.
func (p *Playlist) Advance() bool {
	if p.current+1 >= len(p.docs) {
		return false
	}
	p.current++
	return true
}

// Previous moves back by one document. Returns false if already at the start.
func (p *Playlist) Previous() bool {
	if p.current <= 0 {
		return false
	}
	p.current--
	return true
}

// Len returns the number of documents.
func (p *Playlist) Len() int {
	return len(p.docs)
}

// CurrentIndex returns the zero-based index of the current document.
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// SetCurrentIndex sets the current document index directly. Out-of-range
// values are ignored.
func (p *Playlist) SetCurrentIndex(i int) {
	if i >= 0 && i < len(p.docs) {
		p.current = i
	}
}
