// Package editor holds the operator's working copy of the directory and
// the fixed vocabulary of structural edits. It is decoupled from any
// trigger mechanism: the HTTP layer, a script, or a test can drive it the
// same way. Nothing here touches storage; only Snapshot followed by a
// directory commit persists anything.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linkdeck/linkdeck/internal/domain"
)

var (
	// ErrDuplicateCategory is returned when an add or rename would produce
	// two categories with the same name.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrCategoryNotFound is returned when an operation targets a category
	// that does not exist in the working copy.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrIndexOutOfRange is returned when a site index does not exist.
	// Given a correctly driven editor this never happens, so it fails
	// loudly instead of corrupting the working copy.
	ErrIndexOutOfRange = errors.New("site index out of range")

	// ErrEmptyName is returned when a category name trims to nothing.
	ErrEmptyName = errors.New("empty category name")
)

// SiteRef identifies the site currently open in the edit modal.
type SiteRef struct {
	Category string
	Index    int
}

// Session is an in-memory working copy of the document. All mutating
// operations are synchronous, apply immediately, and leave the copy
// unchanged when they fail. A session is created from a successful read
// and discarded after commit; it has no persistence of its own.
type Session struct {
	doc     domain.Document
	active  string
	editing *SiteRef
}

// NewSession starts a session from a document. The document is deep
// copied, so later edits never leak into the caller's copy. The first
// category, if any, starts out active.
func NewSession(doc domain.Document) *Session {
	s := &Session{doc: doc.Clone()}
	if s.doc == nil {
		s.doc = domain.Document{}
	}
	if len(s.doc) > 0 {
		s.active = s.doc[0].Name
	}
	return s
}

// Document returns a deep copy of the current working state. Unlike
// Snapshot it applies no normalization; it is meant for rendering.
func (s *Session) Document() domain.Document {
	return s.doc.Clone()
}

// Active returns the name of the active category, or "" when the
// working copy has no categories.
func (s *Session) Active() string {
	return s.active
}

// SetActive switches the active category (the UI tab switch).
func (s *Session) SetActive(name string) error {
	if s.doc.Find(name) < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	s.active = name
	return nil
}

// BeginSiteEdit marks a site as currently being edited, scoped to one
// edit-modal lifecycle.
func (s *Session) BeginSiteEdit(category string, index int) error {
	i := s.doc.Find(category)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	if index < 0 || index >= len(s.doc[i].Sites) {
		return fmt.Errorf("%w: %d in category %q", ErrIndexOutOfRange, index, category)
	}
	s.editing = &SiteRef{Category: category, Index: index}
	return nil
}

// Editing reports the site currently open for editing, if any.
func (s *Session) Editing() (SiteRef, bool) {
	if s.editing == nil {
		return SiteRef{}, false
	}
	return *s.editing, true
}

// ClearSiteEdit closes the edit-modal reference (cancel path).
func (s *Session) ClearSiteEdit() {
	s.editing = nil
}

// AddCategory appends a new empty category and makes it active.
func (s *Session) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if s.doc.Find(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	s.doc = append(s.doc, domain.Category{Name: name, Sites: []domain.Site{}})
	s.active = name
	return nil
}

// RenameCategory renames a category in place, preserving its position
// and site order. Renaming to the same trimmed name is a no-op.
func (s *Session) RenameCategory(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	if newName == oldName {
		return nil
	}
	i := s.doc.Find(oldName)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, oldName)
	}
	if s.doc.Find(newName) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, newName)
	}
	s.doc[i].Name = newName
	if s.active == oldName {
		s.active = newName
	}
	if s.editing != nil && s.editing.Category == oldName {
		s.editing.Category = newName
	}
	return nil
}

// DeleteCategory removes a category and all its sites. When the active
// category is deleted, activation falls to the first remaining one.
func (s *Session) DeleteCategory(name string) error {
	i := s.doc.Find(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	s.doc = append(s.doc[:i], s.doc[i+1:]...)
	if s.active == name {
		s.active = ""
		if len(s.doc) > 0 {
			s.active = s.doc[0].Name
		}
	}
	if s.editing != nil && s.editing.Category == name {
		s.editing = nil
	}
	return nil
}

// AddSite appends a site to the named category.
func (s *Session) AddSite(category string, site domain.Site) error {
	i := s.doc.Find(category)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	s.doc[i].Sites = append(s.doc[i].Sites, site)
	return nil
}

// UpdateSite replaces the site at index, preserving its position.
func (s *Session) UpdateSite(category string, index int, site domain.Site) error {
	i, err := s.siteIndex(category, index)
	if err != nil {
		return err
	}
	s.doc[i].Sites[index] = site
	return nil
}

// DeleteSite removes the site at index, shifting later sites left.
func (s *Session) DeleteSite(category string, index int) error {
	i, err := s.siteIndex(category, index)
	if err != nil {
		return err
	}
	s.doc[i].Sites = append(s.doc[i].Sites[:index], s.doc[i].Sites[index+1:]...)
	if s.editing != nil && s.editing.Category == category && s.editing.Index == index {
		s.editing = nil
	}
	return nil
}

// ReorderSites moves a site within its category from one position to
// another, preserving all other relative orderings. This is the
// drag-and-drop reorder made explicit.
func (s *Session) ReorderSites(category string, from, to int) error {
	i := s.doc.Find(category)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	n := len(s.doc[i].Sites)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d in category %q", ErrIndexOutOfRange, from, to, category)
	}
	move(s.doc[i].Sites, from, to)
	return nil
}

// ReorderCategories moves a category to a new position in the document.
func (s *Session) ReorderCategories(from, to int) error {
	n := len(s.doc)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move category %d -> %d", ErrIndexOutOfRange, from, to)
	}
	move(s.doc, from, to)
	return nil
}

// Snapshot serializes the working copy into a persist-ready document:
// names and urls are trimmed and every logo is normalized to its
// canonical stored form. The edit-modal reference is cleared, matching
// the commit lifecycle. The session itself stays usable afterwards.
func (s *Session) Snapshot() domain.Document {
	s.editing = nil

	out := s.doc.Clone()
	for i := range out {
		out[i].Name = strings.TrimSpace(out[i].Name)
		for j := range out[i].Sites {
			site := &out[i].Sites[j]
			site.Name = strings.TrimSpace(site.Name)
			site.URL = strings.TrimSpace(site.URL)
			site.Desc = strings.TrimSpace(site.Desc)
			site.Logo = domain.NormalizeLogo(site.Logo)
		}
	}
	return out
}

func (s *Session) siteIndex(category string, index int) (int, error) {
	i := s.doc.Find(category)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	if index < 0 || index >= len(s.doc[i].Sites) {
		return 0, fmt.Errorf("%w: %d in category %q", ErrIndexOutOfRange, index, category)
	}
	return i, nil
}

// move relocates s[from] to position to, shifting everything in between.
func move[E any](s []E, from, to int) {
	if from == to {
		return
	}
	elem := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = elem
}
