package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Site is a single curated link inside a category.
type Site struct {
	// Name is the display name shown on the directory page.
	Name string `json:"name"`

	// URL is the link target.
	URL string `json:"url"`

	// Desc is an optional one-line description.
	Desc string `json:"desc"`

	// Logo is the canonical stored logo form: empty, a plain
	// URL/path reference, or an inline svg data URI (see logo.go).
	Logo string `json:"logo"`

	// Private hides the site from unauthenticated readers.
	Private bool `json:"private"`
}

// Category groups sites under a name. The name doubles as the category
// identifier, so it must be unique within a document.
type Category struct {
	Name  string `json:"category"`
	Sites []Site `json:"sites"`
}

// Document is the whole directory: ordered categories, each with ordered
// sites. Order is curation order and is significant on both levels.
type Document []Category

// flexBool accepts the string forms "true"/"false" that attribute-backed
// editors produce for the private flag, so the strict bool never leaks
// past the decode boundary.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*b = false
			return nil
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid private flag %q", s)
		}
		*b = flexBool(v)
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid private flag: %w", err)
	}
	*b = flexBool(v)
	return nil
}

// UnmarshalJSON normalizes the private flag to a strict bool on decode.
// Marshalling uses the plain struct tags, so private is always written
// as a JSON bool.
func (s *Site) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    string   `json:"name"`
		URL     string   `json:"url"`
		Desc    string   `json:"desc"`
		Logo    string   `json:"logo"`
		Private flexBool `json:"private"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	s.URL = raw.URL
	s.Desc = raw.Desc
	s.Logo = raw.Logo
	s.Private = bool(raw.Private)
	return nil
}

// MarshalJSON guarantees a category always serializes with a sites array,
// never null, so readers can rely on a fully-formed document.
func (c Category) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name  string `json:"category"`
		Sites []Site `json:"sites"`
	}
	w := wire{Name: c.Name, Sites: c.Sites}
	if w.Sites == nil {
		w.Sites = []Site{}
	}
	return json.Marshal(w)
}

// ValidationError reports a document that violates the directory
// invariants. The reason is safe to show to the operator.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid document: " + e.Reason
}

// Validate checks the document-level invariants: non-empty trimmed
// category names, category name uniqueness, and non-empty site name/url.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, len(d))
	for i, c := range d {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return &ValidationError{Reason: fmt.Sprintf("category %d has an empty name", i)}
		}
		if _, dup := seen[name]; dup {
			return &ValidationError{Reason: fmt.Sprintf("duplicate category name %q", name)}
		}
		seen[name] = struct{}{}

		for j, s := range c.Sites {
			if strings.TrimSpace(s.Name) == "" {
				return &ValidationError{Reason: fmt.Sprintf("category %q: site %d has an empty name", name, j)}
			}
			if strings.TrimSpace(s.URL) == "" {
				return &ValidationError{Reason: fmt.Sprintf("category %q: site %q has an empty url", name, s.Name)}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the document. Mutating the copy never
// touches the original.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, c := range d {
		out[i] = Category{Name: c.Name, Sites: append([]Site(nil), c.Sites...)}
	}
	return out
}

// Find returns the index of the category with the given name, or -1.
func (d Document) Find(name string) int {
	for i, c := range d {
		if c.Name == name {
			return i
		}
	}
	return -1
}
