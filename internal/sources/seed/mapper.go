package seed

import (
	"strings"

	"github.com/linkdeck/linkdeck/internal/domain"
)

// MapDocument converts a parsed seed file into a directory document,
// applying the same normalization a snapshot would: trimmed names and
// urls, canonical logo form. The result still goes through commit-time
// validation, so a broken seed file fails loudly instead of persisting
// a malformed document.
func MapDocument(f File) domain.Document {
	doc := make(domain.Document, 0, len(f.Categories))
	for _, c := range f.Categories {
		sites := make([]domain.Site, 0, len(c.Sites))
		for _, s := range c.Sites {
			sites = append(sites, domain.Site{
				Name:    strings.TrimSpace(s.Name),
				URL:     strings.TrimSpace(s.URL),
				Desc:    strings.TrimSpace(s.Desc),
				Logo:    domain.NormalizeLogo(s.Logo),
				Private: s.Private,
			})
		}
		doc = append(doc, domain.Category{
			Name:  strings.TrimSpace(c.Name),
			Sites: sites,
		})
	}
	return doc
}
