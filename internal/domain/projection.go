package domain

// Project derives the view of a document visible at the given auth level.
//
// Authenticated readers get the document back unchanged. Anonymous readers
// get a structurally new document with every private site removed; category
// identity and order are preserved, and a category whose sites are all
// private stays in the output as an empty category.
//
// The input is never mutated: the authenticated caller's in-memory copy
// must stay pristine for subsequent edits.
func Project(doc Document, authenticated bool) Document {
	if authenticated {
		return doc
	}

	out := make(Document, 0, len(doc))
	for _, c := range doc {
		visible := make([]Site, 0, len(c.Sites))
		for _, s := range c.Sites {
			if !s.Private {
				visible = append(visible, s)
			}
		}
		out = append(out, Category{Name: c.Name, Sites: visible})
	}
	return out
}
