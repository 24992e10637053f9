package domain

import (
	"reflect"
	"testing"
)

func sampleDoc() Document {
	return Document{
		{Name: "Tools", Sites: []Site{
			{Name: "A", URL: "http://a"},
			{Name: "B", URL: "http://b", Private: true},
		}},
		{Name: "Internal", Sites: []Site{
			{Name: "C", URL: "http://c", Private: true},
		}},
	}
}

func TestProjectAuthenticatedIsIdentity(t *testing.T) {
	doc := sampleDoc()
	got := Project(doc, true)
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("authenticated projection must be identity:\n got %+v\nwant %+v", got, doc)
	}
}

func TestProjectAnonymousDropsPrivateSites(t *testing.T) {
	got := Project(sampleDoc(), false)

	if len(got) != 2 {
		t.Fatalf("projection dropped a category: got %d categories, want 2", len(got))
	}
	for _, c := range got {
		for _, s := range c.Sites {
			if s.Private {
				t.Errorf("private site %q leaked into category %q", s.Name, c.Name)
			}
		}
	}
	if len(got[0].Sites) != 1 || got[0].Sites[0].Name != "A" {
		t.Errorf("Tools should keep only site A, got %+v", got[0].Sites)
	}
	if len(got[1].Sites) != 0 {
		t.Errorf("fully private category should project as empty, got %+v", got[1].Sites)
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	doc := sampleDoc()
	_ = Project(doc, false)

	if len(doc[0].Sites) != 2 {
		t.Errorf("projection mutated its input: Tools has %d sites, want 2", len(doc[0].Sites))
	}
	if len(doc[1].Sites) != 1 {
		t.Errorf("projection mutated its input: Internal has %d sites, want 1", len(doc[1].Sites))
	}
}
