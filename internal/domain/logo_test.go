package domain

import (
	"strings"
	"testing"
)

func TestNormalizeLogo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain url untouched",
			raw:  "https://example.com/logo.png",
			want: "https://example.com/logo.png",
		},
		{
			name: "relative path trimmed",
			raw:  "  /icons/logo.png  ",
			want: "/icons/logo.png",
		},
		{
			name: "empty stays empty",
			raw:  "",
			want: "",
		},
		{
			name: "svg markup becomes data uri",
			raw:  `<svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg>`,
			want: SVGDataURIPrefix + "PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciPjxjaXJjbGUgcj0iNCIvPjwvc3ZnPg==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLogo(tt.raw); got != tt.want {
				t.Errorf("NormalizeLogo(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLogoRoundTrip(t *testing.T) {
	markup := `<svg viewBox="0 0 16 16"><path d="M0 0h16v16H0z"/></svg>`

	stored := NormalizeLogo(markup)
	if !strings.HasPrefix(stored, SVGDataURIPrefix) {
		t.Fatalf("stored form should be a data uri, got %q", stored)
	}

	logo, err := DenormalizeLogo(stored)
	if err != nil {
		t.Fatalf("denormalize failed: %v", err)
	}
	if logo.Kind != LogoInline {
		t.Fatalf("Kind = %v, want LogoInline", logo.Kind)
	}
	if logo.Markup != markup {
		t.Errorf("round trip lost fidelity:\n got %q\nwant %q", logo.Markup, markup)
	}
}

func TestDenormalizeReference(t *testing.T) {
	logo, err := DenormalizeLogo("/icons/logo.png")
	if err != nil {
		t.Fatalf("denormalize failed: %v", err)
	}
	if logo.Kind != LogoReference {
		t.Errorf("Kind = %v, want LogoReference", logo.Kind)
	}
	if logo.Value != "/icons/logo.png" {
		t.Errorf("Value = %q, want the reference passed through", logo.Value)
	}
}

func TestDenormalizeMalformedBase64(t *testing.T) {
	_, err := DenormalizeLogo(SVGDataURIPrefix + "!!!not-base64!!!")
	if err == nil {
		t.Fatal("malformed base64 should surface as an error, not a panic")
	}
}
