package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SVGDataURIPrefix marks the canonical stored form of an inline vector logo.
const SVGDataURIPrefix = "data:image/svg+xml;base64,"

// LogoKind discriminates the two canonical logo forms.
type LogoKind int

const (
	// LogoReference is an opaque URL or relative path (possibly empty).
	LogoReference LogoKind = iota
	// LogoInline is raw svg markup decoded from a stored data URI.
	LogoInline
)

// Logo is the editable form of a stored logo string.
type Logo struct {
	Kind   LogoKind
	Markup string // set when Kind == LogoInline
	Value  string // set when Kind == LogoReference
}

// NormalizeLogo maps arbitrary logo input to the single storable form.
// Trimmed input starting with the svg open tag is encoded as a base64
// data URI; anything else is treated as an opaque reference and returned
// trimmed. Raw unencoded markup is never stored.
func NormalizeLogo(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "<svg") {
		return SVGDataURIPrefix + base64.StdEncoding.EncodeToString([]byte(trimmed))
	}
	return trimmed
}

// DenormalizeLogo converts a stored logo string back to its editable form.
// A stored svg data URI is decoded to raw markup; everything else passes
// through as a reference. Malformed base64 returns an error for the caller
// to render as a placeholder instead of crashing the edit flow.
func DenormalizeLogo(stored string) (Logo, error) {
	if b64, ok := strings.CutPrefix(stored, SVGDataURIPrefix); ok {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return Logo{}, fmt.Errorf("failed to decode svg logo: %w", err)
		}
		return Logo{Kind: LogoInline, Markup: string(raw)}, nil
	}
	return Logo{Kind: LogoReference, Value: stored}, nil
}
