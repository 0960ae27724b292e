package content

import (
	"encoding/json"
	"regexp"
	"strings"

	"juria/internal/domain"
)

// Markers delimiting the translated half of a free-text document reply.
const (
	StartMarker = "<INICIO_TRADUCAO_COLQUIAL>"
	EndMarker   = "<FIM_TRADUCAO_COLQUIAL>"
)

// Placeholders shown when a half of the document could not be recovered.
// An empty half and a backend error are indistinguishable here.
const (
	PlaceholderOriginal   = "could not load the original text"
	PlaceholderTranslated = "could not load the translated text"
)

// Kind tags which branch of the fallback chain produced a Parsed value.
type Kind int

const (
	// StructuredPrimary: JSON object carrying documento_extraido /
	// documento_traduzido (at least one of them).
	StructuredPrimary Kind = iota
	// StructuredLegacy: JSON object carrying only the legacy texto /
	// traducao field names.
	StructuredLegacy
	// FreeTextMarked: not usable JSON, but the start-of-translation marker
	// was found and the text was split at it.
	FreeTextMarked
	// FreeTextPlain: no structure and no marker; everything is original.
	FreeTextPlain
)

// Parsed is the classified form of a raw document reply, before placeholders.
type Parsed struct {
	Kind       Kind
	Original   string
	Translated string
}

// Classify resolves the ordered fallback chain over a raw reply body.
//
// Chain, first match wins:
//  1. JSON object with a primary field: each half taken from the primary
//     field name, falling back per half to the legacy name.
//  2. JSON object with only legacy fields.
//  3. Free text containing StartMarker: split there; the translated half is
//     truncated at EndMarker when present; both halves trimmed.
//  4. Anything else: the whole text is the original, translated is empty.
//
// A JSON object with none of the four fields usable falls through to the
// free-text branches, as does any non-object JSON value.
func Classify(raw string) Parsed {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		primaryOriginal, _ := obj["documento_extraido"].(string)
		primaryTranslated, _ := obj["documento_traduzido"].(string)
		legacyOriginal, _ := obj["texto"].(string)
		legacyTranslated, _ := obj["traducao"].(string)

		original := primaryOriginal
		if original == "" {
			original = legacyOriginal
		}
		translated := primaryTranslated
		if translated == "" {
			translated = legacyTranslated
		}

		switch {
		case primaryOriginal != "" || primaryTranslated != "":
			return Parsed{Kind: StructuredPrimary, Original: original, Translated: translated}
		case legacyOriginal != "" || legacyTranslated != "":
			return Parsed{Kind: StructuredLegacy, Original: original, Translated: translated}
		}
	}

	if i := strings.Index(raw, StartMarker); i >= 0 {
		translated := raw[i+len(StartMarker):]
		if j := strings.Index(translated, EndMarker); j >= 0 {
			translated = translated[:j]
		}
		return Parsed{
			Kind:       FreeTextMarked,
			Original:   strings.TrimSpace(raw[:i]),
			Translated: strings.TrimSpace(translated),
		}
	}

	return Parsed{Kind: FreeTextPlain, Original: raw}
}

// Interpret turns a raw document reply into displayable content, replacing
// an empty half with its placeholder. Pure; identical input, identical output.
func Interpret(raw string) domain.DocumentContent {
	p := Classify(raw)
	out := domain.DocumentContent{Original: p.Original, Translated: p.Translated}
	if out.Original == "" {
		out.Original = PlaceholderOriginal
	}
	if out.Translated == "" {
		out.Translated = PlaceholderTranslated
	}
	return out
}

// listSeparators matches runs of the separators the backend is known to use
// between document names.
var listSeparators = regexp.MustCompile(`[\r\n,]+`)

// InterpretList turns a raw history reply into an ordered list of document
// names. An empty list is a valid result, never an error.
//
// Empty or whitespace-only input yields an empty list. A JSON array is used
// directly (string elements as-is, anything else re-marshalled compact). A
// JSON string, or a body that is not JSON at all, is split on separator runs
// with each piece trimmed and empties dropped. Any other JSON value carries
// no names and yields an empty list.
func InterpretList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return splitNames(raw)
	}

	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				out = append(out, s)
				continue
			}
			b, err := json.Marshal(elem)
			if err != nil {
				continue
			}
			out = append(out, string(b))
		}
		return out
	case string:
		return splitNames(v)
	default:
		return []string{}
	}
}

func splitNames(s string) []string {
	parts := listSeparators.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
