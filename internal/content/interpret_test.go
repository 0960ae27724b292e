package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"juria/internal/content"
	"juria/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want content.Parsed
	}{
		{
			name: "primary fields",
			raw:  `{"documento_extraido": "A", "documento_traduzido": "B"}`,
			want: content.Parsed{Kind: content.StructuredPrimary, Original: "A", Translated: "B"},
		},
		{
			name: "legacy fields",
			raw:  `{"texto": "A", "traducao": "B"}`,
			want: content.Parsed{Kind: content.StructuredLegacy, Original: "A", Translated: "B"},
		},
		{
			name: "primary half with legacy half",
			raw:  `{"documento_extraido": "A", "traducao": "B"}`,
			want: content.Parsed{Kind: content.StructuredPrimary, Original: "A", Translated: "B"},
		},
		{
			name: "json object with no usable fields falls through",
			raw:  `{"status": "done"}`,
			want: content.Parsed{Kind: content.FreeTextPlain, Original: `{"status": "done"}`},
		},
		{
			name: "marked free text",
			raw:  "Hello <INICIO_TRADUCAO_COLQUIAL>Olá<FIM_TRADUCAO_COLQUIAL>extra",
			want: content.Parsed{Kind: content.FreeTextMarked, Original: "Hello", Translated: "Olá"},
		},
		{
			name: "marked free text without end marker",
			raw:  "Hello <INICIO_TRADUCAO_COLQUIAL>  Olá  ",
			want: content.Parsed{Kind: content.FreeTextMarked, Original: "Hello", Translated: "Olá"},
		},
		{
			name: "plain text",
			raw:  "just some text",
			want: content.Parsed{Kind: content.FreeTextPlain, Original: "just some text"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.Classify(tt.raw))
		})
	}
}

func TestInterpret_AppliesPlaceholders(t *testing.T) {
	got := content.Interpret("plain body with no translation")
	assert.Equal(t, domain.DocumentContent{
		Original:   "plain body with no translation",
		Translated: content.PlaceholderTranslated,
	}, got)

	got = content.Interpret(`{"documento_traduzido": "B"}`)
	assert.Equal(t, domain.DocumentContent{
		Original:   content.PlaceholderOriginal,
		Translated: "B",
	}, got)

	got = content.Interpret("")
	assert.Equal(t, domain.DocumentContent{
		Original:   content.PlaceholderOriginal,
		Translated: content.PlaceholderTranslated,
	}, got)
}

func TestInterpret_Idempotent(t *testing.T) {
	raw := "Hello <INICIO_TRADUCAO_COLQUIAL>Olá<FIM_TRADUCAO_COLQUIAL>trailing"
	assert.Equal(t, content.Interpret(raw), content.Interpret(raw))
}

func TestInterpretList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "  \n ", []string{}},
		{"plain text separators", "doc1, doc2\ndoc3", []string{"doc1", "doc2", "doc3"}},
		{"json array", `["a","b"]`, []string{"a", "b"}},
		{"json array with non-strings", `["a", 2]`, []string{"a", "2"}},
		{"json string", `"doc1,doc2\r\ndoc3"`, []string{"doc1", "doc2", "doc3"}},
		{"json object carries no names", `{"count": 3}`, []string{}},
		{"trailing separators dropped", "doc1,\n", []string{"doc1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.InterpretList(tt.raw))
		})
	}
}
