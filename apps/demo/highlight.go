// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/demo/highlight.go
// Summary: Syntax highlighting for the demo editor. Language detection via
// go-enry, tokenization and colors via Chroma.

package demo

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	enry "github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texedit/texed"
)

const defaultStyleName = "native"

// Span is a colored run of a single line, in rune offsets.
type Span struct {
	Start int
	End   int
	Fore  texed.Color
}

// Highlighter colorizes lines of one document.
type Highlighter struct {
	style     *chroma.Style
	lexerName string
	baseFore  texed.Color
}

// NewHighlighter builds a highlighter for the named file. The language is
// detected from the file name and content; unknown languages fall back to
// Chroma's content analysis.
func NewHighlighter(filename, content, styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	style := styles.Get(styleName)
	lang := enry.GetLanguage(filepath.Base(filename), []byte(content))
	h := &Highlighter{style: style, lexerName: lang}
	h.baseFore = chromaColor(style.Get(chroma.Text).Colour, 0xD8D8D8)
	return h
}

// BaseFore returns the style's plain-text color.
func (h *Highlighter) BaseFore() texed.Color { return h.baseFore }

// Spans tokenizes one line and returns its colored runs. Tokens in the base
// text color are omitted; the caller draws those in BaseFore.
func (h *Highlighter) Spans(line string) []Span {
	if line == "" {
		return nil
	}
	lexer := h.lexer(line)
	tokens, err := chroma.Tokenise(lexer, nil, line)
	if err != nil {
		return nil
	}

	base := h.style.Get(chroma.Text).Colour
	var spans []Span
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		n := len([]rune(tok.Value))
		entry := h.style.Get(tok.Type)
		if entry.Colour.IsSet() && entry.Colour != base {
			spans = append(spans, Span{
				Start: pos,
				End:   pos + n,
				Fore:  chromaColor(entry.Colour, 0xD8D8D8),
			})
		}
		pos += n
	}
	return spans
}

func (h *Highlighter) lexer(text string) chroma.Lexer {
	if h.lexerName != "" {
		if l := lexers.Get(h.lexerName); l != nil {
			return chroma.Coalesce(l)
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return chroma.Coalesce(l)
	}
	return lexers.Fallback
}

func chromaColor(c chroma.Colour, fallback texed.Color) texed.Color {
	if !c.IsSet() {
		return fallback
	}
	return texed.RGB(c.Red(), c.Green(), c.Blue())
}
