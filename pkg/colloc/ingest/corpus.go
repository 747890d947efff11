package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/colloc/pkg/colloc/internalerr"
)

// Format selects how a corpus file is decoded into text
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat parses a corpus format name (case-insensitive). An empty
// string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("corpus format %q (want auto, text or html): %w", s, internalerr.ErrInvalidConfig)
}

// resolve turns FormatAuto into a concrete format based on the file extension
func (f Format) resolve(path string) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	}
	return FormatText
}

// LoadCorpus reads the whole corpus file into memory and returns its text.
// Errors opening or reading the file wrap internalerr.ErrCorpusUnreadable.
func LoadCorpus(path string, format Format) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus %s: %w: %v", path, internalerr.ErrCorpusUnreadable, err)
	}

	if format.resolve(path) == FormatHTML {
		text, err := ExtractText(data)
		if err != nil {
			return "", fmt.Errorf("parse html corpus %s: %w: %v", path, internalerr.ErrCorpusUnreadable, err)
		}
		return text, nil
	}
	return string(data), nil
}

// blockElements end a run of text; inline elements (b, i, a, span, ...) do not
var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"dd": {}, "div": {}, "dl": {}, "dt": {}, "figcaption": {}, "figure": {},
	"footer": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"header": {}, "hr": {}, "li": {}, "main": {}, "nav": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "table": {}, "td": {}, "th": {}, "title": {},
	"tr": {}, "ul": {},
}

// ExtractText returns the text content of an HTML document. Text nodes are
// written verbatim so inline markup never splits a word, block elements are
// separated by whitespace, and runs of whitespace collapse to single spaces.
// Script and style contents are skipped.
func ExtractText(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		_, block := blockElements[n.Data]
		block = block && n.Type == html.ElementNode
		if block {
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			buf.WriteByte(' ')
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}
