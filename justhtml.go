// Package gohtml5 provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// gohtml5 is a complete HTML5 parser that handles malformed HTML exactly as browsers do.
// It passes all 9,000+ tests in the official html5lib-tests suite.
//
// # Basic Usage
//
//	doc, err := gohtml5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	for _, p := range doc.Query("p") {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - 100% HTML5 compliant (WHATWG Living Standard)
//   - jsoup-flavored CSS selector support (:has, :contains, :matches, ns|tag, ...)
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec, with golang.org/x/text for legacy charsets
//   - Fragment parsing for innerHTML-style use cases
//   - ParseXmlFragment, a stripped-down XML tree builder for XHTML-ish or
//     hand-written XML input
//
// For more information, see https://github.com/brightframe/gohtml5
package gohtml5

import (
	"github.com/brightframe/gohtml5/dom"
	"github.com/brightframe/gohtml5/encoding"
	htmlerrors "github.com/brightframe/gohtml5/errors"
	// Registers the CSS selector engine with dom.Element.Query/QueryFirst;
	// see selector.init and dom.SetSelectorMatch.
	_ "github.com/brightframe/gohtml5/selector"
	"github.com/brightframe/gohtml5/tokenizer"
	"github.com/brightframe/gohtml5/treebuilder"
	xmltreebuilder "github.com/brightframe/gohtml5/treebuilder/xml"
)

// Version is the current version of gohtml5.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := gohtml5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is chosen in this order:
//  1. The label given via WithEncoding, if it names a known encoding
//     (a leading BOM is then stripped but does not override it)
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := gohtml5.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}
	_ = enc // TODO: store detected encoding in document

	return parse(decoded, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := gohtml5.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: "html",
	}
	return parseFragment(html, cfg)
}

// ParseXmlFragment parses a fragment of XML (or an XHTML-ish document
// fragment) using a stripped tree builder: tokens map one-to-one to nodes,
// there's no implied-tag synthesis or adoption agency, and self-closing
// tags are honored rather than merely tolerated. baseUri is accepted but
// not used: relative URIs found in the markup are not resolved against it.
//
// Example:
//
//	nodes, err := gohtml5.ParseXmlFragment(`<book id="1"><title>Go</title></book>`, "")
func ParseXmlFragment(xmlText string, baseUri string, opts ...Option) ([]dom.Node, error) {
	cfg := newConfig(opts...)

	tok := tokenizer.New(xmlText)
	tok.SetXMLCoercion(true)
	tok.SetAllowCDATA(true)

	builder := xmltreebuilder.New()
	for {
		tt := tok.Next()
		builder.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return builder.Nodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return builder.Nodes(), nil
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	if cfg.trackPosition {
		tok.SetTrackPosition(true)
	}
	if cfg.maxErrors > 0 {
		tok.SetTrackErrors(cfg.maxErrors)
	}
	tb := treebuilder.New(tok)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.trackPosition {
		tb.SetTrackPosition(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.Document(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.Document(), nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	if cfg.trackPosition {
		tok.SetTrackPosition(true)
	}
	if cfg.maxErrors > 0 {
		tok.SetTrackErrors(cfg.maxErrors)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.trackPosition {
		tb.SetTrackPosition(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
