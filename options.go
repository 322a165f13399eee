package gohtml5

import (
	"github.com/brightframe/gohtml5/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding        string
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	strict          bool
	collectErrors   bool
	xmlCoercion     bool
	trackPosition   bool
	maxErrors       int
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment records a fragment parsing context in the config. Parse
// does not read it, and ParseFragment replaces it with its own context
// argument (in the HTML namespace), so it has no effect on either.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS records a fragment parsing context with a specific
// namespace. Like WithFragment, it is not read by Parse and is replaced by
// ParseFragment's own HTML-namespace context.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithXMLCoercion enables XML coercion in the tokenizer, used by
// ParseXmlFragment and by callers parsing XHTML-ish markup that should be
// held to XML text/comment rules rather than HTML's.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithTrackPosition enables source-range bookkeeping: every parsed element
// records the rune-offset/line/column span of its start tag (the offset
// counts runes of the decoded input, not bytes), and (when an
// explicit end tag closes it) its end tag, retrievable via
// dom.Element.StartTagRange/EndTagRange. Off by default since it costs a
// position snapshot per character of input in the tokenizer's data state.
func WithTrackPosition() Option {
	return func(c *config) {
		c.trackPosition = true
	}
}

// WithMaxErrors caps the number of parse errors retained when
// WithCollectErrors or WithStrictMode is in effect; further errors past the
// cap are silently discarded rather than growing the error list without
// bound. A max of 0 (the default) means unbounded.
func WithMaxErrors(max int) Option {
	return func(c *config) {
		c.maxErrors = max
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}
