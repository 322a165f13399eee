// Package selector implements CSS selector parsing and matching.
package selector

import (
	"strings"

	"github.com/brightframe/gohtml5/dom"
	"github.com/brightframe/gohtml5/errors"
)

func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
}

// Selector represents a parsed CSS selector.
type Selector interface {
	// Match returns true if the element matches this selector.
	Match(element *dom.Element) bool

	// String returns the original selector string.
	String() string

	// Specificity returns the selector's CSS specificity as (id count,
	// class/attribute/pseudo-class count, type count). Callers holding
	// several matching selectors for the same element (e.g. picking which
	// of a set of candidate rules "wins") can compare these tuples
	// lexicographically the way a CSS cascade would.
	Specificity() (ids, classes, types int)
}

// compiledSelector wraps a parsed AST as a Selector.
type compiledSelector struct {
	ast selectorAST
	str string
}

func (c *compiledSelector) Match(element *dom.Element) bool {
	return matchAST(element, c.ast)
}

func (c *compiledSelector) String() string {
	return c.str
}

func (c *compiledSelector) Specificity() (ids, classes, types int) {
	switch ast := c.ast.(type) {
	case ComplexSelector:
		return ast.Specificity()
	case SelectorList:
		return ast.Specificity()
	default:
		return 0, 0, 0
	}
}

// Parse parses a CSS selector string into a reusable Selector.
func Parse(selector string) (Selector, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, &errors.SelectorError{
			Selector: selector,
			Position: 0,
			Message:  "empty selector",
		}
	}

	tokens, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}

	ast, err := newParser(tokens, selector).parse()
	if err != nil {
		return nil, err
	}

	return &compiledSelector{ast: ast, str: selector}, nil
}

// Match returns all elements in the subtree rooted at root (root included)
// that match the selector, in document order.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	matchDescendants(root, sel, &results)
	return results, nil
}

// MatchFirst returns the first element (document order, root included)
// matching the selector, or nil if none match.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	return findFirst(root, sel), nil
}

// Select is an alias for Match, matching jsoup's naming.
func Select(root *dom.Element, selector string) ([]*dom.Element, error) {
	return Match(root, selector)
}

// SelectFirst is an alias for MatchFirst, matching jsoup's naming.
func SelectFirst(root *dom.Element, selector string) (*dom.Element, error) {
	return MatchFirst(root, selector)
}

// ExpectFirst returns the first matching element like SelectFirst, but
// returns an error if no element matches rather than a nil element.
func ExpectFirst(root *dom.Element, selector string) (*dom.Element, error) {
	elem, err := MatchFirst(root, selector)
	if err != nil {
		return nil, err
	}
	if elem == nil {
		return nil, &errors.SelectorError{
			Selector: selector,
			Position: 0,
			Message:  "no elements matched selector",
		}
	}
	return elem, nil
}

// Specificity parses selector and returns its CSS specificity without
// retaining a compiled Selector, for callers that only need to rank
// candidate selector strings (e.g. choosing the more specific of two
// overlapping rules) rather than match elements with them.
func Specificity(selector string) (ids, classes, types int, err error) {
	sel, err := Parse(selector)
	if err != nil {
		return 0, 0, 0, err
	}
	ids, classes, types = sel.Specificity()
	return
}

func matchDescendants(elem *dom.Element, sel Selector, results *[]*dom.Element) {
	if sel.Match(elem) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, results)
		}
	}
}

func findFirst(elem *dom.Element, sel Selector) *dom.Element {
	if sel.Match(elem) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}
