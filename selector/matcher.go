package selector

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/brightframe/gohtml5/dom"
)

// regexCache memoizes compiled patterns for :matches()/:matchesOwn() so
// repeated evaluation against many elements doesn't recompile per call.
var regexCache sync.Map // map[string]*regexp.Regexp

func compileCached(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Store(pattern, re)
	return re, nil
}

// matchAST checks if an element matches a parsed selector AST.
func matchAST(elem *dom.Element, sel selectorAST) bool {
	switch s := sel.(type) {
	case ComplexSelector:
		return matchComplex(elem, s)
	case SelectorList:
		return matchSelectorList(elem, s)
	default:
		return false
	}
}

// matchSelectorList checks if an element matches any selector in the list.
func matchSelectorList(elem *dom.Element, list SelectorList) bool {
	for _, sel := range list.Selectors {
		if matchComplex(elem, sel) {
			return true
		}
	}
	return false
}

// matchComplex checks if an element matches a complex selector.
// Uses right-to-left matching strategy for efficiency.
func matchComplex(elem *dom.Element, sel ComplexSelector) bool {
	if len(sel.Parts) == 0 {
		return false
	}

	// Start with the rightmost compound selector
	lastIdx := len(sel.Parts) - 1
	if !matchCompound(elem, sel.Parts[lastIdx].Compound) {
		return false
	}

	// Work backwards through the remaining parts
	current := elem
	for i := lastIdx - 1; i >= 0; i-- {
		part := sel.Parts[i+1] // Get the combinator from the next part
		compound := sel.Parts[i].Compound

		switch part.Combinator {
		case CombinatorNone:
			// CombinatorNone should not appear in valid selector parts after the first
			return false

		case CombinatorDescendant:
			// Find any ancestor that matches
			found := false
			for ancestor := getParentElement(current); ancestor != nil; ancestor = getParentElement(ancestor) {
				if matchCompound(ancestor, compound) {
					current = ancestor
					found = true
					break
				}
			}
			if !found {
				return false
			}

		case CombinatorChild:
			// Check immediate parent
			parent := getParentElement(current)
			if parent == nil || !matchCompound(parent, compound) {
				return false
			}
			current = parent

		case CombinatorAdjacent:
			// Check immediately preceding sibling
			prev := getPreviousElementSibling(current)
			if prev == nil || !matchCompound(prev, compound) {
				return false
			}
			current = prev

		case CombinatorGeneral:
			// Find any preceding sibling that matches
			found := false
			for sib := getPreviousElementSibling(current); sib != nil; sib = getPreviousElementSibling(sib) {
				if matchCompound(sib, compound) {
					current = sib
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}

// matchCompound checks if an element matches all simple selectors in a compound.
func matchCompound(elem *dom.Element, compound CompoundSelector) bool {
	for _, sel := range compound.Selectors {
		if !matchSimple(elem, sel) {
			return false
		}
	}
	return true
}

// matchSimple checks if an element matches a single simple selector.
func matchSimple(elem *dom.Element, sel SimpleSelector) bool {
	switch sel.Kind {
	case KindTag:
		if sel.Namespace != "" && sel.Namespace != "*" && elem.Namespace != resolveNamespacePrefix(sel.Namespace) {
			return false
		}
		// Case-insensitive for HTML, case-sensitive for SVG/MathML
		if elem.Namespace == dom.NamespaceHTML {
			return strings.EqualFold(elem.TagName, sel.Name)
		}
		return elem.TagName == sel.Name

	case KindUniversal:
		return true

	case KindID:
		return elem.ID() == sel.Name

	case KindClass:
		return elem.HasClass(sel.Name)

	case KindAttr:
		return matchAttribute(elem, sel)

	case KindPseudo:
		return matchPseudo(elem, sel)

	default:
		return false
	}
}

// resolveNamespacePrefix maps a selector's "ns|tag" prefix to the namespace
// URI dom.Element.Namespace actually stores. Unknown prefixes are compared
// literally, so a document using a custom namespace still matches.
func resolveNamespacePrefix(prefix string) string {
	switch strings.ToLower(prefix) {
	case "svg":
		return dom.NamespaceSVG
	case "math":
		return dom.NamespaceMathML
	case "html":
		return dom.NamespaceHTML
	default:
		return prefix
	}
}

// matchAttribute checks if an element matches an attribute selector.
func matchAttribute(elem *dom.Element, sel SimpleSelector) bool {
	if sel.Operator == AttrExists {
		return elem.HasAttr(sel.Name)
	}

	if sel.Operator == AttrPrefixKey {
		prefix := strings.ToLower(sel.Name)
		for _, attr := range elem.Attributes.All() {
			if strings.HasPrefix(strings.ToLower(attr.Name), prefix) {
				return true
			}
		}
		return false
	}

	if sel.Operator == AttrNotEquals {
		val, ok := elem.Attributes.Get(sel.Name)
		return !ok || val != sel.Value
	}

	val := elem.Attr(sel.Name)
	if !elem.HasAttr(sel.Name) {
		return false
	}

	switch sel.Operator {
	case AttrExists:
		// Already handled above
		return true

	case AttrEquals:
		return val == sel.Value

	case AttrIncludes:
		// Value matches as a regular expression.
		re, err := compileCached(sel.Value)
		if err != nil {
			return false
		}
		return re.MatchString(val)

	case AttrDashPrefix:
		// Exact match or prefix followed by hyphen
		return val == sel.Value || strings.HasPrefix(val, sel.Value+"-")

	case AttrPrefixMatch:
		if sel.Value == "" {
			return false
		}
		return strings.HasPrefix(val, sel.Value)

	case AttrSuffixMatch:
		if sel.Value == "" {
			return false
		}
		return strings.HasSuffix(val, sel.Value)

	case AttrSubstring:
		if sel.Value == "" {
			return false
		}
		return strings.Contains(val, sel.Value)

	default:
		return false
	}
}

// matchPseudo checks if an element matches a pseudo-class selector.
func matchPseudo(elem *dom.Element, sel SimpleSelector) bool {
	switch sel.Name {
	case "first-child":
		return isFirstChild(elem)

	case "last-child":
		return isLastChild(elem)

	case "only-child":
		return isOnlyChild(elem)

	case "nth-child":
		a, b, ok := parseNthExpression(sel.Value)
		if !ok {
			return false
		}
		return isNthChild(elem, a, b)

	case "nth-last-child":
		a, b, ok := parseNthExpression(sel.Value)
		if !ok {
			return false
		}
		return isNthLastChild(elem, a, b)

	case "first-of-type":
		return isFirstOfType(elem)

	case "last-of-type":
		return isLastOfType(elem)

	case "only-of-type":
		return isOnlyOfType(elem)

	case "nth-of-type":
		a, b, ok := parseNthExpression(sel.Value)
		if !ok {
			return false
		}
		return isNthOfType(elem, a, b)

	case "nth-last-of-type":
		a, b, ok := parseNthExpression(sel.Value)
		if !ok {
			return false
		}
		return isNthLastOfType(elem, a, b)

	case "empty":
		return isEmpty(elem)

	case "root":
		return isRoot(elem)

	case "not":
		return matchNot(elem, sel.Value)

	case "has":
		return matchHas(elem, sel.Value)

	case "contains":
		return matchContains(elem, sel.Value, false)

	case "containsOwn":
		return matchContains(elem, sel.Value, true)

	case "matches":
		return matchMatches(elem, sel.Value, false)

	case "matchesOwn":
		return matchMatches(elem, sel.Value, true)

	case "lt":
		n, ok := parseIndexArg(sel.Value)
		return ok && elementSiblingIndex(elem) < n

	case "gt":
		n, ok := parseIndexArg(sel.Value)
		return ok && elementSiblingIndex(elem) > n

	case "eq":
		n, ok := parseIndexArg(sel.Value)
		return ok && elementSiblingIndex(elem) == n

	default:
		// Unsupported pseudo-class
		return false
	}
}

// elementSiblingIndex returns the element's 0-based position among its
// element siblings, matching jsoup's elementSiblingIndex().
func elementSiblingIndex(elem *dom.Element) int {
	siblings := getElementSiblings(elem)
	return getElementIndex(elem, siblings) - 1
}

// parseIndexArg parses the numeric argument of :lt()/:gt()/:eq().
func parseIndexArg(arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, false
	}
	return n, true
}

// matchHas reports whether any descendant of elem matches the nested selector.
func matchHas(elem *dom.Element, arg string) bool {
	innerSel, err := Parse(arg)
	if err != nil {
		return false
	}
	found := false
	walkDescendantElements(elem, func(e *dom.Element) bool {
		if innerSel.Match(e) {
			found = true
			return false
		}
		return true
	})
	return found
}

// walkDescendantElements visits every descendant *dom.Element of elem in
// document order, stopping early when visit returns false.
func walkDescendantElements(elem *dom.Element, visit func(*dom.Element) bool) bool {
	for _, child := range elem.Children() {
		e, ok := child.(*dom.Element)
		if !ok {
			continue
		}
		if !visit(e) {
			return false
		}
		if !walkDescendantElements(e, visit) {
			return false
		}
	}
	return true
}

// ownText returns the concatenation of elem's direct Text children only.
func ownText(elem *dom.Element) string {
	var sb strings.Builder
	for _, child := range elem.Children() {
		if t, ok := child.(*dom.Text); ok {
			sb.WriteString(t.Data)
		}
	}
	return sb.String()
}

// matchContains checks elem's text for a normalized-whitespace substring
// match. When own is true, only elem's direct text children are scanned
// (containsOwn); otherwise the full descendant text is used (contains).
func matchContains(elem *dom.Element, needle string, own bool) bool {
	needle = strings.Join(strings.Fields(needle), " ")
	if needle == "" {
		return false
	}
	var haystack string
	if own {
		haystack = ownText(elem)
	} else {
		haystack = elem.Text()
	}
	haystack = strings.Join(strings.Fields(haystack), " ")
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchMatches checks elem's text against a compiled regex, scoped the same
// way matchContains scopes its text (full descendant text vs. own text only).
func matchMatches(elem *dom.Element, pattern string, own bool) bool {
	re, err := compileCached(pattern)
	if err != nil {
		return false
	}
	var haystack string
	if own {
		haystack = ownText(elem)
	} else {
		haystack = elem.Text()
	}
	return re.MatchString(haystack)
}

// getParentElement returns the parent if it's an Element, nil otherwise.
func getParentElement(elem *dom.Element) *dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return nil
	}
	if e, ok := parent.(*dom.Element); ok {
		return e
	}
	return nil
}

// getElementSiblings returns all element siblings (including the element itself).
func getElementSiblings(elem *dom.Element) []*dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return []*dom.Element{elem}
	}

	var siblings []*dom.Element
	for _, child := range parent.Children() {
		if e, ok := child.(*dom.Element); ok {
			siblings = append(siblings, e)
		}
	}
	return siblings
}

// getElementIndex returns the 1-based index of the element among its siblings.
func getElementIndex(elem *dom.Element, siblings []*dom.Element) int {
	for i, sib := range siblings {
		if sib == elem {
			return i + 1 // 1-based
		}
	}
	return 0
}

// getPreviousElementSibling returns the previous element sibling or nil,
// skipping over text/comment/data nodes by walking dom.SiblingNavigator's
// single-hop PreviousSibling chain instead of rescanning the parent's full
// child list.
func getPreviousElementSibling(elem *dom.Element) *dom.Element {
	var cur dom.Node = elem
	for {
		nav, ok := cur.(dom.SiblingNavigator)
		if !ok {
			return nil
		}
		cur = nav.PreviousSibling()
		if cur == nil {
			return nil
		}
		if e, ok := cur.(*dom.Element); ok {
			return e
		}
	}
}

// getSiblingsOfSameType returns all element siblings with the same tag name.
func getSiblingsOfSameType(elem *dom.Element) []*dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return []*dom.Element{elem}
	}

	var siblings []*dom.Element
	for _, child := range parent.Children() {
		if e, ok := child.(*dom.Element); ok {
			if strings.EqualFold(e.TagName, elem.TagName) {
				siblings = append(siblings, e)
			}
		}
	}
	return siblings
}

// isFirstChild checks if element is the first child among siblings.
func isFirstChild(elem *dom.Element) bool {
	siblings := getElementSiblings(elem)
	return len(siblings) > 0 && siblings[0] == elem
}

// isLastChild checks if element is the last child among siblings.
func isLastChild(elem *dom.Element) bool {
	siblings := getElementSiblings(elem)
	return len(siblings) > 0 && siblings[len(siblings)-1] == elem
}

// isOnlyChild checks if element is the only child.
func isOnlyChild(elem *dom.Element) bool {
	siblings := getElementSiblings(elem)
	return len(siblings) == 1 && siblings[0] == elem
}

// isNthChild checks if element matches :nth-child(An+B).
func isNthChild(elem *dom.Element, a, b int) bool {
	siblings := getElementSiblings(elem)
	index := getElementIndex(elem, siblings)
	if index == 0 {
		return false
	}
	return matchesNth(index, a, b)
}

// isNthLastChild checks if element matches :nth-last-child(An+B).
func isNthLastChild(elem *dom.Element, a, b int) bool {
	siblings := getElementSiblings(elem)
	index := getElementIndex(elem, siblings)
	if index == 0 {
		return false
	}
	// Convert to index from end
	indexFromEnd := len(siblings) - index + 1
	return matchesNth(indexFromEnd, a, b)
}

// isFirstOfType checks if element is the first of its type among siblings.
func isFirstOfType(elem *dom.Element) bool {
	siblings := getSiblingsOfSameType(elem)
	return len(siblings) > 0 && siblings[0] == elem
}

// isLastOfType checks if element is the last of its type among siblings.
func isLastOfType(elem *dom.Element) bool {
	siblings := getSiblingsOfSameType(elem)
	return len(siblings) > 0 && siblings[len(siblings)-1] == elem
}

// isOnlyOfType checks if element is the only one of its type.
func isOnlyOfType(elem *dom.Element) bool {
	siblings := getSiblingsOfSameType(elem)
	return len(siblings) == 1 && siblings[0] == elem
}

// isNthOfType checks if element matches :nth-of-type(An+B).
func isNthOfType(elem *dom.Element, a, b int) bool {
	siblings := getSiblingsOfSameType(elem)
	var index int
	for i, sib := range siblings {
		if sib == elem {
			index = i + 1
			break
		}
	}
	if index == 0 {
		return false
	}
	return matchesNth(index, a, b)
}

// isNthLastOfType checks if element matches :nth-last-of-type(An+B).
func isNthLastOfType(elem *dom.Element, a, b int) bool {
	siblings := getSiblingsOfSameType(elem)
	var index int
	for i, sib := range siblings {
		if sib == elem {
			index = i + 1
			break
		}
	}
	if index == 0 {
		return false
	}
	indexFromEnd := len(siblings) - index + 1
	return matchesNth(indexFromEnd, a, b)
}

// isEmpty checks if element has no element children and no non-whitespace text.
func isEmpty(elem *dom.Element) bool {
	for _, child := range elem.Children() {
		switch c := child.(type) {
		case *dom.Element:
			return false
		case *dom.Text:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return true
}

// isRoot checks if element is the root (parent is Document or DocumentFragment).
func isRoot(elem *dom.Element) bool {
	parent := elem.Parent()
	if parent == nil {
		return false
	}
	switch parent.(type) {
	case *dom.Document, *dom.DocumentFragment:
		return true
	}
	return false
}

// matchNot checks if element does NOT match the inner selector.
func matchNot(elem *dom.Element, arg string) bool {
	if arg == "" {
		return true
	}
	// Parse the inner selector
	innerSel, err := Parse(arg)
	if err != nil {
		// Parse error means we can't evaluate the inner selector,
		// so :not() doesn't match (returns false to not match the element)
		return false
	}
	matched := innerSel.Match(elem)
	return !matched
}

// parseNthExpression parses an An+B expression.
// Returns (a, b, ok) where the formula is index matches if (index - b) % a == 0 and (index - b) / a >= 0
func parseNthExpression(expr string) (int, int, bool) {
	expr = strings.TrimSpace(strings.ToLower(expr))

	// Handle special keywords
	switch expr {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	}

	// Handle simple number
	if n, err := strconv.Atoi(expr); err == nil {
		return 0, n, true
	}

	// Parse An+B format
	// Examples: n, 2n, 2n+1, -n+3, n+5, -2n-1

	// Find position of 'n'
	nIdx := strings.Index(expr, "n")
	if nIdx == -1 {
		return 0, 0, false
	}

	// Parse 'a' part (before n)
	var a int
	aStr := expr[:nIdx]
	switch aStr {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		var err error
		a, err = strconv.Atoi(aStr)
		if err != nil {
			return 0, 0, false
		}
	}

	// Parse 'b' part (after n)
	var b int
	bStr := strings.TrimSpace(expr[nIdx+1:])
	if bStr == "" {
		b = 0
	} else {
		// Remove leading + if present
		bStr = strings.TrimPrefix(bStr, "+")
		var err error
		b, err = strconv.Atoi(bStr)
		if err != nil {
			return 0, 0, false
		}
	}

	return a, b, true
}

// matchesNth checks if index (1-based) matches the An+B formula.
func matchesNth(index, a, b int) bool {
	if a == 0 {
		// Just matches exact index
		return index == b
	}

	// Check if (index - b) is a non-negative multiple of a
	diff := index - b
	if a > 0 {
		return diff >= 0 && diff%a == 0
	}
	// a < 0: need diff <= 0 and divisible
	return diff <= 0 && diff%a == 0
}
