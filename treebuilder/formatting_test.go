package treebuilder

import (
	"testing"

	"github.com/brightframe/gohtml5/tokenizer"
)

func TestActiveFormattingElementsSkipsMarkersAndReflectsStack(t *testing.T) {
	tb := New(tokenizer.New(""))

	if got := tb.ActiveFormattingElements(); len(got) != 0 {
		t.Fatalf("ActiveFormattingElements() on empty list = %v, want empty", got)
	}

	a := tb.insertElement("a", nil)
	tb.appendActiveFormattingEntry("a", nil, a)
	tb.pushFormattingMarker()
	b := tb.insertElement("b", nil)
	tb.appendActiveFormattingEntry("b", nil, b)

	got := tb.ActiveFormattingElements()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("ActiveFormattingElements() = %v, want [%v %v]", got, a, b)
	}

	tb.clearActiveFormattingUpToMarker()
	got = tb.ActiveFormattingElements()
	if len(got) != 1 || got[0] != a {
		t.Fatalf("ActiveFormattingElements() after clear-to-marker = %v, want [%v]", got, a)
	}
}
