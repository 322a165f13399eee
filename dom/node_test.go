package dom

import "testing"

func TestSiblingNavigation(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	doc.AppendChild(html)

	head := NewElement("head")
	text := NewText(" ")
	body := NewElement("body")
	html.AppendChild(head)
	html.AppendChild(text)
	html.AppendChild(body)

	if head.PreviousSibling() != nil {
		t.Fatalf("head.PreviousSibling() = %v, want nil", head.PreviousSibling())
	}
	if head.NextSibling() != Node(text) {
		t.Fatalf("head.NextSibling() = %v, want text node", head.NextSibling())
	}
	if text.NextSibling() != Node(body) {
		t.Fatalf("text.NextSibling() = %v, want body", text.NextSibling())
	}
	if body.NextSibling() != nil {
		t.Fatalf("body.NextSibling() = %v, want nil", body.NextSibling())
	}
	if body.PreviousSibling() != Node(text) {
		t.Fatalf("body.PreviousSibling() = %v, want text node", body.PreviousSibling())
	}
}

func TestNodeContains(t *testing.T) {
	html := NewElement("html")
	body := NewElement("body")
	p := NewElement("p")
	html.AppendChild(body)
	body.AppendChild(p)

	if !html.Contains(p) {
		t.Fatal("html.Contains(p) = false, want true")
	}
	if !html.Contains(html) {
		t.Fatal("html.Contains(html) = false, want true (a node contains itself)")
	}
	if p.Contains(html) {
		t.Fatal("p.Contains(html) = true, want false")
	}

	other := NewElement("div")
	if html.Contains(other) {
		t.Fatal("html.Contains(other) = true, want false for an unrelated element")
	}
}
