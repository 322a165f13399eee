package dom

// Syntax selects the serialization grammar: Html emits void elements and
// boolean attributes the HTML way; Xml always self-closes and always
// writes attribute values.
type Syntax int

const (
	Html Syntax = iota
	Xml
)

// EscapeMode selects which named-entity table serialize prefers when
// escaping text and attribute values.
type EscapeMode int

const (
	// Xhtml escapes only the five XML-predefined entities.
	Xhtml EscapeMode = iota
	// Base escapes a small common set of named entities (the default).
	Base
	// Extended escapes the full HTML5 named character reference table.
	Extended
)

// CoreCharset buckets an output charset into a coarse serialization
// strategy, mirroring jsoup's CharsetEncoderCoreCharset.
type CoreCharset int

const (
	Ascii CoreCharset = iota
	Utf
	Fallback
)

// OutputSettings controls how a document tree is serialized back to text.
type OutputSettings struct {
	Syntax          Syntax
	EscapeMode      EscapeMode
	Charset         string
	CoreCharset     CoreCharset
	PrettyPrint     bool
	IndentAmount    int
	MaxPaddingWidth int
	Outline         bool
}

// DefaultOutputSettings returns the conventional HTML serialization
// settings: pretty-printed, UTF-8, base entity escaping.
func DefaultOutputSettings() *OutputSettings {
	return &OutputSettings{
		Syntax:          Html,
		EscapeMode:      Base,
		Charset:         "UTF-8",
		CoreCharset:     Utf,
		PrettyPrint:     true,
		IndentAmount:    1,
		MaxPaddingWidth: 30,
	}
}
