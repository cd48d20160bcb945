package markup

// Names of the tags in [DefaultVocabulary].
const (
	TagBold       = "b"
	TagItalic     = "i"
	TagEmphasis   = "em"
	TagCode       = "code"
	TagTeletype   = "tt"
	TagPre        = "pre"
	TagAnchorHref = "a-href"
	TagAnchorName = "a-name"
	TagListItem   = "li"
)

// DefaultVocabulary returns the markup recognized when no vocabulary file is
// configured. The result is a fresh slice that callers may modify.
func DefaultVocabulary() []Tag {
	return []Tag{
		NewTag(TagBold, "<b>", "</b>"),
		NewTag(TagItalic, "<i>", "</i>"),
		NewTag(TagEmphasis, "<em>", "</em>"),
		NewTag(TagCode, "<code>", "</code>"),
		NewTag(TagTeletype, "<tt>", "</tt>"),
		NewTag(TagPre, "<pre>", "</pre>"),
		NewTag(TagAnchorHref, "<a href=", "</a>"),
		NewTag(TagAnchorName, "<a name=", "</a>"),
		NewTag(TagListItem, "<li>", "</li>"),
	}
}

// Lookup returns the tag called name from tags.
func Lookup(tags []Tag, name string) (Tag, bool) {
	for _, t := range tags {
		if t.name == name {
			return t, true
		}
	}

	return Tag{}, false
}
