package tagged

// String is a string value branded with the marker type T.
//
// Two String instantiations with different markers are unrelated types: the
// compiler rejects passing one where the other is expected. Within a single
// brand, values are comparable and compare by their underlying text, so a
// String is usable as a map key.
//
// The zero value is the branded empty string.
type String[T any] struct {
	value string
}

// Make wraps text with the brand T. No validation is performed; the wrapper
// exists purely to fix the text's meaning at the type level.
func Make[T any](text string) String[T] {
	return String[T]{value: text}
}

// Unwrap returns the underlying text. This is the only way to read a tagged
// string; requiring the explicit call keeps accidental untagging visible at
// the call site.
func (s String[T]) Unwrap() string {
	return s.value
}
