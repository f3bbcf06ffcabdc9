package domain

// Pluralizer turns a singular noun into its plural form. It is called
// once per catalog name when a catalog is built, never per token.
type Pluralizer interface {
	Plural(word string) string
}

// PhoneticEncoder maps a word to a phonetic code used to catch
// misspelled unit names. Like Pluralizer it only runs at catalog build.
type PhoneticEncoder interface {
	Encode(word string) string
}

// PluralizerFunc adapts a plain function to Pluralizer.
type PluralizerFunc func(string) string

func (f PluralizerFunc) Plural(word string) string { return f(word) }

// PhoneticEncoderFunc adapts a plain function to PhoneticEncoder.
type PhoneticEncoderFunc func(string) string

func (f PhoneticEncoderFunc) Encode(word string) string { return f(word) }
