package token

// Options configures Tokenize. The zero value is usable; DefaultOptions
// matches the most permissive reading of §6.2.
type Options struct {
	IncludeWhitespace              bool
	LabelsHaveDigits               bool
	CaptureDecimalNumbers          bool
	ResolveEscapedStringCharacters bool
}

// DefaultOptions returns the tokenizer's default configuration: no
// whitespace tokens, labels are letters-only, decimal numbers are
// captured as a single token, and in-string escapes are resolved.
func DefaultOptions() Options {
	return Options{
		IncludeWhitespace:              false,
		LabelsHaveDigits:               false,
		CaptureDecimalNumbers:          true,
		ResolveEscapedStringCharacters: true,
	}
}

// WithWhitespace returns a copy of o with IncludeWhitespace set.
func (o Options) WithWhitespace(include bool) Options {
	o.IncludeWhitespace = include
	return o
}

// WithLabelsHaveDigits returns a copy of o with LabelsHaveDigits set.
func (o Options) WithLabelsHaveDigits(v bool) Options {
	o.LabelsHaveDigits = v
	return o
}

// WithDecimalNumbers returns a copy of o with CaptureDecimalNumbers set.
func (o Options) WithDecimalNumbers(v bool) Options {
	o.CaptureDecimalNumbers = v
	return o
}

// WithResolveEscapes returns a copy of o with
// ResolveEscapedStringCharacters set.
func (o Options) WithResolveEscapes(v bool) Options {
	o.ResolveEscapedStringCharacters = v
	return o
}
