// Package contentenc parses Content-Encoding header values into coding layers
// without copying the input. Known codings are yielded as enum values, unknown
// ones as sub-slices of the origin string.
package contentenc

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/uf"
)

// Sequence lazily iterates over the codings of a Content-Encoding header value in
// decode order: the coding applied last is yielded first, so codings must be undone
// in exactly the order they arrive. The zero value is an exhausted sequence.
type Sequence struct {
	remaining string
}

// Encodings returns a Sequence over the comma-separated codings of the value. The
// value is not validated: however malformed, it degrades to a possibly empty set
// of tokens, as extra commas and whitespaces are simply skipped.
func Encodings(value string) Sequence {
	return Sequence{remaining: value}
}

// EncodingsBytes is Encodings over a raw header value. The buffer is not copied,
// so it must stay untouched as long as the sequence or any unknown Encoding
// obtained from it is in use.
func EncodingsBytes(value []byte) Sequence {
	return Encodings(uf.B2S(value))
}

// Next returns the next coding layer to be undone, or ok=false once no tokens are
// left. Exhaustion is terminal: all the further calls keep returning ok=false.
func (s *Sequence) Next() (encoding Encoding, ok bool) {
	for len(s.remaining) > 0 {
		var token string

		if comma := strings.LastIndexByte(s.remaining, ','); comma != -1 {
			token, s.remaining = s.remaining[comma+1:], s.remaining[:comma]
		} else {
			token, s.remaining = s.remaining, ""
		}

		if token = rstripWS(lstripWS(token)); len(token) > 0 {
			return Parse(token), true
		}
	}

	return Encoding{}, false
}

// Walk returns an iterator over the codings of the value, yielded in the same
// decode order Sequence produces them in.
func Walk(value string) iter.Seq[Encoding] {
	return func(yield func(Encoding) bool) {
		encodings := Encodings(value)

		for encoding, ok := encodings.Next(); ok; encoding, ok = encodings.Next() {
			if !yield(encoding) {
				return
			}
		}
	}
}
