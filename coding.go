package contentenc

import "github.com/indigo-web/utils/strcomp"

// Coding is a content coding from the IANA HTTP content coding registry. Unknown
// stands for any token outside of the registry.
type Coding uint8

const (
	Unknown Coding = iota
	Gzip
	Compress
	Deflate
	Identity
	Br
	EXI
	Pack200Gzip
	Zstd

	// Count is the last one enum, so contains the greatest integer value of all the
	// codings. So real number of codings is lower by 1
	Count = iota - 1
)

// List contains all the known codings. They are sorted by their integer value, however
// Unknown coding is not included. So in order to index the List, you must subtract 1 first.
var List = []Coding{Gzip, Compress, Deflate, Identity, Br, EXI, Pack200Gzip, Zstd}

var names = [...]string{
	"unknown", "gzip", "compress", "deflate", "identity", "br", "exi", "pack200-gzip", "zstd",
}

// Lookup classifies a token by exact, case-sensitive comparison against the registered
// coding names. Registered names are lowercase, so tokens in any other register fall
// through to Unknown.
func Lookup(token string) Coding {
	switch len(token) {
	case 2:
		if token == "br" {
			return Br
		}
	case 3:
		if token == "exi" {
			return EXI
		}
	case 4:
		if token == "gzip" {
			return Gzip
		} else if token == "zstd" {
			return Zstd
		}
	case 7:
		if token == "deflate" {
			return Deflate
		}
	case 8:
		if token == "compress" {
			return Compress
		} else if token == "identity" {
			return Identity
		}
	case 12:
		if token == "pack200-gzip" {
			return Pack200Gzip
		}
	}

	return Unknown
}

// LookupFold is Lookup with case-insensitive comparison, for peers which do not
// preserve the register of the tokens they transmit.
func LookupFold(token string) Coding {
	for _, coding := range List {
		if strcomp.EqualFold(token, coding.String()) {
			return coding
		}
	}

	return Unknown
}

func (c Coding) String() string {
	if int(c) >= len(names) {
		return names[Unknown]
	}

	return names[c]
}
