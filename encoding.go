package contentenc

// Encoding is a single coding layer of a message body. Known codings are carried
// in Coding, and tokens outside of the registry are carried in Token as-is, with
// Coding left Unknown.
type Encoding struct {
	Coding Coding
	// Token holds an unknown coding token. It borrows the memory of the string it
	// was parsed from, thereby stays valid only as long as the origin does.
	Token string
}

// Std returns an Encoding of a known coding.
func Std(coding Coding) Encoding {
	return Encoding{Coding: coding}
}

// Other returns an Encoding of an unknown coding token.
func Other(token string) Encoding {
	return Encoding{Token: token}
}

// Parse strips the token of surrounding whitespaces and classifies it.
func Parse(token string) Encoding {
	token = rstripWS(lstripWS(token))

	if coding := Lookup(token); coding != Unknown {
		return Std(coding)
	}

	return Other(token)
}

func (e Encoding) String() string {
	if e.Coding == Unknown {
		return e.Token
	}

	return e.Coding.String()
}

func lstripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func rstripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}
