package contentenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkLookup(b *testing.B) {
	var parsed Coding

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			token := i.String()
			b.SetBytes(int64(len(token)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Lookup(token)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Coding) {}

func TestLookup(t *testing.T) {
	for _, coding := range List {
		require.Equal(t, coding, Lookup(coding.String()))
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, token := range []string{"", "gzi", "gzipp", "GZIP", "Br", "x-custom", "кодировка"} {
		require.Equal(t, Unknown, Lookup(token), token)
	}
}

func TestLookupFold(t *testing.T) {
	require.Equal(t, Gzip, LookupFold("gZIP"))
	require.Equal(t, Br, LookupFold("Br"))
	require.Equal(t, Pack200Gzip, LookupFold("PaCK200-GZip"))
	require.Equal(t, Identity, LookupFold("identity"))
	require.Equal(t, Unknown, LookupFold("x-custom"))
}

func TestCodingString(t *testing.T) {
	require.Equal(t, "unknown", Unknown.String())
	require.Equal(t, "gzip", Gzip.String())
	require.Equal(t, "pack200-gzip", Pack200Gzip.String())
	require.Equal(t, "unknown", Coding(255).String())
}
