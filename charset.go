package a7zip

import "golang.org/x/text/encoding"

// applyCharset reinterprets a possibly byte-smuggled string under enc.
//
// Backends sometimes return genuinely decoded text and sometimes a raw byte
// sequence widened one byte per character through a text channel. When every
// character fits in a single byte the two shapes are indistinguishable by
// inspection: a short, accidentally all-single-byte decoded string looks
// exactly like smuggled bytes of the same length. This heuristic therefore
// only reinterprets when reinterpretation cannot corrupt wide text, and
// trusts the backend otherwise. Ideally the backend would report which
// strings it already decoded.
func applyCharset(s string, enc encoding.Encoding) string {
	if enc == nil {
		return s
	}

	for _, r := range s {
		if r > 0xFF {
			// Not a pure byte list, can't apply the encoding.
			return s
		}
	}

	bytes := make([]byte, 0, len(s))
	for _, r := range s {
		bytes = append(bytes, byte(r))
	}

	decoded, err := enc.NewDecoder().Bytes(bytes)
	if err != nil {
		return s
	}
	return string(decoded)
}
