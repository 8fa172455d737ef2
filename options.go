package a7zip

import "golang.org/x/text/encoding"

type openConfig struct {
	engine   string
	password string
	charset  encoding.Encoding
}

// OpenOption configures Open, OpenFile, and OpenReader.
type OpenOption func(*openConfig)

// WithEngine forces a specific engine by name instead of sniffing the
// source. Open fails with ErrNoEngine when no engine of that name is
// registered.
func WithEngine(name string) OpenOption {
	return func(c *openConfig) {
		c.engine = name
	}
}

// WithPassword supplies the archive password. Engines without encryption
// support ignore it.
func WithPassword(password string) OpenOption {
	return func(c *openConfig) {
		c.password = password
	}
}

// WithCharset sets the default encoding applied by the string accessors
// when no per-call encoding is given. By default strings are returned as
// the backend decoded them.
func WithCharset(enc encoding.Encoding) OpenOption {
	return func(c *openConfig) {
		c.charset = enc
	}
}
