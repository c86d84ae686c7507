package inliner

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encoding selects how a data URI payload is written.
type Encoding int

// Payload encodings.
const (
	EncodingNone Encoding = iota
	EncodingBase64
)

// Content is the decoded form of a data URI. Charset is empty when the URI
// carries no charset parameter.
type Content struct {
	MimeType string
	Data     []byte
	Charset  string
}

const dataScheme = "data:"

// Characters left unescaped by EncodingNone, beyond alphanumerics. They are
// safe inside a url() or quoted-string context.
const minimalSafe = ";/?:@&=+$,-_.!~*'()#"

const hexUpper = "0123456789ABCDEF"

// EncodeDataURI builds a data URI for the given payload. EncodingNone
// percent-escapes the payload and requires it to be valid UTF-8 text;
// binary payloads must use EncodingBase64. An empty charset omits the
// charset parameter.
func EncodeDataURI(mimeType string, data []byte, charset string, encoding Encoding) (string, error) {
	var b strings.Builder

	b.WriteString(dataScheme)
	b.WriteString(mimeType)

	if charset != "" {
		b.WriteString(";charset=")
		b.WriteString(charset)
	}

	switch encoding {
	case EncodingBase64:
		b.WriteString(";base64,")
		b.WriteString(base64.StdEncoding.EncodeToString(data))
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("error encoding %s content: %w", mimeType, ErrEncodingMismatch)
		}

		b.WriteByte(',')
		escapeMinimal(&b, data)
	}

	return b.String(), nil
}

// EncodeTextDataURI encodes a text payload, defaulting the charset to utf-8.
func EncodeTextDataURI(mimeType, text, charset string, encoding Encoding) (string, error) {
	if charset == "" {
		charset = "utf-8"
	}

	return EncodeDataURI(mimeType, []byte(text), charset, encoding)
}

func escapeMinimal(b *strings.Builder, data []byte) {
	for _, c := range data {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || strings.IndexByte(minimalSafe, c) >= 0 {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexUpper[c>>4])
			b.WriteByte(hexUpper[c&15])
		}
	}
}

// DecodeDataURI splits a data URI into its MIME type, payload bytes, and
// charset. The charset is metadata only; payload bytes are never
// re-interpreted as text.
func DecodeDataURI(uri string) (Content, error) {
	rest, ok := strings.CutPrefix(uri, dataScheme)
	if !ok {
		return Content{}, fmt.Errorf("error decoding URI scheme: %w", ErrInvalidURI)
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Content{}, fmt.Errorf("error locating payload separator: %w", ErrInvalidURI)
	}

	c := Content{MimeType: "text/plain"}
	isBase64 := false

	for i, part := range strings.Split(header, ";") {
		switch {
		case i == 0:
			if part != "" {
				c.MimeType = part
			}
		case part == "base64":
			isBase64 = true
		case strings.HasPrefix(part, "charset="):
			c.Charset = part[len("charset="):]
		}
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return Content{}, fmt.Errorf("error decoding base64 payload: %w", ErrInvalidURI)
		}

		c.Data = data
	} else {
		c.Data = unescapeBytes(payload)
	}

	return c, nil
}

// unescapeBytes percent-decodes into raw bytes, passing invalid escape
// sequences through unchanged.
func unescapeBytes(s string) []byte {
	data := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			data = append(data, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		} else {
			data = append(data, s[i])
		}
	}

	return data
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
