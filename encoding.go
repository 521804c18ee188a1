package pathkit

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// LookupEncoding returns the text encoding registered under name.
// IANA names are tried first, then the WHATWG labels used by browsers.
// An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "pathkit: unknown encoding %q", name)
	}
	return enc, nil
}

func isUTF8(enc encoding.Encoding) bool {
	if enc == nil || enc == unicode.UTF8 {
		return true
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// decodeComponent percent-decodes s and converts the resulting bytes
// from enc to a UTF-8 string.
func decodeComponent(s string, enc encoding.Encoding) (string, error) {
	raw, err := unescape(s)
	if err != nil {
		return "", err
	}
	if isUTF8(enc) {
		if !utf8.ValidString(raw) {
			return "", errInvalidUTF8
		}
		return raw, nil
	}
	out, err := enc.NewDecoder().String(raw)
	if err != nil {
		return "", errors.Wrap(err, "cannot convert from encoding")
	}
	return out, nil
}
