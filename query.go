package pathkit

import (
	"net/url"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/text/encoding"
)

// AppendQueryParams returns path with the URL encoded params appended
// as a query string, e.g. "/contacts" and {"foo": "bar", "color": "red"}
// gives "/contacts?color=red&foo=bar".
//
// The keys are emitted in sorted order. Path is assumed not to contain
// a query already, it is not checked.
func AppendQueryParams(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	return AppendParams(path, ParamsFromMap(params))
}

// AppendParams is like AppendQueryParams, but keeps the order of params.
func AppendParams(path string, params Params) string {
	if params.Len() == 0 {
		return path
	}
	return path + "?" + EncodeQuery(params)
}

// EncodeQuery encodes params as "k1=v1&k2=v2" in the order of params.
func EncodeQuery(params Params) string {
	var buf strings.Builder
	for i, k := range params.Keys {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(QueryEscape(k))
		buf.WriteByte('=')
		buf.WriteString(QueryEscape(params.Values[i]))
	}
	return buf.String()
}

// QueryEscape percent-encodes s for use as a query key or value.
// Only ASCII letters, digits and "-_.~" are left unescaped,
// a space is encoded as "%20".
func QueryEscape(s string) string {
	// url.QueryEscape escapes a literal '+' as %2B, so every '+' left
	// in its output stands for a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// QueryDecoder parses the query portion of URL-like strings.
type QueryDecoder struct {
	// Encoding converts percent-decoded bytes to text.
	// A nil Encoding means UTF-8.
	Encoding encoding.Encoding

	// Strict makes the decoder fail with a *DecodeError on the first
	// malformed pair. By default malformed pairs are skipped.
	Strict bool

	Logger log.Logger
}

// Decode parses the parameters after the first '?' of source.
// Pairs are separated by '&' and split on the first '='; a pair
// without '=' has an empty value and empty pairs are ignored.
// When a key is repeated, the last value wins and the key keeps
// the position of its first occurrence.
func (d *QueryDecoder) Decode(source string) (Params, error) {
	ps := Params{}
	err := d.walk(source, ps.Set)
	if err != nil {
		return Params{}, err
	}
	return ps, nil
}

// DecodeValues is like Decode, but keeps every value of repeated keys.
func (d *QueryDecoder) DecodeValues(source string) (url.Values, error) {
	values := url.Values{}
	err := d.walk(source, values.Add)
	if err != nil {
		return url.Values{}, err
	}
	return values, nil
}

func (d *QueryDecoder) walk(source string, fn func(key, value string)) error {
	_, query, found := strings.Cut(source, "?")
	if !found {
		return nil
	}
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := decodeComponent(rawKey, d.Encoding)
		var value string
		if err == nil {
			value, err = decodeComponent(rawValue, d.Encoding)
		}
		if err != nil {
			if d.Strict {
				return &DecodeError{Pair: pair, Err: err}
			}
			level.Debug(loggerOr(d.Logger)).Log("msg", "skipping malformed query pair", "pair", pair, "err", err)
			continue
		}
		fn(key, value)
	}
	return nil
}

// QueryParameters returns the parameters of the query string in source,
// e.g. "/contacts?foo=bar&color=red" gives {"foo": "bar", "color": "red"}.
// Percent-escaped bytes are decoded using enc, nil means UTF-8.
//
// Malformed pairs are skipped, a repeated key keeps its last value.
// A source without '?' gives an empty map.
func QueryParameters(source string, enc encoding.Encoding) map[string]string {
	d := QueryDecoder{Encoding: enc}
	ps, _ := d.Decode(source)
	return ps.Map()
}

// QueryValues is like QueryParameters, but keeps every value of
// repeated keys, in order.
func QueryValues(source string, enc encoding.Encoding) url.Values {
	d := QueryDecoder{Encoding: enc}
	values, _ := d.DecodeValues(source)
	return values
}
