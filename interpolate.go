package pathkit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Interpolate generates a path from template against the properties of
// object. Property names are written in parentheses, for example,
// given an article whose ArticleID is 12345,
//
//	Interpolate("articles/(articleID)", article)
//
// returns "articles/12345".
//
// object is read through Reflect unless it implements PropertyReader.
// A missing or nil property is replaced by an empty string, and an
// unmatched '(' is kept literally with the rest of the template.
func Interpolate(template string, object any) string {
	out, _ := interpolate(template, Reflect(object), false, false, nil)
	return out
}

// Interpolator is like Interpolate, with configurable policies.
type Interpolator struct {
	// Strict makes Interpolate fail with a *MissingPropertyError instead
	// of substituting an empty string.
	Strict bool

	// Escape percent-escapes the substituted values so each of them stays
	// within a single path segment.
	Escape bool

	Logger log.Logger
}

// Interpolate substitutes the tokens in template with properties of object.
func (ip *Interpolator) Interpolate(template string, object any) (string, error) {
	return interpolate(template, Reflect(object), ip.Strict, ip.Escape, ip.Logger)
}

// interpolate scans template once. Outside a token bytes are copied,
// '(' starts a token and the next ')' ends it. Both delimiters are
// ASCII, so scanning bytes is safe for UTF-8 input.
func interpolate(template string, r PropertyReader, strict, escape bool, logger log.Logger) (string, error) {
	if strings.IndexByte(template, '(') < 0 {
		return template, nil
	}

	var buf strings.Builder
	buf.Grow(len(template))
	inToken := false
	start := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case !inToken && c == '(':
			inToken = true
			start = i + 1
		case inToken && c == ')':
			inToken = false
			name := template[start:i]
			value, ok := r.Property(name)
			if !ok || isNil(value) {
				if strict {
					return "", &MissingPropertyError{Name: name, Template: template}
				}
				level.Debug(loggerOr(logger)).Log("msg", "missing property", "name", name, "template", template)
				continue
			}
			s := stringify(value)
			if escape {
				s = escapeSegment(s)
			}
			buf.WriteString(s)
		case !inToken:
			buf.WriteByte(c)
		}
	}
	if inToken {
		buf.WriteString(template[start-1:])
	}
	return buf.String(), nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface())
}
