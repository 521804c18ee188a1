package pathkit

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a compiled path template.
// Besides generating paths, it can match a concrete path back to the
// values of its tokens, e.g. "articles/(articleID)" matches
// "articles/12345" with articleID=12345.
type Pattern struct {
	template string
	names    []string
	re       *regexp.Regexp
}

// CompilePattern parses template into a Pattern.
// Each token matches exactly one non-empty path segment, or part of one.
// A '(' without a closing ')' is matched literally.
func CompilePattern(template string) (*Pattern, error) {
	p := &Pattern{template: template}
	seen := make(map[string]bool)

	var rePattern strings.Builder
	rePattern.WriteByte('^')
	rest := template
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open+1:], ')')
		if end < 0 {
			break
		}
		end += open + 1

		name := rest[open+1 : end]
		if name == "" {
			return nil, errors.Errorf("pathkit: empty token in template %q", template)
		}
		if seen[name] {
			return nil, errors.Errorf("pathkit: token %q repeated in template %q", name, template)
		}
		seen[name] = true
		p.names = append(p.names, name)

		rePattern.WriteString(regexp.QuoteMeta(rest[:open]))
		rePattern.WriteString(`([^/?#]+)`)
		rest = rest[end+1:]
	}
	rePattern.WriteString(regexp.QuoteMeta(rest))
	rePattern.WriteByte('$')

	re, err := regexp.Compile(rePattern.String())
	if err != nil {
		return nil, errors.Wrapf(err, "pathkit: cannot compile template %q", template)
	}
	p.re = re
	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(template string) *Pattern {
	p, err := CompilePattern(template)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the template the pattern was compiled from.
func (p *Pattern) String() string {
	return p.template
}

// Names returns the token names in the order they appear in the template.
func (p *Pattern) Names() []string {
	return append([]string(nil), p.names...)
}

// Match reports whether path matches the pattern, and returns the
// matched token values. The values are unescaped, a value which is
// not valid percent-encoding is returned as found.
func (p *Pattern) Match(path string) (Params, bool) {
	return p.match(path, true)
}

func (p *Pattern) match(path string, unescapeValues bool) (Params, bool) {
	match := p.re.FindStringSubmatch(path)
	if match == nil {
		return Params{}, false
	}
	ps := Params{}
	for i, name := range p.names {
		value := match[i+1]
		if unescapeValues {
			if v, err := unescape(value); err == nil {
				value = v
			}
		}
		ps.Append(name, value)
	}
	return ps, true
}

// Interpolate generates a path from the pattern, see Interpolate.
func (p *Pattern) Interpolate(object any) string {
	return Interpolate(p.template, object)
}
