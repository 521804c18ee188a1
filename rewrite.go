package pathkit

import (
	"github.com/pkg/errors"
)

// RewriteFunc is a function which rewrites a path to another one.
type RewriteFunc func(string) string

func noopRewrite(path string) string {
	return path
}

// NewRewriteFunc creates a new RewriteFunc to rewrite path.
// The returned function checks its input to match path, if the input
// does not match path, the input is returned unmodified, else it
// interpolates rewrite with the values matched from the input.
// Tokens of rewrite which do not appear in path are kept as is.
func NewRewriteFunc(path, rewrite string) (RewriteFunc, error) {
	if rewrite == "" {
		return noopRewrite, nil
	}
	from, err := CompilePattern(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse path")
	}
	impl := &rewriteImpl{
		from:    from,
		rewrite: rewrite,
	}
	return impl.Rewrite, nil
}

type rewriteImpl struct {
	from    *Pattern
	rewrite string
}

func (p *rewriteImpl) Rewrite(path string) string {
	params, ok := p.from.match(path, false)
	if !ok {
		return path
	}
	keepUnknown := PropertyFunc(func(name string) (any, bool) {
		if v, ok := params.Lookup(name); ok {
			return v, true
		}
		return "(" + name + ")", true
	})
	out, _ := interpolate(p.rewrite, keepUnknown, false, false, nil)
	return out
}
