// Package pathkit builds and parses REST resource paths.
//
// It appends URL encoded query parameters to resource paths, parses
// query strings back into parameters, and generates paths from templates
// such as "articles/(articleID)" by interpolating properties of an object.
// A Router maps object types and HTTP methods to such templates, so that
// the resource path of an object can be asked for by method, and matches
// concrete paths back to the route and parameters which produced them.
package pathkit

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// AnyMethod registers a route used for every method which has no
// route of its own.
const AnyMethod = "*"

type routeKey struct {
	typeName string
	method   string
}

// RouteInfo describes a registered route.
type RouteInfo struct {
	TypeName string
	Method   string
	Template string
}

// RouteMatch is returned from Router.Lookup.
type RouteMatch struct {
	RouteInfo

	// Params holds the values matched from the path.
	Params Params
}

// Router generates resource paths for objects.
// Routes are keyed by the object's type and an HTTP method, a pointer
// and the type it points to share their routes.
//
// It is safe to add routes while the router is in use.
type Router struct {
	mutex  sync.RWMutex
	routes map[routeKey]*Pattern
	order  []routeKey

	// Interpolator sets the policy used to generate paths.
	// By default missing properties are replaced by empty strings.
	Interpolator Interpolator

	Logger log.Logger
}

// NewRouter creates a new Router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[routeKey]*Pattern),
	}
}

// TypeName returns the name routes of obj are registered under,
// e.g. "main.Article" for both main.Article and *main.Article.
func TypeName(obj any) string {
	typ := reflect.TypeOf(obj)
	if typ == nil {
		return ""
	}
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ.String()
}

func normalizeMethod(method string) string {
	if method == "" {
		return AnyMethod
	}
	return strings.ToUpper(method)
}

// Add registers template for the type named typeName and method.
// It fails if the template is invalid or the route already exists.
func (r *Router) Add(typeName, method, template string) error {
	if typeName == "" {
		return errors.New("pathkit: route type name must not be empty")
	}
	p, err := CompilePattern(template)
	if err != nil {
		return err
	}
	key := routeKey{typeName: typeName, method: normalizeMethod(method)}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.routes == nil {
		r.routes = make(map[routeKey]*Pattern)
	}
	if old, ok := r.routes[key]; ok {
		return errors.Wrapf(ErrDuplicateRoute, "%s %s already routes to %s", key.method, key.typeName, old)
	}
	r.routes[key] = p
	r.order = append(r.order, key)
	level.Debug(loggerOr(r.Logger)).Log("msg", "route added", "type", key.typeName, "method", key.method, "template", template)
	return nil
}

// Route registers template for the type of obj and method.
// It panics if the route cannot be added.
func (r *Router) Route(obj any, method, template string) {
	if err := r.Add(TypeName(obj), method, template); err != nil {
		panic(err)
	}
}

// GET is a shortcut for Route(obj, "GET", template).
func (r *Router) GET(obj any, template string) {
	r.Route(obj, "GET", template)
}

// POST is a shortcut for Route(obj, "POST", template).
func (r *Router) POST(obj any, template string) {
	r.Route(obj, "POST", template)
}

// PUT is a shortcut for Route(obj, "PUT", template).
func (r *Router) PUT(obj any, template string) {
	r.Route(obj, "PUT", template)
}

// DELETE is a shortcut for Route(obj, "DELETE", template).
func (r *Router) DELETE(obj any, template string) {
	r.Route(obj, "DELETE", template)
}

// PATCH is a shortcut for Route(obj, "PATCH", template).
func (r *Router) PATCH(obj any, template string) {
	r.Route(obj, "PATCH", template)
}

// Any is a shortcut for Route(obj, AnyMethod, template).
func (r *Router) Any(obj any, template string) {
	r.Route(obj, AnyMethod, template)
}

func (r *Router) pattern(typeName, method string) (*Pattern, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if p, ok := r.routes[routeKey{typeName, normalizeMethod(method)}]; ok {
		return p, true
	}
	p, ok := r.routes[routeKey{typeName, AnyMethod}]
	return p, ok
}

// ResourcePath returns the path of obj for method, generated from the
// route of obj's type for method, or else its AnyMethod route.
// It returns an error wrapping ErrNoRoute if neither exists.
func (r *Router) ResourcePath(obj any, method string) (string, error) {
	typeName := TypeName(obj)
	p, ok := r.pattern(typeName, method)
	if !ok {
		return "", errors.Wrapf(ErrNoRoute, "%s %s", normalizeMethod(method), typeName)
	}
	ip := r.Interpolator
	if ip.Logger == nil {
		ip.Logger = r.Logger
	}
	return ip.Interpolate(p.String(), obj)
}

// Lookup finds the first registered route whose template matches path.
func (r *Router) Lookup(path string) (RouteMatch, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, key := range r.order {
		p := r.routes[key]
		if params, ok := p.Match(path); ok {
			return RouteMatch{
				RouteInfo: RouteInfo{TypeName: key.typeName, Method: key.method, Template: p.String()},
				Params:    params,
			}, true
		}
	}
	return RouteMatch{}, false
}

// Routes returns the registered routes sorted by type name and method.
func (r *Router) Routes() []RouteInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]RouteInfo, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, RouteInfo{TypeName: key.typeName, Method: key.method, Template: r.routes[key].String()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TypeName != out[j].TypeName {
			return out[i].TypeName < out[j].TypeName
		}
		return out[i].Method < out[j].Method
	})
	return out
}
