// Package module wires diff checks into the API using modkit
package module

import (
	"net/http"

	modkit "wordwarden/internal/modkit"
	"wordwarden/internal/modkit/httpkit"
	str "wordwarden/internal/platform/strings"

	chttp "wordwarden/internal/services/api/check/http"
	checkdom "wordwarden/internal/services/check/domain"
)

// Module implements the check API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	checker checkdom.CheckerPort
}

// Ports declares the required injected worker port(s) for this API module
type Ports struct {
	Checker checkdom.CheckerPort
}

// New constructs the check module (the Checker port comes from services/check)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("check"),
		modkit.WithPrefix("/check"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Checker == nil {
		panic("check API module requires Checker port (from services/check)")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		checker:   injected.Checker,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.Register(r, m.checker)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
