package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos desta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()

	// Rotas inexistentes respondem no mesmo formato de erro da API
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router, envolvendo cada handler com seus middlewares
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
