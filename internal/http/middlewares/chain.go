package middlewares

import "net/http"

// Middleware decora un http.Handler; se puede pasar directo a chi.Router.Use.
type Middleware func(http.Handler) http.Handler

// Chain envuelve h con mws. El primero queda más afuera:
// Chain(h, A, B) == A(B(h)).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := range mws {
		h = mws[len(mws)-1-i](h)
	}
	return h
}
