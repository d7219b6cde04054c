package routes

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

// middleware...

type Middleware func(HandlerFunc)HandlerFunc;
type HandlerFunc func(*RouterContext, http.ResponseWriter, *http.Request);

func UseMiddleware(w []Middleware, ctx *RouterContext, f HandlerFunc) http.HandlerFunc {
	if len(w) <= 0 {
		return func(w http.ResponseWriter, r *http.Request) {
			f(ctx, w, r);
		}
	}
	var res HandlerFunc = w[len(w)-1](f)
	i := len(w)-2
	for i >= 0 { res = w[i](res); i -= 1; }
	return func(w http.ResponseWriter, r *http.Request) {
		res(ctx, w, r);
	}
}

var Logged Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		log.Printf(" %s %s\n", r.Method, r.URL.Path)
		f(ctx, w, r)
	}
}

var RequestId Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", uuid.NewString())
		f(ctx, w, r)
	}
}

var RateLimit Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		// a nil rate limiter means rate limiting is disabled.
		if ctx.RateLimiter == nil {
			f(ctx, w, r)
			return
		}
		if ctx.RateLimiter.IsIPAllowed(ResolveMostPossibleIP(w, r)) {
			f(ctx, w, r)
		} else {
			w.WriteHeader(429)
		}
	}
}
