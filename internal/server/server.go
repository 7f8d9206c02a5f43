// Package server Pheme
//
// Pheme is the engagement service of the platform: follow relationships
// between accounts, likes and moderation flags on posts, and on-demand
// daily recaps of an account's social activity.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/fritter-net/pheme/internal/middleware"
	"github.com/fritter-net/pheme/internal/service"
)

const maxBodySize = 1024

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
		mm.Session,
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/follow", func(r chi.Router) {
			r.Get("/followers", srv.listFollowers)
			r.Get("/following", srv.listFollowing)
			r.Post("/{userId}", srv.follow)
			r.Delete("/{userId}", srv.unfollow)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Get("/", srv.listLikers)
			r.Post("/{freetId}", srv.like)
			r.Delete("/{freetId}", srv.unlike)
		})

		r.Route("/flag", func(r chi.Router) {
			r.Get("/", srv.listFlags)
			r.Post("/", srv.flag)
			r.Delete("/", srv.unflag)
		})

		r.Post("/recap", srv.recap)
	})
}
