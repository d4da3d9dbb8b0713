// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aman-SINGH7999/the-world/internal/platform/middleware"
	requestutil "github.com/aman-SINGH7999/the-world/internal/platform/request"
	"github.com/aman-SINGH7999/the-world/internal/platform/respond"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

// Handler implements the HTTP layer for the media library.
type Handler struct {
	service *Service
}

// NewHandler constructs a new media [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes serves the library to editors and above.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/", handler.list)
	router.Post("/", handler.register)
	router.Get("/{id}", handler.get)
	router.Delete("/{id}", handler.delete)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.List(request.Context(), ParseFilter(request.URL.Query()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result.Items, result.Meta())
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var in RegisterInput
	if err := requestutil.DecodeJSON(writer, request, &in); err != nil {
		respond.Error(writer, request, err)
		return
	}

	media, err := handler.service.Register(request.Context(), claims.UserID, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, media)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	media, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, media)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"), claims.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
