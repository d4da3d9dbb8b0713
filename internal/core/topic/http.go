// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aman-SINGH7999/the-world/internal/platform/middleware"
	requestutil "github.com/aman-SINGH7999/the-world/internal/platform/request"
	"github.com/aman-SINGH7999/the-world/internal/platform/respond"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for topics.
type Handler struct {
	service *Service
}

// NewHandler constructs a new topic [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes serves the public site. Only published topics are visible.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)
	router.Get("/{identifier}", handler.getPublished)

	return router
}

// AdminRoutes serves the authoring panel. Every route requires an editor or above.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))

		admin.Get("/", handler.list)
		admin.Post("/", handler.create)
		admin.Get("/{id}", handler.get)
		admin.Put("/{id}", handler.update)
		admin.Patch("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
		admin.Post("/{id}/archive", handler.archive)
		admin.Post("/{id}/publish", handler.publish)
	})

	return router
}

// # Public

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	filter := ParseFilter(request.URL.Query())
	filter.Status = StatusPublished

	handler.writeList(writer, request, filter)
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	topic, err := handler.service.GetPublished(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

// # Admin

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	handler.writeList(writer, request, ParseFilter(request.URL.Query()))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	topic, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actor, in, err := parseWrite(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	projection, err := handler.service.Create(request.Context(), actor, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, projection)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actor, in, err := parseWrite(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), actor, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

func (handler *Handler) archive(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.service.Archive)
}

func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.service.Publish)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

type transitionFunc func(ctx context.Context, id string, actor Actor) (*Topic, error)

func (handler *Handler) transition(writer http.ResponseWriter, request *http.Request, apply transitionFunc) {
	actor, err := actorFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := apply(request.Context(), requestutil.Param(request, "id"), actor)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

func (handler *Handler) writeList(writer http.ResponseWriter, request *http.Request, filter Filter) {
	result, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result.Items, result.Meta())
}

// parseWrite resolves the actor and decodes the payload once into an [Input].
func parseWrite(writer http.ResponseWriter, request *http.Request) (Actor, Input, error) {
	actor, err := actorFrom(request)
	if err != nil {
		return Actor{}, Input{}, err
	}

	payload, err := requestutil.DecodeObject(writer, request)
	if err != nil {
		return Actor{}, Input{}, err
	}

	in, err := ParseInput(payload)
	return actor, in, err
}

func actorFrom(request *http.Request) (Actor, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
