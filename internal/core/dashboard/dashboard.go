// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Package dashboard serves the admin landing counters.
package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/middleware"
	"github.com/aman-SINGH7999/the-world/internal/platform/respond"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

// TopicCounter counts topics by status; an empty status counts all.
type TopicCounter interface {
	Count(ctx context.Context, status topic.Status) (int, error)
}

// MediaCounter counts library entries.
type MediaCounter interface {
	Count(ctx context.Context) (int, error)
}

// Summary is the dashboard payload.
type Summary struct {
	AllTopics       int `json:"all_topics"`
	PublishedTopics int `json:"published_topics"`
	AllMedia        int `json:"all_media"`
}

// Service aggregates the counters.
type Service struct {
	topics TopicCounter
	media  MediaCounter
}

// NewService constructs a new dashboard [Service].
func NewService(topics TopicCounter, media MediaCounter) *Service {
	return &Service{topics: topics, media: media}
}

// Summary runs the three counts concurrently. The first failure wins.
func (service *Service) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		summary.AllTopics, err = service.topics.Count(groupCtx, "")
		return err
	})
	group.Go(func() (err error) {
		summary.PublishedTopics, err = service.topics.Count(groupCtx, topic.StatusPublished)
		return err
	})
	group.Go(func() (err error) {
		summary.AllMedia, err = service.media.Count(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Handler implements GET /admin/dashboard.
type Handler struct {
	service *Service
}

// NewHandler constructs a new dashboard [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the counters to editors and above.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleEditor))
	router.Get("/", handler.summary)
	return router
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
