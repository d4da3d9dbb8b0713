// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package media

import (
	"cmp"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/validate"
	"github.com/aman-SINGH7999/the-world/pkg/pagination"
	"github.com/aman-SINGH7999/the-world/pkg/slice"
	"github.com/aman-SINGH7999/the-world/pkg/uuid"
)

const resourceName = "Media"

// Service manages the media library.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new media [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register validates and records an externally hosted asset.
func (service *Service) Register(ctx context.Context, uploadedBy string, in RegisterInput) (*Media, error) {
	media := &Media{
		ID:              uuid.New(),
		Type:            Type(strings.TrimSpace(in.Type)),
		URL:             strings.TrimSpace(in.URL),
		Provider:        Provider(cmp.Or(strings.TrimSpace(in.Provider), string(ProviderOther))),
		ThumbnailURL:    strings.TrimSpace(in.ThumbnailURL),
		Caption:         strings.TrimSpace(in.Caption),
		AltText:         strings.TrimSpace(in.AltText),
		UploadedBy:      uploadedBy,
		UploadedAt:      time.Now().UTC(),
		Processing:      Processing(cmp.Or(strings.TrimSpace(in.Processing), string(ProcessingCompleted))),
		ProcessingError: strings.TrimSpace(in.ProcessingError),
	}

	validator := &validate.Validator{}
	if validator.Required("type", string(media.Type)); media.Type != "" {
		validator.OneOf("type", string(media.Type), names(Types)...)
	}
	if validator.Required("url", media.URL); media.URL != "" {
		validator.URL("url", media.URL)
	}
	validator.OneOf("provider", string(media.Provider), names(Providers)...)
	validator.OneOf("processingStatus", string(media.Processing), names(Processings)...)
	if media.ThumbnailURL != "" {
		validator.URL("thumbnailUrl", media.ThumbnailURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, media); err != nil {
		return nil, service.fail(ctx, "media_register_failed", err)
	}

	service.logger.Info("media_registered",
		slog.String("media_id", media.ID),
		slog.String("type", string(media.Type)),
		slog.String("provider", string(media.Provider)),
		slog.String("actor", uploadedBy),
	)
	return media, nil
}

// Get returns one library entry. Non-UUID ids are NotFound.
func (service *Service) Get(ctx context.Context, id string) (*Media, error) {
	canonical, ok := uuid.Canonical(id)
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}

	media, err := service.repo.FindByID(ctx, canonical)
	if err != nil {
		return nil, service.fail(ctx, "media_get_failed", err)
	}
	return media, nil
}

// List returns one page of the library. A zero limit takes [DefaultLimit].
func (service *Service) List(ctx context.Context, filter Filter) (*ListResult, error) {
	filter.Params = pagination.Normalize(filter.Page, filter.Limit, DefaultLimit)

	items, total, err := service.repo.List(ctx, filter)
	if err != nil {
		return nil, service.fail(ctx, "media_list_failed", err)
	}

	return &ListResult{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Count returns the size of the library.
func (service *Service) Count(ctx context.Context) (int, error) {
	count, err := service.repo.Count(ctx)
	if err != nil {
		return 0, service.fail(ctx, "media_count_failed", err)
	}
	return count, nil
}

// Delete removes the record. The hosted bytes are left to the provider.
func (service *Service) Delete(ctx context.Context, id string, actor string) error {
	canonical, ok := uuid.Canonical(id)
	if !ok {
		return apperr.NotFound(resourceName)
	}

	if err := service.repo.Delete(ctx, canonical); err != nil {
		return service.fail(ctx, "media_delete_failed", err)
	}

	service.logger.Info("media_deleted", slog.String("media_id", canonical), slog.String("actor", actor))
	return nil
}

func (service *Service) fail(ctx context.Context, event string, err error) error {
	appErr := apperr.Ensure(err)
	if appErr.HTTPStatus >= 500 {
		service.logger.ErrorContext(ctx, event, slog.Any("error", err))
	}
	return appErr
}

func names[T ~string](values []T) []string {
	return slice.Map(values, func(v T) string { return string(v) })
}
