// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/validate"
	"github.com/aman-SINGH7999/the-world/pkg/pagination"
	"github.com/aman-SINGH7999/the-world/pkg/pointer"
	"github.com/aman-SINGH7999/the-world/pkg/slug"
	"github.com/aman-SINGH7999/the-world/pkg/uuid"
)

const (
	maxTitleLen   = 300
	maxSummaryLen = 5000
	resourceName  = "Topic"
)

// slugTaken is returned when the desired slug belongs to another topic.
func slugTaken() error {
	return apperr.Conflict("Slug already exists")
}

// # Service Layer

// Service is the topic write pipeline and query entry point.
//
// Every exported method returns only [apperr.AppError] values. Unexpected
// errors are logged with context and surfaced as Internal.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// # Lookups

/*
Get returns a topic by UUID, falling back to a slug lookup for any other
identifier.
*/
func (service *Service) Get(ctx context.Context, identifier string) (*Topic, error) {
	var (
		topic *Topic
		err   error
	)

	if id, ok := uuid.Canonical(identifier); ok {
		topic, err = service.repo.FindByID(ctx, id)
	} else {
		topic, err = service.repo.FindBySlug(ctx, identifier)
	}

	if err != nil {
		return nil, service.fail(ctx, "topic_get_failed", err, slog.String("identifier", identifier))
	}
	return topic, nil
}

/*
GetPublished is [Service.Get] for the public site: anything not published is
reported as missing.
*/
func (service *Service) GetPublished(ctx context.Context, identifier string) (*Topic, error) {
	topic, err := service.Get(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if topic.Status != StatusPublished {
		return nil, apperr.NotFound(resourceName)
	}
	return topic, nil
}

/*
List returns one page of topics matching filter, newest first.

Page and limit are normalized first, so callers may pass raw values. A zero
limit takes the default page size.
*/
func (service *Service) List(ctx context.Context, filter Filter) (*ListResult, error) {
	filter.Params = pagination.Normalize(filter.Page, filter.Limit, pagination.DefaultLimit)

	items, total, err := service.repo.List(ctx, filter)
	if err != nil {
		return nil, service.fail(ctx, "topic_list_failed", err)
	}

	return &ListResult{
		Items:      items,
		Total:      total,
		TotalPages: pagination.TotalPages(total, filter.Limit),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Count returns the number of topics in status; empty counts all.
func (service *Service) Count(ctx context.Context, status Status) (int, error) {
	count, err := service.repo.Count(ctx, status)
	if err != nil {
		return 0, service.fail(ctx, "topic_count_failed", err)
	}
	return count, nil
}

// # Write Pipeline

/*
Create validates the payload, claims the slug and persists a new topic at
revision 1.

The slug comes from the explicit slug when non-blank, otherwise from the
title. The existence check gives an early error; the store's atomic claim is
what actually guarantees uniqueness.
*/
func (service *Service) Create(ctx context.Context, actor Actor, in Input) (*Projection, error) {
	title := strings.TrimSpace(pointer.Val(in.Title))
	summary := pointer.Val(in.Summary)
	status := StatusDraft
	if in.Status != nil && *in.Status != "" {
		status = Status(*in.Status)
	}

	desiredSlug := slug.From(title)
	if explicit := strings.TrimSpace(pointer.Val(in.Slug)); explicit != "" {
		desiredSlug = slug.From(explicit)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, maxTitleLen)
	validator.Required(FieldSummary, summary).MaxLen(FieldSummary, summary, maxSummaryLen)
	if title != "" {
		validator.Slug(FieldSlug, desiredSlug)
	}
	validator.OneOf(FieldStatus, string(status), statusNames()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureSlugFree(ctx, desiredSlug, ""); err != nil {
		return nil, err
	}

	now := service.now()
	topic := &Topic{
		ID:              uuid.New(),
		Title:           title,
		Slug:            desiredSlug,
		Subtitle:        pointer.Val(in.Subtitle),
		Category:        derefList(in.Category),
		Era:             pointer.Val(in.Era),
		Location:        pointer.Val(in.Location),
		Timeline:        pointer.Val(in.Timeline),
		Summary:         summary,
		Overview:        pointer.Val(in.Overview),
		Chapters:        derefList(in.Chapters),
		Sources:         derefList(in.Sources),
		KeyPoints:       derefList(in.KeyPoints),
		HeroMediaURL:    pointer.Val(in.HeroMediaURL),
		ExtraInfo:       ExtraInfo{}.Merge(in.ExtraInfo),
		Status:          status,
		CreatedBy:       actor.UserID,
		UpdatedBy:       actor.UserID,
		RevisionNumber:  1,
		CreatedAt:       now,
		UpdatedAt:       now,
		MetaTitle:       pointer.Val(in.MetaTitle),
		MetaDescription: pointer.Val(in.MetaDescription),
	}

	if hero := strings.TrimSpace(pointer.Val(in.HeroMediaID)); hero != "" {
		topic.ExtraInfo[HeroMediaKey] = hero
	}

	if status == StatusPublished {
		topic.PublishedAt = &now
	}

	if err := service.repo.Create(ctx, topic); err != nil {
		return nil, service.fail(ctx, "topic_create_failed", err, slog.String("slug", desiredSlug))
	}

	service.logger.Info("topic_created",
		slog.String("topic_id", topic.ID),
		slog.String("slug", topic.Slug),
		slog.String("status", string(topic.Status)),
		slog.String("actor", actor.UserID),
	)

	projection := topic.Project()
	return &projection, nil
}

/*
Update applies a partial payload to an existing topic.

Only present fields are staged. Chapters and sources replace the stored
arrays; extraInfo (and heroMediaId) merge into the stored map. An
unrecognized status is ignored rather than rejected. Revision, updatedBy and
updatedAt are always staged.
*/
func (service *Service) Update(ctx context.Context, id string, actor Actor, in Input) (*Topic, error) {
	current, err := service.load(ctx, id)
	if err != nil {
		return nil, service.fail(ctx, "topic_update_failed", err, slog.String("topic_id", id))
	}

	changes := &Changes{
		Subtitle:        in.Subtitle,
		Overview:        in.Overview,
		Timeline:        in.Timeline,
		Era:             in.Era,
		Location:        in.Location,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		HeroMediaURL:    in.HeroMediaURL,
		Category:        in.Category,
		KeyPoints:       in.KeyPoints,
		Chapters:        in.Chapters,
		Sources:         in.Sources,
	}

	validator := &validate.Validator{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, maxTitleLen)
		changes.Title = &title
	}

	if in.Summary != nil {
		validator.Required(FieldSummary, *in.Summary).MaxLen(FieldSummary, *in.Summary, maxSummaryLen)
		changes.Summary = in.Summary
	}

	if desired, ok := desiredSlug(in); ok {
		validator.Slug(FieldSlug, desired)

		if !validator.HasErrors() && desired != current.Slug {
			if err := service.ensureSlugFree(ctx, desired, current.ID); err != nil {
				return nil, err
			}
			changes.Slug = &desired
		}
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if in.ExtraInfo != nil {
		changes.ExtraInfo = ExtraInfo{}.Merge(in.ExtraInfo)
	}
	if hero := strings.TrimSpace(pointer.Val(in.HeroMediaID)); hero != "" {
		changes.ExtraInfo = changes.ExtraInfo.Merge(ExtraInfo{HeroMediaKey: hero})
	}

	if in.Status != nil {
		if status := Status(*in.Status); status.IsValid() {
			changes.Status = &status
		}
	}

	return service.apply(ctx, current, actor, changes, "topic_updated")
}

/*
Archive sets the status to archived and touches nothing else. Archiving an
archived topic still bumps the revision.
*/
func (service *Service) Archive(ctx context.Context, id string, actor Actor) (*Topic, error) {
	return service.transition(ctx, id, actor, StatusArchived, "topic_archived")
}

/*
Publish sets the status to published. PublishedAt is stamped only on the
first publication and survives later archive/re-publish cycles.
*/
func (service *Service) Publish(ctx context.Context, id string, actor Actor) (*Topic, error) {
	return service.transition(ctx, id, actor, StatusPublished, "topic_published")
}

// Delete removes a topic permanently. It is not part of the update path.
func (service *Service) Delete(ctx context.Context, id string) error {
	canonical, ok := uuid.Canonical(id)
	if !ok {
		return apperr.NotFound(resourceName)
	}

	if err := service.repo.Delete(ctx, canonical); err != nil {
		return service.fail(ctx, "topic_delete_failed", err, slog.String("topic_id", id))
	}

	service.logger.Info("topic_deleted", slog.String("topic_id", id))
	return nil
}

// # Internal Helpers

func (service *Service) transition(ctx context.Context, id string, actor Actor, status Status, event string) (*Topic, error) {
	current, err := service.load(ctx, id)
	if err != nil {
		return nil, service.fail(ctx, event+"_failed", err, slog.String("topic_id", id))
	}

	return service.apply(ctx, current, actor, &Changes{Status: &status}, event)
}

// load fetches a topic for writing. Non-UUID ids cannot exist and are NotFound.
func (service *Service) load(ctx context.Context, id string) (*Topic, error) {
	canonical, ok := uuid.Canonical(id)
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}
	return service.repo.FindByID(ctx, canonical)
}

// apply stamps audit fields, offers a publishedAt candidate when the topic
// becomes published without one, and writes the changes.
func (service *Service) apply(ctx context.Context, current *Topic, actor Actor, changes *Changes, event string) (*Topic, error) {
	now := service.now()
	changes.UpdatedBy = actor.UserID
	changes.UpdatedAt = now

	if changes.Status != nil && *changes.Status == StatusPublished && current.PublishedAt == nil {
		changes.PublishedAt = &now
	}

	updated, err := service.repo.Update(ctx, current.ID, changes)
	if err != nil {
		return nil, service.fail(ctx, event+"_failed", err, slog.String("topic_id", current.ID))
	}

	service.logger.Info(event,
		slog.String("topic_id", updated.ID),
		slog.Int("revision", updated.RevisionNumber),
		slog.String("status", string(updated.Status)),
		slog.String("actor", actor.UserID),
	)

	return updated, nil
}

// ensureSlugFree fails with a Conflict when a topic other than ownerID owns slug.
func (service *Service) ensureSlugFree(ctx context.Context, desired, ownerID string) error {
	existing, err := service.repo.FindBySlug(ctx, desired)
	switch {
	case apperr.HasCode(err, apperr.CodeNotFound):
		return nil
	case err != nil:
		return service.fail(ctx, "topic_slug_check_failed", err, slog.String("slug", desired))
	case existing.ID == ownerID:
		return nil
	}

	service.logger.Warn("topic_slug_conflict",
		slog.String("slug", desired),
		slog.String("owner_id", existing.ID),
	)
	return slugTaken()
}

// fail converts err into an AppError, logging anything unclassified.
func (service *Service) fail(ctx context.Context, event string, err error, attrs ...slog.Attr) error {
	appErr := apperr.Ensure(err)

	// Lost the slug race after the pre-check passed
	if appErr.Code == apperr.CodeConflict {
		service.logger.WarnContext(ctx, "topic_slug_conflict", slog.String("event", event))
	}

	if appErr.HTTPStatus >= 500 {
		args := make([]any, 0, len(attrs)+1)
		args = append(args, slog.Any("error", err))
		for _, attr := range attrs {
			args = append(args, attr)
		}
		service.logger.ErrorContext(ctx, event, args...)
	}

	return appErr
}

// desiredSlug picks the slug source for an update: a non-blank slug input,
// else a non-blank incoming title. A blank slug is ignored, and ok is false
// when neither source is present so the current slug stays.
func desiredSlug(in Input) (desired string, ok bool) {
	if explicit := strings.TrimSpace(pointer.Val(in.Slug)); explicit != "" {
		return slug.From(explicit), true
	}
	if title := strings.TrimSpace(pointer.Val(in.Title)); title != "" {
		return slug.From(title), true
	}
	return "", false
}

func statusNames() []string {
	names := make([]string, len(Statuses))
	for i, status := range Statuses {
		names[i] = string(status)
	}
	return names
}

func derefList[T any](list *[]T) []T {
	if list == nil || *list == nil {
		return []T{}
	}
	return *list
}
