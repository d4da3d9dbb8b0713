// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic_test

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/pkg/pagination"
)

/*
TestService_Lifecycle walks a topic from creation through chapter replacement.
*/
func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{"title": "Test Topic", "summary": "S"})

	assert.Equal(t, "test-topic", created.Slug)
	assert.Equal(t, topic.StatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)

	stored, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.RevisionNumber)
	assert.Equal(t, "editor-7", stored.CreatedBy)
	assert.Equal(t, []topic.Chapter{}, stored.Chapters)

	updated, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{
		"chapters": []any{
			map[string]any{"blocks": []any{map[string]any{"type": "video", "url": "u"}}},
		},
	}))
	require.NoError(t, err)

	require.Len(t, updated.Chapters, 1)
	assert.Equal(t, "Chapter 1", updated.Chapters[0].Title)
	require.Len(t, updated.Chapters[0].Blocks, 1)
	assert.Equal(t, topic.BlockVideo, updated.Chapters[0].Blocks[0].Type)
	assert.Equal(t, "u", updated.Chapters[0].Blocks[0].URL)
	assert.Equal(t, 2, updated.RevisionNumber)
	assert.Equal(t, "Test Topic", updated.Title)

	bySlug, err := service.Get(ctx, "test-topic")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

/*
TestService_CreateValidation checks the joined validation message and slug rules.
*/
func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	t.Run("missing_title_and_summary", func(t *testing.T) {
		_, err := service.Create(ctx, editor, mustInput(t, map[string]any{"title": "   "}))

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeValidation, ae.Code)
		assert.Equal(t, "title is required; summary is required", ae.Message)
	})

	t.Run("unusable_slug", func(t *testing.T) {
		_, err := service.Create(ctx, editor, mustInput(t, map[string]any{"title": "!!!", "summary": "S"}))
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})

	t.Run("unknown_status", func(t *testing.T) {
		_, err := service.Create(ctx, editor, mustInput(t, map[string]any{"title": "T", "summary": "S", "status": "live"}))
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})

	t.Run("explicit_slug_wins", func(t *testing.T) {
		created := mustCreate(t, service, map[string]any{"title": "Whatever", "slug": "Roman Roads", "summary": "S"})
		assert.Equal(t, "roman-roads", created.Slug)
	})

	t.Run("blank_slug_falls_back_to_title", func(t *testing.T) {
		created := mustCreate(t, service, map[string]any{"title": "Café Society", "slug": "  ", "summary": "S"})
		assert.Equal(t, "cafe-society", created.Slug)
	})

	count, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "failed creates persist nothing")
}

/*
TestService_SlugCollision checks that a second topic cannot claim a taken slug.
*/
func TestService_SlugCollision(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	mustCreate(t, service, map[string]any{"title": "Dup", "summary": "S"})

	_, err := service.Create(ctx, editor, mustInput(t, map[string]any{"title": "Dup", "summary": "S"}))
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.Equal(t, "Slug already exists", ae.Message)

	count, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	other := mustCreate(t, service, map[string]any{"title": "Other", "summary": "S"})
	_, err = service.Update(ctx, other.ID, editor, mustInput(t, map[string]any{"slug": "dup"}))
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	unchanged, err := service.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "other", unchanged.Slug)
	assert.Equal(t, 1, unchanged.RevisionNumber)
}

/*
TestService_ConcurrentCreateSameSlug races creates on one slug; exactly one wins.
*/
func TestService_ConcurrentCreateSameSlug(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, _ := topic.ParseInput(map[string]any{"title": "Race", "summary": "S"})
			_, err := service.Create(ctx, editor, in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case apperr.HasCode(err, apperr.CodeConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, conflicts)

	count, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestService_PartialUpdate checks that absent fields are left untouched.
*/
func TestService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{
		"title":     "Rome",
		"summary":   "Eternal city",
		"era":       "Antiquity",
		"category":  []any{"history"},
		"extraInfo": map[string]any{"population": 1000000.0, "river": "Tiber"},
		"sources":   []any{map[string]any{"title": "Livy"}},
	})

	updated, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{
		"era":       "Classical",
		"subtitle":  nil,
		"extraInfo": map[string]any{"river": "Tevere", "hills": 7.0},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Classical", updated.Era)
	assert.Equal(t, "", updated.Subtitle)
	assert.Equal(t, "Rome", updated.Title)
	assert.Equal(t, "rome", updated.Slug)
	assert.Equal(t, "Eternal city", updated.Summary)
	assert.Equal(t, []string{"history"}, updated.Category)
	assert.Equal(t, []topic.Source{{Title: "Livy"}}, updated.Sources)
	assert.Equal(t, topic.ExtraInfo{"population": 1000000.0, "river": "Tevere", "hills": 7.0}, updated.ExtraInfo)
	assert.Equal(t, 2, updated.RevisionNumber)

	t.Run("empty_payload_still_bumps_revision", func(t *testing.T) {
		touched, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{}))
		require.NoError(t, err)
		assert.Equal(t, 3, touched.RevisionNumber)
		assert.Equal(t, "Classical", touched.Era)
	})

	t.Run("title_change_reslugs", func(t *testing.T) {
		renamed, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"title": "Ancient Rome"}))
		require.NoError(t, err)
		assert.Equal(t, "ancient-rome", renamed.Slug)

		_, err = service.Get(ctx, "rome")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound), "old slug is released")
	})

	t.Run("blank_title_rejected", func(t *testing.T) {
		_, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"title": " "}))
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})

	t.Run("unknown_status_ignored", func(t *testing.T) {
		kept, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"status": "live"}))
		require.NoError(t, err)
		assert.Equal(t, topic.StatusDraft, kept.Status)
	})

	t.Run("hero_media_merges_into_extra_info", func(t *testing.T) {
		withHero, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"heroMediaId": mediaID}))
		require.NoError(t, err)
		assert.Equal(t, mediaID, withHero.ExtraInfo[topic.HeroMediaKey])
		assert.Equal(t, "Tevere", withHero.ExtraInfo["river"])
	})

	t.Run("blank_hero_media_keeps_existing", func(t *testing.T) {
		for _, blank := range []any{"", "  ", nil} {
			kept, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"heroMediaId": blank}))
			require.NoError(t, err)
			assert.Equal(t, mediaID, kept.ExtraInfo[topic.HeroMediaKey], "blank value %#v", blank)
		}
	})
}

/*
TestService_BlankOptionalReferences checks that blank slug and hero media inputs change nothing.
*/
func TestService_BlankOptionalReferences(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{
		"title":       "Athens",
		"slug":        "custom-athens",
		"summary":     "City of Pallas",
		"heroMediaId": "",
	})
	assert.Equal(t, "custom-athens", created.Slug)

	stored, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.ExtraInfo, topic.HeroMediaKey, "blank hero media is not stored")

	nulled := mustCreate(t, service, map[string]any{"title": "Sparta", "summary": "S", "heroMediaId": nil})
	stored, err = service.Get(ctx, nulled.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.ExtraInfo, topic.HeroMediaKey)

	updated, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"slug": ""}))
	require.NoError(t, err)
	assert.Equal(t, "custom-athens", updated.Slug, "blank slug leaves the custom slug in place")
	assert.Equal(t, 2, updated.RevisionNumber)

	updated, err = service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"slug": "   ", "summary": "Violet-crowned"}))
	require.NoError(t, err)
	assert.Equal(t, "custom-athens", updated.Slug)
	assert.Equal(t, "Violet-crowned", updated.Summary)

	updated, err = service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"slug": "", "title": "Classical Athens"}))
	require.NoError(t, err)
	assert.Equal(t, "classical-athens", updated.Slug, "a new title still reslugs")

	_, err = service.Get(ctx, "custom-athens")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_PublishSetOnce checks that publishedAt is stamped once and kept.
*/
func TestService_PublishSetOnce(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{"title": "Carthage", "summary": "S"})

	published, err := service.Publish(ctx, created.ID, editor)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	archived, err := service.Archive(ctx, created.ID, editor)
	require.NoError(t, err)
	assert.Equal(t, topic.StatusArchived, archived.Status)
	require.NotNil(t, archived.PublishedAt)
	assert.True(t, first.Equal(*archived.PublishedAt))

	republished, err := service.Update(ctx, created.ID, editor, mustInput(t, map[string]any{"status": "published"}))
	require.NoError(t, err)
	assert.Equal(t, topic.StatusPublished, republished.Status)
	assert.True(t, first.Equal(*republished.PublishedAt))
	assert.Equal(t, 4, republished.RevisionNumber)

	t.Run("create_published", func(t *testing.T) {
		direct := mustCreate(t, service, map[string]any{"title": "Tyre", "summary": "S", "status": "published"})
		assert.Equal(t, topic.StatusPublished, direct.Status)
		assert.NotNil(t, direct.PublishedAt)
	})
}

/*
TestService_Archive checks that archiving changes status only and always bumps the revision.
*/
func TestService_Archive(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{"title": "Sparta", "summary": "S", "era": "Archaic"})

	archived, err := service.Archive(ctx, created.ID, editor)
	require.NoError(t, err)
	assert.Equal(t, topic.StatusArchived, archived.Status)
	assert.Equal(t, 2, archived.RevisionNumber)
	assert.Equal(t, "Archaic", archived.Era)
	assert.Nil(t, archived.PublishedAt)

	again, err := service.Archive(ctx, created.ID, editor)
	require.NoError(t, err)
	assert.Equal(t, 3, again.RevisionNumber)

	t.Run("missing", func(t *testing.T) {
		_, err := service.Archive(ctx, "01920000-0000-7000-8000-00000000ffff", editor)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

		_, err = service.Archive(ctx, "not-a-uuid", editor)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

/*
TestService_GetPublished hides drafts and archived topics from the public site.
*/
func TestService_GetPublished(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	draft := mustCreate(t, service, map[string]any{"title": "Draft", "summary": "S"})
	live := mustCreate(t, service, map[string]any{"title": "Live", "summary": "S", "status": "published"})

	_, err := service.GetPublished(ctx, draft.Slug)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	found, err := service.GetPublished(ctx, live.Slug)
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)
}

/*
TestService_Search matches inside titles, block text and source titles, case-insensitively.
*/
func TestService_Search(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	title := mustCreate(t, service, map[string]any{"title": "Ancient Rome", "summary": "S"})
	block := mustCreate(t, service, map[string]any{
		"title":   "Aqueducts",
		"summary": "Water",
		"chapters": []any{map[string]any{"blocks": []any{
			map[string]any{"type": "paragraph", "text": "Built across ROMAN provinces"},
		}}},
	})
	source := mustCreate(t, service, map[string]any{
		"title":   "Latin",
		"summary": "Language",
		"sources": []any{map[string]any{"title": "A History of Rome"}},
	})
	mustCreate(t, service, map[string]any{"title": "Athens", "summary": "Greek city"})
	mustCreate(t, service, map[string]any{"title": "Percent", "summary": "100% literal"})

	result, err := service.List(ctx, topic.Filter{Query: "rome"})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{title.ID, source.ID}, ids)
	assert.Equal(t, 2, result.Total)

	result, err = service.List(ctx, topic.Filter{Query: "roman"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, block.ID, result.Items[0].ID)

	result, err = service.List(ctx, topic.Filter{Query: "%"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1, "wildcards are literal")
	assert.Equal(t, "Percent", result.Items[0].Title)
}

/*
TestService_ListPagination checks ordering, clamping and the page window.
*/
func TestService_ListPagination(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	for i := range 25 {
		mustCreate(t, service, map[string]any{"title": fmt.Sprintf("Topic %02d", i), "summary": "S"})
	}

	result, err := service.List(ctx, topic.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, pagination.DefaultLimit, result.Limit, "unset limit takes the default page size")
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Items, 20)
	assert.Equal(t, "Topic 24", result.Items[0].Title)

	result, err = service.List(ctx, topic.Filter{Params: pagination.Params{Page: 2, Limit: -3}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Limit, "negative limit clamps to one")
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Topic 23", result.Items[0].Title)

	result, err = service.List(ctx, topic.ParseFilter(url.Values{"page": {"2"}}))
	require.NoError(t, err)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Items, 5)
	assert.Equal(t, "Topic 04", result.Items[0].Title)
	assert.Equal(t, "Topic 00", result.Items[4].Title)

	result, err = service.List(ctx, topic.ParseFilter(url.Values{"limit": {"1000"}}))
	require.NoError(t, err)
	assert.Equal(t, 100, result.Limit)
	require.Len(t, result.Items, 25)
	assert.Equal(t, "Topic 24", result.Items[0].Title, "newest first")

	result, err = service.List(ctx, topic.ParseFilter(url.Values{"page": {"9"}}))
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 25, result.Total, "total survives an out-of-range page")

	empty, err := service.List(ctx, topic.Filter{Query: "nothing matches this"})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 1, empty.TotalPages)
}

/*
TestService_Delete removes the topic and releases its slug.
*/
func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	created := mustCreate(t, service, map[string]any{"title": "Troy", "summary": "S"})

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err := service.Get(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.Delete(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	mustCreate(t, service, map[string]any{"title": "Troy", "summary": "S"})
}
