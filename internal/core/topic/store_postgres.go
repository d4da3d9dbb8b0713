// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aman-SINGH7999/the-world/internal/platform/apperr"
	"github.com/aman-SINGH7999/the-world/internal/platform/database/schema"
	"github.com/aman-SINGH7999/the-world/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository stores each topic as one row; chapters, sources and
// extraInfo live in JSONB columns so the aggregate is read and written whole.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed topic store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

var (
	topicColumns   = strings.Join(schema.CoreTopic.Columns(), ", ")
	topicConflicts = dberr.Conflicts{schema.CoreTopic.SlugKey: "Slug already exists"}
)

// wrap classifies driver errors for this table.
func wrap(err error) error {
	return dberr.Wrap(err, resourceName, topicConflicts)
}

func scanTopic(row pgx.Row, extra ...any) (*Topic, error) {
	topic := &Topic{}
	dest := []any{
		&topic.ID, &topic.Title, &topic.Slug, &topic.Subtitle, &topic.Category, &topic.Era,
		&topic.Location, &topic.Timeline, &topic.Summary, &topic.Overview, &topic.Chapters,
		&topic.Sources, &topic.KeyPoints, &topic.HeroMediaURL, &topic.ExtraInfo, &topic.Status,
		&topic.CreatedBy, &topic.UpdatedBy, &topic.PublishedAt, &topic.RevisionNumber,
		&topic.CreatedAt, &topic.UpdatedAt, &topic.MetaTitle, &topic.MetaDescription,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return topic, nil
}

/*
Create inserts the topic. The UNIQUE slug constraint is the authoritative
claim: a concurrent create that passed the service pre-check fails here with
a Conflict.
*/
func (repository *postgresRepository) Create(ctx context.Context, topic *Topic) error {
	placeholders := make([]string, len(schema.CoreTopic.Columns()))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.CoreTopic.Table, topicColumns, strings.Join(placeholders, ", "))

	_, err := repository.pool.Exec(ctx, query,
		topic.ID, topic.Title, topic.Slug, topic.Subtitle, topic.Category, topic.Era,
		topic.Location, topic.Timeline, topic.Summary, topic.Overview, topic.Chapters,
		topic.Sources, topic.KeyPoints, topic.HeroMediaURL, topic.ExtraInfo, topic.Status,
		topic.CreatedBy, topic.UpdatedBy, topic.PublishedAt, topic.RevisionNumber,
		topic.CreatedAt, topic.UpdatedAt, topic.MetaTitle, topic.MetaDescription,
	)
	return wrap(err)
}

// FindByID returns the topic with the given ID.
func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Topic, error) {
	return repository.findOne(ctx, schema.CoreTopic.ID, id)
}

// FindBySlug returns the topic owning the slug.
func (repository *postgresRepository) FindBySlug(ctx context.Context, slug string) (*Topic, error) {
	return repository.findOne(ctx, schema.CoreTopic.Slug, slug)
}

func (repository *postgresRepository) findOne(ctx context.Context, column, value string) (*Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, topicColumns, schema.CoreTopic.Table, column)

	topic, err := scanTopic(repository.pool.QueryRow(ctx, query, value))
	if err != nil {
		return nil, wrap(err)
	}
	return topic, nil
}

/*
Update applies the staged changes in one UPDATE ... RETURNING statement.

Three fields are computed by the database rather than the caller, so
concurrent writers to disjoint fields do not clobber each other:
  - revisionnumber = revisionnumber + 1
  - extrainfo = extrainfo || patch (shallow, per key)
  - publishedat = COALESCE(publishedat, candidate) (set once)
*/
func (repository *postgresRepository) Update(ctx context.Context, id string, changes *Changes) (*Topic, error) {
	query, args := updateQuery(id, changes)

	topic, err := scanTopic(repository.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrap(err)
	}
	return topic, nil
}

// updateQuery renders the UPDATE statement for the staged changes. Only
// non-nil fields are assigned; the audit columns and revision always are.
func updateQuery(id string, changes *Changes) (string, []any) {
	table := schema.CoreTopic
	set := newAssignments()

	set.value(table.Title, changes.Title)
	set.value(table.Slug, changes.Slug)
	set.value(table.Subtitle, changes.Subtitle)
	set.value(table.Summary, changes.Summary)
	set.value(table.Overview, changes.Overview)
	set.value(table.Timeline, changes.Timeline)
	set.value(table.Era, changes.Era)
	set.value(table.Location, changes.Location)
	set.value(table.MetaTitle, changes.MetaTitle)
	set.value(table.MetaDescription, changes.MetaDescription)
	set.value(table.HeroMediaURL, changes.HeroMediaURL)

	if changes.Category != nil {
		set.expr(table.Category, "%s", *changes.Category)
	}
	if changes.KeyPoints != nil {
		set.expr(table.KeyPoints, "%s", *changes.KeyPoints)
	}
	if changes.Chapters != nil {
		set.expr(table.Chapters, "%s::jsonb", *changes.Chapters)
	}
	if changes.Sources != nil {
		set.expr(table.Sources, "%s::jsonb", *changes.Sources)
	}
	if changes.ExtraInfo != nil {
		set.expr(table.ExtraInfo, table.ExtraInfo+" || %s::jsonb", changes.ExtraInfo)
	}
	if changes.Status != nil {
		set.expr(table.Status, "%s", string(*changes.Status))
	}
	if changes.PublishedAt != nil {
		set.expr(table.PublishedAt, "COALESCE("+table.PublishedAt+", %s)", *changes.PublishedAt)
	}

	set.expr(table.UpdatedBy, "%s", changes.UpdatedBy)
	set.expr(table.UpdatedAt, "%s", changes.UpdatedAt)
	set.raw(table.RevisionNumber + " = " + table.RevisionNumber + " + 1")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = %s RETURNING %s`,
		table.Table, set.clause(), table.ID, set.arg(id), topicColumns)

	return query, set.args
}

/*
List returns one page of topics plus the total match count.

The total comes from COUNT(*) OVER(), so a page past the end carries no rows
to read it from; that case falls back to a plain count.
*/
func (repository *postgresRepository) List(ctx context.Context, filter Filter) ([]*Topic, int, error) {
	where, args := buildWhere(filter)
	table := schema.CoreTopic

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		%s
		ORDER BY %s DESC, %s DESC
		LIMIT $%d OFFSET $%d`,
		topicColumns, table.Table, where, table.CreatedAt, table.Seq, len(args)+1, len(args)+2)

	rows, err := repository.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, wrap(err)
	}
	defer rows.Close()

	topics := make([]*Topic, 0, filter.Limit)
	total := 0
	for rows.Next() {
		topic, err := scanTopic(rows, &total)
		if err != nil {
			return nil, 0, wrap(err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap(err)
	}

	if len(topics) == 0 && filter.Offset() > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
		if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, wrap(err)
		}
	}

	return topics, total, nil
}

// Count returns the number of topics with the status, or all topics.
func (repository *postgresRepository) Count(ctx context.Context, status Status) (int, error) {
	where, args := buildWhere(Filter{Status: status})

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.CoreTopic.Table, where)
	if err := repository.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrap(err)
	}
	return count, nil
}

// Delete removes the row; a missing row is NotFound.
func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreTopic.Table, schema.CoreTopic.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

// # Query Building

// buildWhere renders the filter as a WHERE clause with positional args.
func buildWhere(filter Filter) (string, []any) {
	table := schema.CoreTopic

	var (
		conditions []string
		args       []any
	)

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("%s = %s", table.Status, arg(string(filter.Status))))
	}
	if len(filter.Categories) > 0 {
		conditions = append(conditions, fmt.Sprintf("%s && %s::text[]", table.Category, arg(filter.Categories)))
	}
	for _, exact := range [][2]string{
		{table.Timeline, filter.Timeline},
		{table.Era, filter.Era},
		{table.Location, filter.Location},
	} {
		if exact[1] != "" {
			conditions = append(conditions, fmt.Sprintf("%s = %s", exact[0], arg(exact[1])))
		}
	}

	if filter.Query != "" {
		pattern := arg("%" + escapeLike(filter.Query) + "%")
		conditions = append(conditions, fmt.Sprintf(`(
			%[1]s ILIKE %[5]s
			OR %[2]s ILIKE %[5]s
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(%[3]s) AS ch, jsonb_array_elements(ch->'blocks') AS b
				WHERE b->>'text' ILIKE %[5]s
			)
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(%[4]s) AS s
				WHERE s->>'title' ILIKE %[5]s
			)
		)`, table.Title, table.Summary, table.Chapters, table.Sources, pattern))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike neutralizes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// assignments accumulates SET clauses with their positional args.
type assignments struct {
	clauses []string
	args    []any
}

func newAssignments() *assignments {
	return &assignments{}
}

func (a *assignments) arg(value any) string {
	a.args = append(a.args, value)
	return fmt.Sprintf("$%d", len(a.args))
}

func (a *assignments) value(column string, value *string) {
	if value != nil {
		a.expr(column, "%s", *value)
	}
}

func (a *assignments) expr(column, format string, value any) {
	a.clauses = append(a.clauses, column+" = "+fmt.Sprintf(format, a.arg(value)))
}

func (a *assignments) raw(clause string) {
	a.clauses = append(a.clauses, clause)
}

func (a *assignments) clause() string {
	return strings.Join(a.clauses, ", ")
}
