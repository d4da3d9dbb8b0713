// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package media

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

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed media store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

var mediaColumns = strings.Join(schema.CoreMedia.Columns(), ", ")

func wrap(err error) error {
	return dberr.Wrap(err, resourceName, nil)
}

func scanMedia(row pgx.Row, extra ...any) (*Media, error) {
	media := &Media{}
	dest := []any{
		&media.ID, &media.Type, &media.URL, &media.Provider, &media.ThumbnailURL, &media.Caption,
		&media.AltText, &media.UploadedBy, &media.UploadedAt, &media.Processing, &media.ProcessingError,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return media, nil
}

func (repository *postgresRepository) Create(ctx context.Context, media *Media) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		schema.CoreMedia.Table, mediaColumns)

	_, err := repository.pool.Exec(ctx, query,
		media.ID, media.Type, media.URL, media.Provider, media.ThumbnailURL, media.Caption,
		media.AltText, media.UploadedBy, media.UploadedAt, media.Processing, media.ProcessingError,
	)
	return wrap(err)
}

func (repository *postgresRepository) FindByID(ctx context.Context, id string) (*Media, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, mediaColumns, schema.CoreMedia.Table, schema.CoreMedia.ID)

	media, err := scanMedia(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrap(err)
	}
	return media, nil
}

/*
List returns one page plus the total, newest upload first. Like the topic
store, the total rides on COUNT(*) OVER() with a plain count for empty pages.
*/
func (repository *postgresRepository) List(ctx context.Context, filter Filter) ([]*Media, int, error) {
	table := schema.CoreMedia
	where, args := buildWhere(filter)

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		%s
		ORDER BY %s DESC, %s DESC
		LIMIT $%d OFFSET $%d`,
		mediaColumns, table.Table, where, table.UploadedAt, table.Seq, len(args)+1, len(args)+2)

	rows, err := repository.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, wrap(err)
	}
	defer rows.Close()

	items := make([]*Media, 0, filter.Limit)
	total := 0
	for rows.Next() {
		media, err := scanMedia(rows, &total)
		if err != nil {
			return nil, 0, wrap(err)
		}
		items = append(items, media)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap(err)
	}

	if len(items) == 0 && filter.Offset() > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
		if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, wrap(err)
		}
	}

	return items, total, nil
}

func (repository *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repository.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+schema.CoreMedia.Table).Scan(&count); err != nil {
		return 0, wrap(err)
	}
	return count, nil
}

func (repository *postgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreMedia.Table, schema.CoreMedia.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func buildWhere(filter Filter) (string, []any) {
	table := schema.CoreMedia

	var (
		conditions []string
		args       []any
	)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("%s = %s", table.Type, arg(string(filter.Type))))
	}
	if filter.Provider != "" {
		conditions = append(conditions, fmt.Sprintf("%s = %s", table.Provider, arg(string(filter.Provider))))
	}
	if filter.Search != "" {
		pattern := arg("%" + escapeLike(filter.Search) + "%")
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE %s OR %s ILIKE %s)", table.Caption, pattern, table.AltText, pattern))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
