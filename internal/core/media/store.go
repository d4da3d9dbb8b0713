// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package media

import "context"

// Repository is the persistence contract for the media library.
type Repository interface {
	Create(ctx context.Context, media *Media) error
	FindByID(ctx context.Context, id string) (*Media, error)
	// List returns one page, newest upload first, and the total match count.
	List(ctx context.Context, filter Filter) ([]*Media, int, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
