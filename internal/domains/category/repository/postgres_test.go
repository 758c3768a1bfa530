package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/category"
)

func TestMapErrorDuplicateSlug(t *testing.T) {
	r := &postgresCategoryRepository{}

	err := r.mapError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_categories_slug"})

	assert.ErrorIs(t, err, category.ErrDuplicateSlug)
}

func TestMapErrorMissingParent(t *testing.T) {
	r := &postgresCategoryRepository{}

	err := r.mapError(&pgconn.PgError{Code: "23503", ConstraintName: "categories_parent_id_fkey"})

	assert.ErrorIs(t, err, category.ErrParentNotFound)
}

func TestMapErrorRestrictedDelete(t *testing.T) {
	r := &postgresCategoryRepository{}

	err := r.mapError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_category_id_fkey"})

	assert.ErrorIs(t, err, category.ErrCategoryInUse)
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	r := &postgresCategoryRepository{}
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "some_other_index"}

	err := r.mapError(pgErr)

	assert.NotErrorIs(t, err, category.ErrDuplicateSlug)
	assert.ErrorIs(t, err, pgErr)
}
