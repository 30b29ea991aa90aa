package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Allinmicrosite/hustle-indexer/pkg/errors"
)

func TestCategoryRepository_Create(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)
	c := sampleCategory()

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.Description, c.Slug, c.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_DuplicateSlug(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)
	c := sampleCategory()

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.Description, c.Slug, c.CreatedAt).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "categories_slug_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &c)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_List(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)
	c := sampleCategory()

	rows := pgxmock.NewRows(categoryColumns).AddRow(categoryRow(c)...)
	mock.ExpectQuery("SELECT .+ FROM categories ORDER BY name ASC").WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, c, categories[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_List_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories ORDER BY name ASC").
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetBySlug(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)
	c := sampleCategory()

	rows := pgxmock.NewRows(categoryColumns).AddRow(categoryRow(c)...)
	mock.ExpectQuery("SELECT .+ FROM categories WHERE slug").
		WithArgs(c.Slug).
		WillReturnRows(rows)

	got, err := repo.GetBySlug(context.Background(), c.Slug)
	require.NoError(t, err)
	assert.Equal(t, &c, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetBySlug_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()

	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories WHERE slug").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetBySlug(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
