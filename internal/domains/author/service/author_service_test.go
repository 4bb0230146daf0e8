package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
)

// fakeAuthorRepo is an in-memory author.Repository.
type fakeAuthorRepo struct {
	authors map[uuid.UUID]author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (f *fakeAuthorRepo) FindAll(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.ID = uuid.New()
	f.authors[stored.ID] = stored
	return &stored, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := f.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	return a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func (f *fakeAuthorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.authors)), nil
}

// fakeBookRepo serves only the dependent-set reads the author workflows use.
type fakeBookRepo struct {
	byAuthor map[uuid.UUID][]book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{byAuthor: make(map[uuid.UUID][]book.Book)}
}

func (f *fakeBookRepo) FindAll(ctx context.Context) ([]book.Book, error) { return nil, nil }

func (f *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return f.byAuthor[authorID], nil
}

func (f *fakeBookRepo) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBookRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func validForm() author.AuthorForm {
	return author.AuthorForm{
		FirstName:   "Herman",
		FamilyName:  "Melville",
		DateOfBirth: "1819-08-01",
		DateOfDeath: "1891-09-28",
	}
}

func TestCreate(t *testing.T) {
	t.Run("valid form inserts and yields the stored author", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo, newFakeBookRepo())

		result, err := svc.Create(context.Background(), validForm())
		require.NoError(t, err)
		require.NotNil(t, result.Author)
		assert.Nil(t, result.Invalid)
		assert.Equal(t, "Melville, Herman", result.Author.Name())

		stored, err := repo.FindByID(context.Background(), result.Author.ID)
		require.NoError(t, err)
		assert.Equal(t, result.Author.FirstName, stored.FirstName)
	})

	t.Run("invalid form inserts nothing", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo, newFakeBookRepo())

		result, err := svc.Create(context.Background(), author.AuthorForm{})
		require.NoError(t, err)
		require.NotNil(t, result.Invalid)
		assert.Nil(t, result.Author)
		assert.NotEmpty(t, result.Invalid.Errors)

		count, _ := repo.Count(context.Background())
		assert.Zero(t, count)
	})
}

func TestDetail(t *testing.T) {
	repo := newFakeAuthorRepo()
	books := newFakeBookRepo()
	svc := NewAuthorService(repo, books)

	created, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)
	id := created.Author.ID

	books.byAuthor[id] = []book.Book{{ID: uuid.New(), Title: "Moby Dick", AuthorID: id}}

	t.Run("returns author with dependent books", func(t *testing.T) {
		page, err := svc.Detail(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, page.Author.ID)
		require.Len(t, page.Books, 1)
		assert.Equal(t, "Moby Dick", page.Books[0].Title)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Detail(context.Background(), uuid.New())
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestUpdate(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, newFakeBookRepo())

	created, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)
	id := created.Author.ID

	t.Run("valid update replaces fields and keeps the id", func(t *testing.T) {
		form := validForm()
		form.FirstName = "H"

		result, err := svc.Update(context.Background(), id, form)
		require.NoError(t, err)
		require.NotNil(t, result.Author)
		assert.Equal(t, id, result.Author.ID)
		assert.Equal(t, "H", result.Author.FirstName)
	})

	t.Run("invalid update leaves the stored author unchanged", func(t *testing.T) {
		result, err := svc.Update(context.Background(), id, author.AuthorForm{FirstName: "X"})
		require.NoError(t, err)
		require.NotNil(t, result.Invalid)
		assert.Equal(t, id, result.Invalid.Current.ID)

		stored, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "H", stored.FirstName)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Update(context.Background(), uuid.New(), validForm())
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("blocked while dependent books exist", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		books := newFakeBookRepo()
		svc := NewAuthorService(repo, books)

		created, err := svc.Create(context.Background(), validForm())
		require.NoError(t, err)
		id := created.Author.ID

		books.byAuthor[id] = []book.Book{{ID: uuid.New(), AuthorID: id}}

		result, err := svc.Delete(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, result.Blocked)
		assert.Len(t, result.Blocked.Books, 1)

		// The author must still be there.
		_, err = repo.FindByID(context.Background(), id)
		assert.NoError(t, err)
	})

	t.Run("removes the author once the dependent set is empty", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo, newFakeBookRepo())

		created, err := svc.Create(context.Background(), validForm())
		require.NoError(t, err)
		id := created.Author.ID

		result, err := svc.Delete(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, result.Blocked)

		_, err = repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}
