package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/author/service"
	"locallibrary-backend/internal/domains/book"
)

type fakeAuthorRepo struct {
	authors   map[uuid.UUID]author.Author
	deleteErr error
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
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func (f *fakeAuthorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.authors)), nil
}

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

func (f *fakeBookRepo) Insert(ctx context.Context, b *book.Book) (*book.Book, error) { return b, nil }

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) (*book.Book, error) { return b, nil }

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBookRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func setupRouter(repo *fakeAuthorRepo, books *fakeBookRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(service.NewAuthorService(repo, books))

	router := gin.New()
	group := router.Group("/catalog")
	group.GET("/authors", h.List)
	group.GET("/author/create", h.CreateForm)
	group.POST("/author/create", h.Create)
	group.GET("/author/:id", h.Detail)
	group.POST("/author/:id/update", h.Update)
	group.POST("/author/:id/delete", h.Delete)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAuthor(t *testing.T) {
	t.Run("valid form redirects to the new author", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		router := setupRouter(repo, newFakeBookRepo())

		w := postForm(router, "/catalog/author/create", url.Values{
			"first_name":    {"Herman"},
			"family_name":   {"Melville"},
			"date_of_birth": {"1819-08-01"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		location := w.Header().Get("Location")
		assert.True(t, strings.HasPrefix(location, "/catalog/author/"))

		count, _ := repo.Count(context.Background())
		assert.EqualValues(t, 1, count)
	})

	t.Run("invalid form returns field errors and inserts nothing", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		router := setupRouter(repo, newFakeBookRepo())

		w := postForm(router, "/catalog/author/create", url.Values{
			"first_name": {""},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

		count, _ := repo.Count(context.Background())
		assert.Zero(t, count)
	})
}

func TestAuthorDetail(t *testing.T) {
	repo := newFakeAuthorRepo()
	router := setupRouter(repo, newFakeBookRepo())

	stored, err := repo.Insert(context.Background(), &author.Author{
		FirstName:  "Herman",
		FamilyName: "Melville",
	})
	require.NoError(t, err)

	t.Run("existing author", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/"+stored.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Melville")
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/"+uuid.NewString(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAuthor(t *testing.T) {
	t.Run("blocked while books exist", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		books := newFakeBookRepo()
		router := setupRouter(repo, books)

		stored, err := repo.Insert(context.Background(), &author.Author{
			FirstName:  "Herman",
			FamilyName: "Melville",
		})
		require.NoError(t, err)

		books.byAuthor[stored.ID] = []book.Book{{ID: uuid.New(), AuthorID: stored.ID}}

		w := postForm(router, "/catalog/author/"+stored.ID.String()+"/delete", url.Values{})
		assert.Equal(t, http.StatusConflict, w.Code)

		_, err = repo.FindByID(context.Background(), stored.ID)
		assert.NoError(t, err)
	})

	t.Run("unblocked delete redirects to the listing", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		router := setupRouter(repo, newFakeBookRepo())

		stored, err := repo.Insert(context.Background(), &author.Author{
			FirstName:  "Herman",
			FamilyName: "Melville",
		})
		require.NoError(t, err)

		w := postForm(router, "/catalog/author/"+stored.ID.String()+"/delete", url.Values{})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))

		_, err = repo.FindByID(context.Background(), stored.ID)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("store-refused delete returns conflict", func(t *testing.T) {
		// A dependent book can appear between the service's re-check and
		// the DELETE; the foreign-key backstop then refuses the delete.
		repo := newFakeAuthorRepo()
		router := setupRouter(repo, newFakeBookRepo())

		stored, err := repo.Insert(context.Background(), &author.Author{
			FirstName:  "Herman",
			FamilyName: "Melville",
		})
		require.NoError(t, err)

		repo.deleteErr = author.ErrAuthorHasBooks

		w := postForm(router, "/catalog/author/"+stored.ID.String()+"/delete", url.Values{})
		assert.Equal(t, http.StatusConflict, w.Code)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "CONFLICT", body.Error.Code)

		_, err = repo.FindByID(context.Background(), stored.ID)
		assert.NoError(t, err)
	})

	t.Run("missing candidate redirects to the listing", func(t *testing.T) {
		router := setupRouter(newFakeAuthorRepo(), newFakeBookRepo())

		w := postForm(router, "/catalog/author/"+uuid.NewString()+"/delete", url.Values{})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
	})
}

func TestUpdateAuthor(t *testing.T) {
	repo := newFakeAuthorRepo()
	router := setupRouter(repo, newFakeBookRepo())

	stored, err := repo.Insert(context.Background(), &author.Author{
		FirstName:  "Herman",
		FamilyName: "Melville",
	})
	require.NoError(t, err)

	w := postForm(router, "/catalog/author/"+stored.ID.String()+"/update", url.Values{
		"first_name":  {"H"},
		"family_name": {"Melville"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/author/"+stored.ID.String(), w.Header().Get("Location"))

	updated, err := repo.FindByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "H", updated.FirstName)
}
