package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/domains/genre/service"
	"locallibrary-backend/internal/shared/response"
)

const listingPath = "/catalog/genres"

type GenreHandler struct {
	service service.Service
}

func NewGenreHandler(svc service.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

func formFromRequest(c *gin.Context) genre.GenreForm {
	return genre.GenreForm{Name: c.PostForm("name")}
}

func respondError(c *gin.Context, err error) {
	switch genre.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// respondDeleteError is the delete-flow variant: a missing candidate sends
// the client back to the listing instead of failing.
func respondDeleteError(c *gin.Context, err error) {
	switch genre.ToHTTPStatus(err) {
	case http.StatusNotFound:
		c.Redirect(http.StatusSeeOther, listingPath)
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"genre_list": genres})
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// CreateForm - GET /catalog/genre/create
func (h *GenreHandler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{})
}

// Create - POST /catalog/genre/create
// A name matching an existing genre redirects to that genre instead of
// creating a duplicate.
func (h *GenreHandler) Create(c *gin.Context) {
	result, err := h.service.Create(c.Request.Context(), formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Genre form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Genre.URL())
}

// UpdateForm - GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre id")
		return
	}

	g, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"genre": g})
}

// Update - POST /catalog/genre/:id/update
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid genre id")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Genre form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Genre.URL())
}

// DeleteForm - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	page, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		respondDeleteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Delete - POST /catalog/genre/:id/delete
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		// The store may still refuse the delete: a book can pick up the
		// genre between the re-check and the DELETE.
		respondDeleteError(c, err)
		return
	}

	if result.Blocked != nil {
		response.ErrorWithDetails(c, http.StatusConflict,
			"GENRE_HAS_BOOKS", genre.ErrGenreHasBooks.Error(), result.Blocked)
		return
	}

	c.Redirect(http.StatusSeeOther, listingPath)
}
