package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/author/service"
	"locallibrary-backend/internal/shared/response"
)

const listingPath = "/catalog/authors"

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

func formFromRequest(c *gin.Context) author.AuthorForm {
	return author.AuthorForm{
		FirstName:   c.PostForm("first_name"),
		FamilyName:  c.PostForm("family_name"),
		DateOfBirth: c.PostForm("date_of_birth"),
		DateOfDeath: c.PostForm("date_of_death"),
	}
}

func respondError(c *gin.Context, err error) {
	switch author.ToHTTPStatus(err) {
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
	switch author.ToHTTPStatus(err) {
	case http.StatusNotFound:
		c.Redirect(http.StatusSeeOther, listingPath)
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author_list": authors})
}

// Detail - GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// CreateForm - GET /catalog/author/create
// The author form needs no reference lists.
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{})
}

// Create - POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	result, err := h.service.Create(c.Request.Context(), formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Author form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Author.URL())
}

// UpdateForm - GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	a, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author": a})
}

// Update - POST /catalog/author/:id/update
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Author form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Author.URL())
}

// DeleteForm - GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
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

// Delete - POST /catalog/author/:id/delete
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		// The store may still refuse the delete: a dependent book can
		// appear between the re-check and the DELETE.
		respondDeleteError(c, err)
		return
	}

	if result.Blocked != nil {
		response.ErrorWithDetails(c, http.StatusConflict,
			"AUTHOR_HAS_BOOKS", author.ErrAuthorHasBooks.Error(), result.Blocked)
		return
	}

	c.Redirect(http.StatusSeeOther, listingPath)
}
