package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/book/service"
	"locallibrary-backend/internal/shared/response"
)

const listingPath = "/catalog/books"

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// formFromRequest reads the submitted fields. The genre field is repeated
// once per selected checkbox, so it comes in as an array.
func formFromRequest(c *gin.Context) book.BookForm {
	return book.BookForm{
		Title:   c.PostForm("title"),
		Author:  c.PostForm("author"),
		Summary: c.PostForm("summary"),
		ISBN:    c.PostForm("isbn"),
		Genre:   c.PostFormArray("genre"),
	}
}

func respondError(c *gin.Context, err error) {
	switch book.ToHTTPStatus(err) {
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
	switch book.ToHTTPStatus(err) {
	case http.StatusNotFound:
		c.Redirect(http.StatusSeeOther, listingPath)
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book_list": books})
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// CreateForm - GET /catalog/book/create
func (h *BookHandler) CreateForm(c *gin.Context) {
	options, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, options)
}

// Create - POST /catalog/book/create
func (h *BookHandler) Create(c *gin.Context) {
	result, err := h.service.Create(c.Request.Context(), formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Book form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Book.URL())
}

// UpdateForm - GET /catalog/book/:id/update
func (h *BookHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Update - POST /catalog/book/:id/update
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Book form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Book.URL())
}

// DeleteForm - GET /catalog/book/:id/delete
func (h *BookHandler) DeleteForm(c *gin.Context) {
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

// Delete - POST /catalog/book/:id/delete
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		// The store may still refuse the delete: a copy can be added
		// between the re-check and the DELETE.
		respondDeleteError(c, err)
		return
	}

	if result.Blocked != nil {
		response.ErrorWithDetails(c, http.StatusConflict,
			"BOOK_HAS_COPIES", book.ErrBookHasCopies.Error(), result.Blocked)
		return
	}

	c.Redirect(http.StatusSeeOther, listingPath)
}
