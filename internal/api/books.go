package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
)

func parseIdParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err != nil || id < 1 {
		return 0, apperrors.Validation("id must be a positive integer")
	}

	return id, nil
}

// parsePagination reads ps and pn. Missing or malformed values come back as 0
// and are replaced with defaults by the book service.
func parsePagination(r *http.Request) (int, int) {
	ps, _ := strconv.Atoi(r.URL.Query().Get("ps"))
	pn, _ := strconv.Atoi(r.URL.Query().Get("pn"))
	return ps, pn
}

// HandleListBooks godoc
//
//	@Summary		List books
//	@Description	Returns one page of the catalog ordered by id
//	@Tags			books
//	@Produce		json
//	@Security		BearerAuth
//	@Param			ps	query		int	false	"page size (default 10)"
//	@Param			pn	query		int	false	"page number, 1-indexed (default 1)"
//	@Success		200	{object}	models.BooksPage
//	@Failure		401	{object}	models.ErrorResponse
//	@Failure		403	{object}	models.ErrorResponse
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/admin/book [get]
//	@Router			/user/book [get]
func (a *Api) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	ps, pn := parsePagination(r)

	page, err := a.books.ListBooks(r.Context(), ps, pn)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleListBooks")
		return
	}

	respondWithSuccess(w, http.StatusOK, page)
}

// HandleCreateBook godoc
//
//	@Summary		Create a book
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		models.HandleCreateBookRequest	true	"book"
//	@Success		201		{object}	models.Book
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/admin/book [post]
func (a *Api) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	var params models.HandleCreateBookRequest

	if !a.decodeAndValidate(w, r, &params, "HandleCreateBook") {
		return
	}

	book, err := a.books.CreateBook(r.Context(), params.Name, params.Pages)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleCreateBook")
		return
	}

	respondWithSuccess(w, http.StatusCreated, book)
}

// HandleUpdateBook godoc
//
//	@Summary		Update a book
//	@Description	Renames a book and/or changes its page count. Omitted fields are kept.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"book id"
//	@Param			body	body		models.HandleUpdateBookRequest	true	"fields to change"
//	@Success		200		{object}	models.Book
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/admin/book/{id} [put]
func (a *Api) HandleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleUpdateBook")
		return
	}

	var params models.HandleUpdateBookRequest

	if !a.decodeAndValidate(w, r, &params, "HandleUpdateBook") {
		return
	}

	book, err := a.books.UpdateBook(r.Context(), id, models.BookUpdate{
		Name:  params.Name,
		Pages: params.Pages,
	})

	if err != nil {
		a.respondWithServiceError(w, err, "HandleUpdateBook")
		return
	}

	respondWithSuccess(w, http.StatusOK, book)
}

// HandleDeleteBook godoc
//
//	@Summary	Delete a book
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"book id"
//	@Success	200
//	@Failure	400	{object}	models.ErrorResponse
//	@Failure	404	{object}	models.ErrorResponse
//	@Failure	409	{object}	models.ErrorResponse
//	@Failure	500	{object}	models.ErrorResponse
//	@Router		/admin/book/{id} [delete]
func (a *Api) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleDeleteBook")
		return
	}

	if err := a.books.DeleteBook(r.Context(), id); err != nil {
		a.respondWithServiceError(w, err, "HandleDeleteBook")
		return
	}

	w.WriteHeader(http.StatusOK)
}
