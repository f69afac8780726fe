package api

import (
	"net/http"

	"github.com/oseayemenre/readinglist/internal/models"
)

// HandleGetIntervals godoc
//
//	@Summary		List my reading intervals for a book
//	@Tags			reading
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"book id"
//	@Success		200	{array}		models.ReadingInterval
//	@Failure		400	{object}	models.ErrorResponse
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/user/book/intervals/{id} [get]
func (a *Api) HandleGetIntervals(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	bookId, err := parseIdParam(r)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleGetIntervals")
		return
	}

	intervals, err := a.reading.ListIntervals(r.Context(), user.Id, bookId)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleGetIntervals")
		return
	}

	respondWithSuccess(w, http.StatusOK, intervals)
}

// HandleCreateInterval godoc
//
//	@Summary		Record a reading interval
//	@Description	Pages are inclusive. Intervals of the same user and book may not overlap.
//	@Tags			reading
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		models.HandleCreateIntervalRequest	true	"interval"
//	@Success		201		{object}	models.ReadingInterval
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/user/book/interval [post]
func (a *Api) HandleCreateInterval(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var params models.HandleCreateIntervalRequest

	if !a.decodeAndValidate(w, r, &params, "HandleCreateInterval") {
		return
	}

	interval, err := a.reading.CreateInterval(r.Context(), user.Id, params.BookId, params.Start, params.End)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleCreateInterval")
		return
	}

	respondWithSuccess(w, http.StatusCreated, interval)
}

// HandleUpdateInterval godoc
//
//	@Summary	Change the pages of one of my reading intervals
//	@Tags		reading
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int									true	"interval id"
//	@Param		body	body		models.HandleUpdateIntervalRequest	true	"new pages"
//	@Success	200		{object}	models.ReadingInterval
//	@Failure	400		{object}	models.ErrorResponse
//	@Failure	409		{object}	models.ErrorResponse
//	@Failure	500		{object}	models.ErrorResponse
//	@Router		/user/book/interval/{id} [put]
func (a *Api) HandleUpdateInterval(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	id, err := parseIdParam(r)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleUpdateInterval")
		return
	}

	var params models.HandleUpdateIntervalRequest

	if !a.decodeAndValidate(w, r, &params, "HandleUpdateInterval") {
		return
	}

	interval, err := a.reading.UpdateInterval(r.Context(), user.Id, id, params.Start, params.End)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleUpdateInterval")
		return
	}

	respondWithSuccess(w, http.StatusOK, interval)
}

// HandleGetTopBooks godoc
//
//	@Summary		Most read books
//	@Description	Top 5 books by pages read across all users
//	@Tags			reading
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		models.TopBook
//	@Failure		500	{object}	models.ErrorResponse
//	@Router			/user/book/top [get]
func (a *Api) HandleGetTopBooks(w http.ResponseWriter, r *http.Request) {
	top, err := a.reading.TopRecommendedBooks(r.Context())

	if err != nil {
		a.respondWithServiceError(w, err, "HandleGetTopBooks")
		return
	}

	respondWithSuccess(w, http.StatusOK, top)
}
