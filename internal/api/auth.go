package api

import (
	"net/http"

	"github.com/oseayemenre/readinglist/internal/models"
)

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates a USER account and returns a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.HandleRegisterRequest	true	"account"
//	@Success		201		{object}	models.HandleAuthResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Failure		429		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/auth/register [post]
func (a *Api) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var params models.HandleRegisterRequest

	if !a.decodeAndValidate(w, r, &params, "HandleRegister") {
		return
	}

	res, err := a.auth.Register(r.Context(), params.Username, params.Name, params.Password)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleRegister")
		return
	}

	respondWithSuccess(w, http.StatusCreated, res)
}

// HandleLogin godoc
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.HandleLoginRequest	true	"credentials"
//	@Success	200		{object}	models.HandleAuthResponse
//	@Failure	400		{object}	models.ErrorResponse
//	@Failure	401		{object}	models.ErrorResponse
//	@Failure	404		{object}	models.ErrorResponse
//	@Failure	429		{object}	models.ErrorResponse
//	@Failure	500		{object}	models.ErrorResponse
//	@Router		/auth/login [post]
func (a *Api) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var params models.HandleLoginRequest

	if !a.decodeAndValidate(w, r, &params, "HandleLogin") {
		return
	}

	res, err := a.auth.Login(r.Context(), params.Username, params.Password)

	if err != nil {
		a.respondWithServiceError(w, err, "HandleLogin")
		return
	}

	respondWithSuccess(w, http.StatusOK, res)
}
