package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/logging"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
	"foodgram/internal/services"
	"foodgram/internal/validation"

	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, message string, detail interface{}) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

// respondBindError answers a request body that failed to decode or validate.
func respondBindError(c *gin.Context, err error) {
	if fields, ok := validation.FieldErrors(err); ok {
		respondError(c, http.StatusBadRequest, "Invalid request data", fields)
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
}

// respondServiceError maps domain errors onto HTTP statuses. failMessage is
// used for anything unexpected.
func respondServiceError(c *gin.Context, err error, failMessage string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, "Invalid request data", verr.Fields)
	case errors.Is(err, pagination.ErrInvalidPage):
		respondError(c, http.StatusNotFound, "Invalid page.", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found.", err.Error())
	case errors.Is(err, repository.ErrNotInRelation):
		respondError(c, http.StatusNotFound, "Not found.", err.Error())
	case errors.Is(err, repository.ErrAlreadyExists),
		errors.Is(err, repository.ErrSelfSubscription),
		errors.Is(err, repository.ErrInUse),
		errors.Is(err, repository.ErrCheckViolated):
		respondError(c, http.StatusBadRequest, failMessage, gin.H{"errors": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "Unable to log in with provided credentials.", gin.H{"errors": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "Permission denied", err.Error())
	default:
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg(failMessage)
		respondError(c, http.StatusInternalServerError, failMessage, "Internal server error")
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusNotFound, "Not found.", "ID must be a valid positive integer")
		return 0, false
	}
	return uint(id), true
}

// Pager turns query parameters into page parameters and wraps result pages.
type Pager struct {
	Paginator pagination.Paginator
	// BaseURL is the public origin used in next/previous links.
	BaseURL string
}

func (p Pager) params(c *gin.Context) (pagination.Params, bool) {
	params, err := p.Paginator.Parse(c.Request.URL.Query())
	if err != nil {
		respondServiceError(c, err, "Invalid page.")
		return pagination.Params{}, false
	}
	return params, true
}

func (p Pager) page(c *gin.Context, params pagination.Params, count int64, results interface{}) (pagination.Response, error) {
	if err := params.Check(count); err != nil {
		return pagination.Response{}, err
	}
	return pagination.NewResponse(pagination.RequestURL(c.Request, p.BaseURL), params, count, results), nil
}
