package handlers

import (
	"errors"
	"net/http"

	request "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/dto/request"
	response "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/dto/response"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLaborPayload = pkg.NewDomainErrorSimple("INVALID_HH_INPUT", "Invalid labor history payload", http.StatusBadRequest)

// LaborHistoryHandler handles the appropriated-hours ingestion consumed by
// the dashboards.

type LaborHistoryHandler struct {
	usecase usecase.ILaborHistoryUseCase
}

func NewLaborHistoryHandler(uc usecase.ILaborHistoryUseCase) *LaborHistoryHandler {
	return &LaborHistoryHandler{usecase: uc}
}

func (h *LaborHistoryHandler) Add(c *gin.Context) {
	var payload request.LaborHistoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaborPayload.HTTPStatus, errInvalidLaborPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLaborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLaborAggregate(created))
}

func (h *LaborHistoryHandler) AddBatch(c *gin.Context) {
	var payload request.LaborHistoryBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaborPayload.HTTPStatus, errInvalidLaborPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddBatch(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapLaborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLaborAggregates(created))
}

func (h *LaborHistoryHandler) List(c *gin.Context) {
	recs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLaborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLaborAggregates(recs))
}

func (h *LaborHistoryHandler) ClearAll(c *gin.Context) {
	if err := h.usecase.ClearAll(c.Request.Context()); err != nil {
		appErr := mapLaborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLaborError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMes),
		errors.Is(err, usecase.ErrInvalidHHApropriado),
		errors.Is(err, usecase.ErrEmptyLaborBatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
