package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/dto/request"
	response "github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/dto/response"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOSPayload = pkg.NewDomainErrorSimple("INVALID_OS_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errInvalidOSID      = pkg.NewDomainErrorSimple("INVALID_OS_ID", "Invalid service order id", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the OS lifecycle engine.
//
// Every route is a thin translation layer: bind/validate the payload,
// resolve the target id, call the usecase and map domain errors to the
// AppError envelope.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateOS opens a new service order in the aberta phase.
func (h *ServiceOrderHandler) CreateOS(c *gin.Context) {
	var payload request.CreateOSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) GetOS(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	os, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(os))
}

func (h *ServiceOrderHandler) ListOS(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// AvancarFase moves the order one phase forward. The body is optional; when
// present it may carry the planejamento payload for the planning step.
func (h *ServiceOrderHandler) AvancarFase(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var plan *usecase.PlanningData
	if c.Request.ContentLength > 0 {
		var payload request.AvancarFaseRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
			return
		}
		if payload.Planejamento != nil {
			p, err := planningFromRequest(*payload.Planejamento)
			if err != nil {
				c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
				return
			}
			plan = &p
		}
	}

	os, err := h.usecase.Advance(c.Request.Context(), id, plan)
	h.respondUpdated(c, os, err)
}

// UpdatePlanejamento fills the plan and submits it for acceptance.
func (h *ServiceOrderHandler) UpdatePlanejamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.PlanejamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	plan, err := planningFromRequest(payload)
	if err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	os, err := h.usecase.UpdatePlanning(c.Request.Context(), id, plan)
	h.respondUpdated(c, os, err)
}

func (h *ServiceOrderHandler) AprovarPlanejamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	os, err := h.usecase.ApprovePlanning(c.Request.Context(), id)
	h.respondUpdated(c, os, err)
}

func (h *ServiceOrderHandler) UpdateHH(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.UpdateHHRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	os, err := h.usecase.UpdatePlannedHours(c.Request.Context(), id, payload.HHPlanejado)
	h.respondUpdated(c, os, err)
}

func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	status := entities.OSStatus(strings.TrimSpace(payload.Status))
	os, err := h.usecase.UpdateStatus(c.Request.Context(), id, status, payload.Observacao)
	h.respondUpdated(c, os, err)
}

// Replanejamento appends a replan record. The acting user comes from the
// X-Usuario header, falling back to the payload field.
func (h *ServiceOrderHandler) Replanejamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.ReplanejamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	novaDataInicio, err := request.ParseDate(payload.NovaDataInicio)
	if err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}
	novaDataFim, err := request.ParseDate(payload.NovaDataFim)
	if err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	usuario := strings.TrimSpace(c.GetHeader("X-Usuario"))
	if usuario == "" {
		usuario = payload.Usuario
	}

	in := usecase.ReplanInput{
		NovaDataInicio: novaDataInicio,
		NovaDataFim:    novaDataFim,
		HHAdicional:    payload.HHAdicional,
		Motivo:         payload.Motivo,
		Usuario:        usuario,
	}
	os, err := h.usecase.Replan(c.Request.Context(), id, in)
	h.respondUpdated(c, os, err)
}

func (h *ServiceOrderHandler) Concluir(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	os, err := h.usecase.Conclude(c.Request.Context(), id)
	h.respondUpdated(c, os, err)
}

// Fechamento runs the financial settlement.
func (h *ServiceOrderHandler) Fechamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.FechamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	in := usecase.SettlementInput{
		ValorEngenharia:         payload.ValorEngenharia,
		ValorSuprimentos:        payload.ValorSuprimentos,
		JustificativaEngenharia: payload.JustificativaEngenharia,
	}
	if strings.TrimSpace(payload.DataConclusao) != "" {
		closing, err := request.ParseDate(payload.DataConclusao)
		if err != nil {
			c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
			return
		}
		in.DataConclusao = &closing
	}

	h.respondUpdated(c, h.usecase.Finalize(c.Request.Context(), id, in))
}

func (h *ServiceOrderHandler) AceitarFechamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	h.respondUpdated(c, h.usecase.AcceptClosing(c.Request.Context(), id))
}

func (h *ServiceOrderHandler) RejeitarFechamento(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	h.respondUpdated(c, h.usecase.RejectClosing(c.Request.Context(), id))
}

func (h *ServiceOrderHandler) Cancelar(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}

	var payload request.CancelarRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
			return
		}
	}

	h.respondUpdated(c, h.usecase.Cancel(c.Request.Context(), id, payload.Motivo))
}

func (h *ServiceOrderHandler) ClearAll(c *gin.Context) {
	if err := h.usecase.ClearAll(c.Request.Context()); err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) resolveID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidOSID.HTTPStatus, errInvalidOSID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func (h *ServiceOrderHandler) respondUpdated(c *gin.Context, os entities.ServiceOrder, err error) {
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(os))
}

func planningFromRequest(payload request.PlanejamentoRequest) (usecase.PlanningData, error) {
	inicio, err := request.ParseDate(payload.DataInicioPrevista)
	if err != nil {
		return usecase.PlanningData{}, err
	}
	fim, err := request.ParseDate(payload.DataFimPrevista)
	if err != nil {
		return usecase.PlanningData{}, err
	}
	return usecase.PlanningData{
		DataInicioPrevista: inicio,
		DataFimPrevista:    fim,
		HHPlanejado:        payload.HHPlanejado,
		HHAdicional:        payload.HHAdicional,
		ValorOrcamento:     payload.ValorOrcamento,
	}, nil
}

func mapOSError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOSID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidMonetaryValue),
		errors.Is(err, usecase.ErrInvalidReplanHours):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOSNotFound):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed for the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
