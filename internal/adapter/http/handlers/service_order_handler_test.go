package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/adapter/http/handlers/mocks"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/domain/entities"
	"github.com/Abelv-Engenharia/abelv-integra-sub009/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOSTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/os", h.CreateOS)
	r.GET("/v1/os", h.ListOS)
	r.GET("/v1/os/:id", h.GetOS)
	r.POST("/v1/os/:id/avancar", h.AvancarFase)
	r.PATCH("/v1/os/:id/planejamento", h.UpdatePlanejamento)
	r.PATCH("/v1/os/:id/status", h.UpdateStatus)
	r.POST("/v1/os/:id/replanejamento", h.Replanejamento)
	r.POST("/v1/os/:id/fechamento", h.Fechamento)
	r.PATCH("/v1/os/:id/cancelar", h.Cancelar)
	r.DELETE("/v1/os", h.ClearAll)
	return r, uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceOrderHandler_CreateOS(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newOSTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/v1/os", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		r, _ := newOSTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/v1/os", `{"cliente":"Vale Norte"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newOSTestRouter(t)

		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
				if draft.CCA != "CCA-104" || draft.Cliente != "Vale Norte" {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				draft.ID = 7
				draft.Status = entities.OSStatusAberta
				return draft, nil
			})

		w := doJSON(t, r, http.MethodPost, "/v1/os", `{"cca":"CCA-104","cliente":"Vale Norte","disciplina":"mecanica","descricao":"troca de rolamento"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != float64(7) || got["status"] != string(entities.OSStatusAberta) {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestServiceOrderHandler_GetOS(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := newOSTestRouter(t)

		w := doJSON(t, r, http.MethodGet, "/v1/os/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), 42).Return(entities.ServiceOrder{}, usecase.ErrOSNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/os/42", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), 7).Return(entities.ServiceOrder{ID: 7, Status: entities.OSStatusEmExecucao}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/os/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_AvancarFase(t *testing.T) {
	t.Run("no body advances without planning", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().Advance(gomock.Any(), 3, nil).Return(entities.ServiceOrder{ID: 3, Status: entities.OSStatusEmPlanejamento}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/os/3/avancar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("planning payload forwarded", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			Advance(gomock.Any(), 3, gomock.Any()).
			DoAndReturn(func(_ any, _ int, plan *usecase.PlanningData) (entities.ServiceOrder, error) {
				if plan == nil {
					t.Fatalf("expected planning payload")
				}
				if plan.HHPlanejado != 120 {
					t.Fatalf("unexpected hh: %.2f", plan.HHPlanejado)
				}
				want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
				if !plan.DataInicioPrevista.Equal(want) {
					t.Fatalf("unexpected start date: %v", plan.DataInicioPrevista)
				}
				return entities.ServiceOrder{ID: 3, Status: entities.OSStatusAguardandoAceite}, nil
			})

		body := `{"planejamento":{"dataInicioPrevista":"2025-07-01","dataFimPrevista":"2025-07-20","hhPlanejado":120}}`
		w := doJSON(t, r, http.MethodPost, "/v1/os/3/avancar", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("transition refused maps to conflict", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().Advance(gomock.Any(), 3, nil).Return(entities.ServiceOrder{}, usecase.ErrInvalidTransition)

		w := doJSON(t, r, http.MethodPost, "/v1/os/3/avancar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_UpdatePlanejamento(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		r, _ := newOSTestRouter(t)

		body := `{"dataInicioPrevista":"01/07/2025","dataFimPrevista":"2025-07-20","hhPlanejado":120}`
		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/planejamento", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			UpdatePlanning(gomock.Any(), 3, gomock.Any()).
			Return(entities.ServiceOrder{ID: 3, Status: entities.OSStatusAguardandoAceite}, nil)

		body := `{"dataInicioPrevista":"2025-07-01","dataFimPrevista":"2025-07-20","hhPlanejado":120,"valorOrcamento":15000}`
		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/planejamento", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("invalid status maps to bad request", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			UpdateStatus(gomock.Any(), 3, entities.OSStatus("arquivada"), "").
			Return(entities.ServiceOrder{}, usecase.ErrInvalidStatus)

		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/status", `{"status":"arquivada"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status trimmed and forwarded", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			UpdateStatus(gomock.Any(), 3, entities.OSStatusEmExecucao, "ajuste manual").
			Return(entities.ServiceOrder{ID: 3, Status: entities.OSStatusEmExecucao}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/status", `{"status":" em-execucao ","observacao":"ajuste manual"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Replanejamento(t *testing.T) {
	t.Run("missing motivo", func(t *testing.T) {
		r, _ := newOSTestRouter(t)

		body := `{"novaDataInicio":"2025-08-01","novaDataFim":"2025-08-15"}`
		w := doJSON(t, r, http.MethodPost, "/v1/os/3/replanejamento", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("header user wins over payload", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			Replan(gomock.Any(), 3, gomock.Any()).
			DoAndReturn(func(_ any, _ int, in usecase.ReplanInput) (entities.ServiceOrder, error) {
				if in.Usuario != "joana.lima" {
					t.Fatalf("expected header user, got %q", in.Usuario)
				}
				if in.HHAdicional != 16 {
					t.Fatalf("unexpected hh adicional: %.2f", in.HHAdicional)
				}
				return entities.ServiceOrder{ID: 3, Status: entities.OSStatusAguardandoAceite}, nil
			})

		body := `{"novaDataInicio":"2025-08-01","novaDataFim":"2025-08-15","motivo":"chuva no canteiro","hhAdicional":16,"usuario":"fulano"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/os/3/replanejamento", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Usuario", "joana.lima")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Fechamento(t *testing.T) {
	t.Run("unparsable monetary value maps to bad request", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			Finalize(gomock.Any(), 3, gomock.Any()).
			Return(entities.ServiceOrder{}, usecase.ErrInvalidMonetaryValue)

		body := `{"valorEngenharia":"12k","valorSuprimentos":"8000"}`
		w := doJSON(t, r, http.MethodPost, "/v1/os/3/fechamento", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closing date forwarded", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().
			Finalize(gomock.Any(), 3, gomock.Any()).
			DoAndReturn(func(_ any, _ int, in usecase.SettlementInput) (entities.ServiceOrder, error) {
				if in.DataConclusao == nil {
					t.Fatalf("expected closing date")
				}
				want := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
				if !in.DataConclusao.Equal(want) {
					t.Fatalf("unexpected closing date: %v", in.DataConclusao)
				}
				return entities.ServiceOrder{ID: 3, Status: entities.OSStatusAguardandoAceiteFechamento}, nil
			})

		body := `{"valorEngenharia":"12000","valorSuprimentos":"9600","dataConclusao":"2025-07-31"}`
		w := doJSON(t, r, http.MethodPost, "/v1/os/3/fechamento", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Cancelar(t *testing.T) {
	t.Run("no body cancels without motivo", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), 3, "").Return(entities.ServiceOrder{ID: 3, Status: entities.OSStatusCancelada}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/cancelar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("motivo forwarded", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), 3, "escopo absorvido").Return(entities.ServiceOrder{ID: 3, Status: entities.OSStatusCancelada}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/cancelar", `{"motivo":"escopo absorvido"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("terminal order maps to conflict", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), 3, "").Return(entities.ServiceOrder{}, usecase.ErrInvalidTransition)

		w := doJSON(t, r, http.MethodPatch, "/v1/os/3/cancelar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ClearAll(t *testing.T) {
	t.Run("cleared", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().ClearAll(gomock.Any()).Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/os", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("store failure maps to internal error", func(t *testing.T) {
		r, uc := newOSTestRouter(t)
		uc.EXPECT().ClearAll(gomock.Any()).Return(errors.New("dynamo down"))

		w := doJSON(t, r, http.MethodDelete, "/v1/os", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
