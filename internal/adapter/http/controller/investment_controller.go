package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/commons"
	"github.com/arthurssantosibm/api-client/internal/domain"
)

type InvestmentService interface {
	RecordPurchase(ctx context.Context, req models.CreateInvestmentRequest) (domain.InvestmentPurchase, error)
}

type InvestmentController struct {
	service InvestmentService
}

func NewInvestmentController(service InvestmentService) *InvestmentController {
	return &InvestmentController{service: service}
}

func (c *InvestmentController) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("POST /invest/create", http.HandlerFunc(c.create))
}

func (c *InvestmentController) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := req.Validate(); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	purchase, err := c.service.RecordPurchase(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, models.CreateInvestmentResponse{
		ID:      purchase.ID,
		Message: "Investimento registrado com sucesso",
	})
}
