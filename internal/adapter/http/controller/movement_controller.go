package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/commons"
)

type MovementService interface {
	Transfer(ctx context.Context, req models.TransferRequest) error
	Deposit(ctx context.Context, req models.DepositRequest) (decimal.Decimal, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (decimal.Decimal, error)
}

type MovementController struct {
	service MovementService
}

func NewMovementController(service MovementService) *MovementController {
	return &MovementController{service: service}
}

func (c *MovementController) RegisterRoutes(mux *http.ServeMux, internalKey func(http.Handler) http.Handler) {
	mux.Handle("POST /transacoesUsuarios", internalKey(http.HandlerFunc(c.transfer)))
	mux.Handle("POST /deposito", internalKey(http.HandlerFunc(c.deposit)))
	mux.Handle("POST /saque", internalKey(http.HandlerFunc(c.withdraw)))
}

func (c *MovementController) transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := req.Validate(); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.service.Transfer(r.Context(), req); err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.TransferResponse{Status: "ok"})
}

func (c *MovementController) deposit(w http.ResponseWriter, r *http.Request) {
	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	balance, err := c.service.Deposit(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.BalanceResponse{SaldoAtual: balance})
}

func (c *MovementController) withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	balance, err := c.service.Withdraw(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.BalanceResponse{SaldoAtual: balance})
}
