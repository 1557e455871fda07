package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/controller"
	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/adapter/http/router"
	"github.com/arthurssantosibm/api-client/internal/domain"
)

type stubInvestmentService struct {
	purchase domain.InvestmentPurchase
	err      error
}

func (s *stubInvestmentService) RecordPurchase(context.Context, models.CreateInvestmentRequest) (domain.InvestmentPurchase, error) {
	return s.purchase, s.err
}

func TestCreateInvestmentEndpoint(t *testing.T) {
	mux := router.New(nil, nil, controller.NewInvestmentController(&stubInvestmentService{
		purchase: domain.InvestmentPurchase{ID: 3},
	}), passthrough, passthrough, nil)

	rec := doJSON(t, mux, http.MethodPost, "/invest/create",
		`{"client_id":7,"email":"diego@x.com","nome_ativo":"PETR4","quantidade":10,"preco_unitario":30,"valor_investido":300,"valor_atual":310}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.CreateInvestmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.ID != 3 || resp.Message != "Investimento registrado com sucesso" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateInvestmentEndpointRejectsInvalidRequest(t *testing.T) {
	mux := router.New(nil, nil, controller.NewInvestmentController(&stubInvestmentService{}),
		passthrough, passthrough, nil)

	rec := doJSON(t, mux, http.MethodPost, "/invest/create", `{"client_id":0,"email":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	mux := router.New(nil, nil, nil, passthrough, passthrough, nil)

	rec := doJSON(t, mux, http.MethodGet, "/health", ``)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
