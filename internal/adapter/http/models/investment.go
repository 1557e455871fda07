package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateInvestmentRequest struct {
	ClientID       int64           `json:"client_id"`
	Email          string          `json:"email"`
	NomeAtivo      string          `json:"nome_ativo"`
	Tipo           string          `json:"tipo"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
	ValorInvestido decimal.Decimal `json:"valor_investido"`
	ValorAtual     decimal.Decimal `json:"valor_atual"`
	Rendimento     decimal.Decimal `json:"rendimento"`
}

func (r CreateInvestmentRequest) Validate() error {
	var errs []string

	if r.ClientID <= 0 {
		errs = append(errs, "client_id must be greater than zero")
	}
	if !isEmail(r.Email) {
		errs = append(errs, "email must be a valid address")
	}
	if strings.TrimSpace(r.NomeAtivo) == "" {
		errs = append(errs, "nome_ativo is required")
	}
	if r.Quantidade.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "quantidade must be greater than zero")
	}
	if r.ValorAtual.LessThan(decimal.Zero) {
		errs = append(errs, "valor_atual cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CreateInvestmentResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
