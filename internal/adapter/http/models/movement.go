package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	EmailOrigin      string          `json:"email_origin"`
	UserOriginID     int64           `json:"user_origin_id"`
	EmailDestination string          `json:"email_destination"`
	Valor            decimal.Decimal `json:"valor"`
	Mensagem         string          `json:"mensagem,omitempty"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if !isEmail(r.EmailOrigin) {
		errs = append(errs, "email_origin must be a valid address")
	}
	if r.UserOriginID <= 0 {
		errs = append(errs, "user_origin_id must be greater than zero")
	}
	if !isEmail(r.EmailDestination) {
		errs = append(errs, "email_destination must be a valid address")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	Status string `json:"status"`
}

type DepositRequest struct {
	Email string          `json:"email"`
	Valor decimal.Decimal `json:"valor"`
}

type WithdrawRequest struct {
	Email string          `json:"email"`
	Valor decimal.Decimal `json:"valor"`
}

type BalanceResponse struct {
	SaldoAtual decimal.Decimal `json:"saldo_atual"`
}
