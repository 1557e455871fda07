package models

import (
	"errors"
	"strings"
)

type CreateUserRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
}

func (r CreateUserRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Nome) == "" {
		errs = append(errs, "nome is required")
	}
	if !isEmail(r.Email) {
		errs = append(errs, "email must be a valid address")
	}
	if strings.TrimSpace(r.Telefone) == "" {
		errs = append(errs, "telefone is required")
	}
	if strings.TrimSpace(r.Senha) == "" {
		errs = append(errs, "senha is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CreateUserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha,omitempty"`
}

func (r LoginRequest) Validate() error {
	if !isEmail(r.Email) {
		return errors.New("email must be a valid address")
	}
	return nil
}

// LoginResponse hands the stored secret back to the trusted internal caller,
// which owns the comparison policy. It must never reach an end-user surface.
type LoginResponse struct {
	ID          int64  `json:"id"`
	Senha       string `json:"senha"`
	AccessToken string `json:"access_token,omitempty"`
}

type UpdateUserRequest struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Senha    *string `json:"senha,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	if r.Email != nil && !isEmail(*r.Email) {
		return errors.New("email must be a valid address")
	}
	return nil
}

type ReactivateRequest struct {
	Email string `json:"email"`
}

func (r ReactivateRequest) Validate() error {
	if !isEmail(r.Email) {
		return errors.New("email must be a valid address")
	}
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	SaldoCC     string `json:"saldo_cc"`
	Correntista int    `json:"correntista"`
}

func isEmail(value string) bool {
	trimmed := strings.TrimSpace(value)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return false
	}
	return !strings.ContainsAny(trimmed, " \t")
}
