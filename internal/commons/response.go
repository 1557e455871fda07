package commons

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arthurssantosibm/api-client/internal/domain"
)

// Detail mirrors the error body of the original service: every failure is
// rendered as {"detail": "<mensagem>"}.
type Detail struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, Detail{Detail: detail})
}

// WriteError maps a domain error to the HTTP status and detail message the
// original API exposed. Store failures pass the underlying message through;
// anything unrecognized is reported as a generic internal error.
func WriteError(w http.ResponseWriter, err error) {
	var dbErr *domain.DatabaseError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		WriteDetail(w, http.StatusNotFound, "Usuário não encontrado")
	case errors.Is(err, domain.ErrAccountInactive):
		WriteDetail(w, http.StatusForbidden, "CONTA_INATIVA")
	case errors.Is(err, domain.ErrEmailTaken):
		WriteDetail(w, http.StatusConflict, "E-mail já cadastrado")
	case errors.Is(err, domain.ErrNoFieldsProvided):
		WriteDetail(w, http.StatusBadRequest, "Nenhum campo para atualizar")
	case errors.Is(err, domain.ErrInvalidAmount):
		WriteDetail(w, http.StatusBadRequest, "Valor inválido")
	case errors.Is(err, domain.ErrInsufficientFunds):
		WriteDetail(w, http.StatusBadRequest, "Saldo insuficiente")
	case errors.Is(err, domain.ErrInvalidCredential):
		WriteDetail(w, http.StatusUnauthorized, "Token inválido")
	case errors.As(err, &dbErr):
		WriteDetail(w, http.StatusInternalServerError, fmt.Sprintf("Erro no banco de dados: %v", dbErr.Err))
	default:
		WriteDetail(w, http.StatusInternalServerError, fmt.Sprintf("Erro interno: %v", err))
	}
}
