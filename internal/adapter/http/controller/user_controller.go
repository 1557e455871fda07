package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/middleware"
	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/commons"
	"github.com/arthurssantosibm/api-client/internal/domain"
)

type AccountService interface {
	Create(ctx context.Context, req models.CreateUserRequest) (domain.Account, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) error
	Suspend(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, email string) error
	Profile(ctx context.Context, id int64) (domain.Account, error)
}

type UserController struct {
	service AccountService
}

func NewUserController(service AccountService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(mux *http.ServeMux, internalKey, userAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /usuarios", http.HandlerFunc(c.create))
	mux.Handle("POST /loginUsuarios", internalKey(http.HandlerFunc(c.login)))
	mux.Handle("PUT /updateUsuarios/{id}", http.HandlerFunc(c.update))
	mux.Handle("PUT /updateUsuarios/suspender/{id}", internalKey(http.HandlerFunc(c.suspend)))
	mux.Handle("PUT /updateUsuarios/reativar_por_email/", internalKey(http.HandlerFunc(c.reactivate)))
	mux.Handle("GET /usuarios/me", userAuth(http.HandlerFunc(c.profile)))
}

func (c *UserController) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := req.Validate(); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := c.service.Create(r.Context(), req); err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.CreateUserResponse{
		Status:  "success",
		Message: "Usuário inserido com sucesso",
	})
}

func (c *UserController) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	response, err := c.service.Login(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, response)
}

func (c *UserController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := c.service.Update(r.Context(), id, req); err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Dados atualizados com sucesso"})
}

func (c *UserController) suspend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Suspend(r.Context(), id); err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Conta suspensa com sucesso"})
}

func (c *UserController) reactivate(w http.ResponseWriter, r *http.Request) {
	var req models.ReactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := req.Validate(); err != nil {
		commons.WriteDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.service.Reactivate(r.Context(), req.Email); err != nil {
		if err == domain.ErrRecordNotFound {
			commons.WriteDetail(w, http.StatusNotFound, "E-mail não encontrado")
			return
		}
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Conta reativada com sucesso"})
}

func (c *UserController) profile(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.AccountID(r.Context())
	if !ok {
		commons.WriteDetail(w, http.StatusUnauthorized, "Token inválido")
		return
	}

	account, err := c.service.Profile(r.Context(), id)
	if err != nil {
		commons.WriteError(w, err)
		return
	}

	commons.WriteJSON(w, http.StatusOK, models.ProfileResponse{
		ID:          account.ID,
		Nome:        account.Name,
		Email:       account.Email,
		Telefone:    account.Phone,
		SaldoCC:     account.Balance.StringFixed(2),
		Correntista: int(account.Status),
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		commons.WriteDetail(w, http.StatusBadRequest, "Identificador inválido")
		return 0, false
	}
	return id, true
}
