package services

import (
	"context"
	"strings"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/adapter/repository/repo_interfaces"
	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

// TokenIssuer signs the user credential returned on login.
type TokenIssuer interface {
	Issue(accountID int64) (string, error)
}

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
	codec       CredentialCodec
	tokens      TokenIssuer
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, codec CredentialCodec, tokens TokenIssuer) *AccountService {
	if codec == nil {
		codec = PlaintextCodec{}
	}
	return &AccountService{
		accountRepo: accountRepo,
		codec:       codec,
		tokens:      tokens,
	}
}

func (s *AccountService) Create(ctx context.Context, req models.CreateUserRequest) (domain.Account, error) {
	logger.Info("account service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return domain.Account{}, err
	}

	secret, err := s.codec.Store(req.Senha)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		Name:   strings.TrimSpace(req.Nome),
		Email:  strings.TrimSpace(req.Email),
		Phone:  strings.TrimSpace(req.Telefone),
		Secret: secret,
		Status: domain.AccountStatusActive,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create failed", err, logger.Fields{
			"email": account.Email,
		})
		return domain.Account{}, err
	}

	logger.Info("account service create success", logger.Fields{
		"accountId": created.ID,
	})

	return created, nil
}

// Login looks the account up by email and returns its id and stored secret
// for the trusted internal caller to compare, plus a signed credential
// naming the account. Suspended accounts cannot log in.
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	logger.Info("account service login request", logger.Fields{
		"email": req.Email,
	})

	if err := req.Validate(); err != nil {
		return models.LoginResponse{}, err
	}

	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return models.LoginResponse{}, err
	}

	if account.Status != domain.AccountStatusActive {
		return models.LoginResponse{}, domain.ErrAccountInactive
	}

	response := models.LoginResponse{
		ID:    account.ID,
		Senha: account.Secret,
	}

	if s.tokens != nil {
		signed, err := s.tokens.Issue(account.ID)
		if err != nil {
			logger.Error("account service issue token failed", err, logger.Fields{
				"accountId": account.ID,
			})
		} else {
			response.AccessToken = signed
		}
	}

	return response, nil
}

func (s *AccountService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	logger.Info("account service update request", logger.Fields{
		"accountId": id,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return err
	}

	patch := domain.AccountPatch{
		Name:  req.Nome,
		Email: req.Email,
		Phone: req.Telefone,
	}

	if req.Senha != nil {
		secret, err := s.codec.Store(*req.Senha)
		if err != nil {
			return err
		}
		patch.Secret = &secret
	}

	if patch.Empty() {
		return domain.ErrNoFieldsProvided
	}

	return s.accountRepo.Update(ctx, id, patch)
}

func (s *AccountService) Suspend(ctx context.Context, id int64) error {
	logger.Info("account service suspend request", logger.Fields{
		"accountId": id,
	})

	return s.accountRepo.Suspend(ctx, id)
}

func (s *AccountService) Reactivate(ctx context.Context, email string) error {
	logger.Info("account service reactivate request", logger.Fields{
		"email": email,
	})

	return s.accountRepo.ReactivateByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *AccountService) Profile(ctx context.Context, id int64) (domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}
