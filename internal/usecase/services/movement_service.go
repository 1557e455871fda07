package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/adapter/repository/repo_interfaces"
	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

// MovementRecorder receives the outcome of each balance movement.
type MovementRecorder interface {
	RecordMovement(kind string, duration time.Duration, success bool)
}

type MovementService struct {
	movementRepo repo_interfaces.MovementRepository
	recorder     MovementRecorder
}

func NewMovementService(movementRepo repo_interfaces.MovementRepository, recorder MovementRecorder) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		recorder:     recorder,
	}
}

// Transfer debits the origin and credits the destination as one unit. It
// performs no sufficiency check and does not verify the destination exists;
// both behaviors are preserved from the original service and covered by
// tests so any tightening is a deliberate change.
func (s *MovementService) Transfer(ctx context.Context, req models.TransferRequest) error {
	logger.Info("movement service transfer request", logger.Fields{
		"emailOrigin":      req.EmailOrigin,
		"emailDestination": req.EmailDestination,
		"valor":            req.Valor,
	})

	if err := req.Validate(); err != nil {
		return err
	}

	started := time.Now()
	err := s.movementRepo.Transfer(
		ctx,
		req.UserOriginID,
		strings.TrimSpace(req.EmailOrigin),
		strings.TrimSpace(req.EmailDestination),
		req.Valor,
		req.Mensagem,
	)
	s.record(domain.MovementTransfer, started, err)

	if err != nil {
		logger.Error("movement service transfer failed", err, logger.Fields{
			"emailOrigin": req.EmailOrigin,
		})
		return err
	}

	return nil
}

func (s *MovementService) Deposit(ctx context.Context, req models.DepositRequest) (decimal.Decimal, error) {
	logger.Info("movement service deposit request", logger.Fields{
		"email": req.Email,
		"valor": req.Valor,
	})

	if req.Valor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	started := time.Now()
	balance, err := s.movementRepo.Deposit(ctx, strings.TrimSpace(req.Email), req.Valor)
	s.record(domain.MovementDeposit, started, err)

	if err != nil {
		logger.Error("movement service deposit failed", err, logger.Fields{
			"email": req.Email,
		})
		return decimal.Zero, err
	}

	return balance, nil
}

func (s *MovementService) Withdraw(ctx context.Context, req models.WithdrawRequest) (decimal.Decimal, error) {
	logger.Info("movement service withdrawal request", logger.Fields{
		"email": req.Email,
		"valor": req.Valor,
	})

	if req.Valor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	started := time.Now()
	balance, err := s.movementRepo.Withdraw(ctx, strings.TrimSpace(req.Email), req.Valor)
	s.record(domain.MovementWithdrawal, started, err)

	if err != nil {
		logger.Error("movement service withdrawal failed", err, logger.Fields{
			"email": req.Email,
		})
		return decimal.Zero, err
	}

	return balance, nil
}

func (s *MovementService) record(kind domain.MovementKind, started time.Time, err error) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordMovement(string(kind), time.Since(started), err == nil)
}
