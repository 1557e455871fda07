package services

import (
	"context"
	"strings"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/adapter/repository/repo_interfaces"
	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

type InvestmentService struct {
	investmentRepo repo_interfaces.InvestmentRepository
}

func NewInvestmentService(investmentRepo repo_interfaces.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investmentRepo: investmentRepo}
}

func (s *InvestmentService) RecordPurchase(ctx context.Context, req models.CreateInvestmentRequest) (domain.InvestmentPurchase, error) {
	logger.Info("investment service record purchase request", logger.Fields{
		"clientId":  req.ClientID,
		"nomeAtivo": req.NomeAtivo,
	})

	if err := req.Validate(); err != nil {
		return domain.InvestmentPurchase{}, err
	}

	purchase := domain.InvestmentPurchase{
		ClientID:       req.ClientID,
		Email:          strings.TrimSpace(req.Email),
		AssetName:      strings.TrimSpace(req.NomeAtivo),
		AssetType:      strings.TrimSpace(req.Tipo),
		Quantity:       req.Quantidade,
		UnitPrice:      req.PrecoUnitario,
		InvestedAmount: req.ValorInvestido,
		CurrentValue:   req.ValorAtual,
		Yield:          req.Rendimento,
	}

	created, err := s.investmentRepo.RecordPurchase(ctx, purchase)
	if err != nil {
		logger.Error("investment service record purchase failed", err, logger.Fields{
			"clientId": req.ClientID,
		})
		return domain.InvestmentPurchase{}, err
	}

	logger.Info("investment service record purchase success", logger.Fields{
		"purchaseId": created.ID,
		"clientId":   created.ClientID,
	})

	return created, nil
}
