package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mtkshopping/marketplace/internal/config"
	"github.com/mtkshopping/marketplace/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewPurchaseUseCase,
	),
	fx.Provide(newReferralUseCase),
)

type referralParams struct {
	fx.In

	Users  repository.UserRepository
	Config *config.Config
	Logger *slog.Logger
}

func newReferralUseCase(p referralParams) *ReferralUseCase {
	return NewReferralUseCase(p.Users, p.Config.CommissionRate, p.Logger)
}
