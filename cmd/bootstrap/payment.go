package bootstrap

import (
	"venuebook/internal/infra/payment"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.RazorpayGateway {
	return payment.NewRazorpayGateway(cfg.Razorpay)
}
