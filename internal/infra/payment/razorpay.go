package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"venuebook/internal/domain/booking"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway collects booking payments through Razorpay orders. Amounts
// cross the wire in paise, which matches the quote representation exactly.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(cfg config.RazorpayConfig) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		secret: cfg.KeySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount booking.Money, currency, receipt string, notes map[string]string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount.Paise(),
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteDoc := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteDoc[k] = v
		}
		data["notes"] = noteDoc
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to create payment order")
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", errs.New("payment order response missing id")
	}
	return orderID, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(order_id + "|" + payment_id) keyed with the API secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.New("payment signature mismatch")
	}
	return nil
}
