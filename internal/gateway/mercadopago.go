// Package gateway adapts the Mercado Pago SDK to the ledger's
// Gateway interface.
package gateway

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPago) Charge(
	ctx context.Context,
	amount float64,
	description string,
	payerEmail string,
) (string, error) {

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mercadopago charge: %w", err)
	}

	return fmt.Sprintf("%d", resp.ID), nil
}
