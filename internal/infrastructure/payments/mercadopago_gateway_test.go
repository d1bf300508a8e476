package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"solar_portal/internal/infrastructure/config"
	"solar_portal/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.PaymentsConfig{}, logger.NewNoOpLogger())
	assert.True(t, errors.Is(err, ErrMissingMercadoPagoAccessToken))
}

func TestMercadoPagoGateway_MockApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.PaymentsConfig{Mock: true}, logger.NewNoOpLogger())
	require.NoError(t, err)
	assert.True(t, g.MockMode())

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":6000,"external_reference":"fin-p-1"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "fin-p-1", resp["external_reference"])
	assert.Equal(t, "accredited", resp["status_detail"])
}

func TestMercadoPagoGateway_NilIsNotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
