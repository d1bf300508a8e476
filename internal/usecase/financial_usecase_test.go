package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/infrastructure/logger"
	mock_interfaces "solar_portal/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// signedRecord signs a $60,000 deal with installer-1 and returns its record.
func (f *fixture) signedRecord(t *testing.T) entities.FinancialRecord {
	t.Helper()
	ctx := context.Background()
	p := f.approved(t)
	_, q, err := f.projects.SubmitQuote(ctx, travisA, p.ID, quoteFor(60000))
	require.NoError(t, err)
	_, err = f.projects.AcceptOffer(ctx, ownerActor, p.ID, q.ID)
	require.NoError(t, err)
	rec, err := f.finance.GetByProjectID(ctx, adminActor, p.ID)
	require.NoError(t, err)
	return rec
}

func (f *fixture) financeWith(gateway *mock_interfaces.MockIPaymentGateway, opts ...FinancialOption) *FinancialUseCase {
	users := f.store.Users()
	return NewFinancialUseCase(f.store.Records(), f.store.Payments(), f.store.Settings(), users, gateway, logger.NewNoOpLogger(), opts...)
}

func TestFinancialUseCase_MarkCollected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.signedRecord(t)
	assert.Equal(t, 6000.0, rec.CommissionAmount)

	_, err := f.finance.MarkCollected(ctx, travisA, rec.ID, "wire-1")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)

	paid, err := f.finance.MarkCollected(ctx, adminActor, rec.ID, " wire-1 ")
	require.NoError(t, err)
	assert.Equal(t, entities.FinancialRecordStatusPaid, paid.Status)
	assert.Equal(t, "wire-1", paid.PaymentReference)
	require.NotNil(t, paid.PaidAt)

	_, err = f.finance.MarkCollected(ctx, adminActor, rec.ID, "wire-2")
	assert.ErrorIs(t, err, ErrAlreadyCollected)

	_, err = f.finance.MarkCollected(ctx, adminActor, "fin-missing", "")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	_, err = f.finance.MarkCollected(ctx, adminActor, " ", "")
	assert.ErrorIs(t, err, ErrInvalidRecordID)
}

func TestFinancialUseCase_ListScopesInstallers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.signedRecord(t)

	all, err := f.finance.List(ctx, adminActor, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	own, err := f.finance.List(ctx, travisA, entities.FinancialRecordStatusPending)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, rec.ID, own[0].ID)

	other, err := f.finance.List(ctx, travisB, "")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = f.finance.List(ctx, ownerActor, "")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)

	_, err = f.finance.GetByProjectID(ctx, travisB, rec.ProjectID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFinancialUseCase_CommissionRate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rate, err := f.finance.GetCommissionRate(ctx, adminActor)
	require.NoError(t, err)
	assert.Equal(t, 0.10, rate)

	for _, bad := range []float64{0, -0.1, 1, 1.5} {
		_, err := f.finance.SetCommissionRate(ctx, adminActor, bad)
		assert.ErrorIs(t, err, ErrInvalidCommissionRate, "rate %v", bad)
	}
	_, err = f.finance.SetCommissionRate(ctx, travisA, 0.2)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)

	_, err = f.finance.SetCommissionRate(ctx, adminActor, 0.12)
	require.NoError(t, err)
	rate, err = f.finance.GetCommissionRate(ctx, adminActor)
	require.NoError(t, err)
	assert.Equal(t, 0.12, rate)
}

func TestFinancialUseCase_CollectCommissionApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	audit := mock_interfaces.NewMockIAuditLog(ctrl)

	f := newFixture(t)
	rec := f.signedRecord(t)
	uc := f.financeWith(gateway, WithFinancialAuditLog(audit))

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != 6000.0 {
				t.Fatalf("expected amount from record, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != rec.ID {
				t.Fatalf("expected external_reference %s, got %v", rec.ID, req["external_reference"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "hi@bright.example" {
				t.Fatalf("expected installer email as payer, got %v", payer["email"])
			}
			return "987", "approved", json.RawMessage(`{"id":987,"status":"approved"}`), nil
		},
	)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	payment, updated, err := uc.CollectCommission(context.Background(), adminActor, rec.ID,
		json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	require.NoError(t, err)
	assert.Equal(t, "987", payment.ID)
	assert.Equal(t, entities.CommissionPaymentStatusApproved, payment.Status)
	assert.Equal(t, "approved", payment.ProviderPayload["status"])
	assert.Equal(t, entities.FinancialRecordStatusPaid, updated.Status)
	assert.Equal(t, "987", updated.PaymentReference)

	payments, err := uc.ListPayments(context.Background(), adminActor, rec.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestFinancialUseCase_CollectCommissionPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	f := newFixture(t)
	rec := f.signedRecord(t)
	uc := f.financeWith(gateway)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("55", "in_process", json.RawMessage(`{}`), nil)

	payment, current, err := uc.CollectCommission(context.Background(), adminActor, rec.ID,
		json.RawMessage(`{"payment_method_id":"pix"}`))
	assert.ErrorIs(t, err, ErrPaymentNotApproved)
	assert.Equal(t, entities.CommissionPaymentStatusPending, payment.Status)
	assert.Equal(t, entities.FinancialRecordStatusPending, current.Status)
}

func TestFinancialUseCase_CollectCommissionErrors(t *testing.T) {
	tests := []struct {
		name       string
		actor      entities.Actor
		payload    string
		gatewayErr error
		want       error
	}{
		{name: "non admin", actor: travisA, payload: `{"payment_method_id":"pix"}`, want: lifecycle.ErrForbidden},
		{name: "empty payload", actor: adminActor, payload: ``, want: ErrInvalidPaymentPayload},
		{name: "missing method", actor: adminActor, payload: `{"payer":{"email":"x@y.z"}}`, want: ErrInvalidPaymentPayload},
		{name: "customer not found", actor: adminActor, payload: `{"payment_method_id":"pix"}`,
			gatewayErr: errors.New(`{"message":"customer not found","status":404}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "unauthorized", actor: adminActor, payload: `{"payment_method_id":"pix"}`,
			gatewayErr: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

			f := newFixture(t)
			rec := f.signedRecord(t)
			uc := f.financeWith(gateway)
			if tt.gatewayErr != nil {
				gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tt.gatewayErr)
			}

			_, _, err := uc.CollectCommission(context.Background(), tt.actor, rec.ID, json.RawMessage(tt.payload))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFinancialUseCase_CollectCommissionMockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	f := newFixture(t)
	rec := f.signedRecord(t)
	uc := f.financeWith(gateway, WithPaymentMockMode(true))

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "approved", json.RawMessage(`{"status":"approved"}`), nil)

	payment, updated, err := uc.CollectCommission(context.Background(), adminActor, rec.ID, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, entities.FinancialRecordStatusPaid, updated.Status)

	_, _, err = uc.CollectCommission(context.Background(), adminActor, rec.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyCollected)
}

func TestFinancialUseCase_GatewayNotConfigured(t *testing.T) {
	f := newFixture(t)
	rec := f.signedRecord(t)

	_, _, err := f.finance.CollectCommission(context.Background(), adminActor, rec.ID, json.RawMessage(`{"payment_method_id":"pix"}`))
	assert.ErrorIs(t, err, ErrPaymentGatewayNotConfigured)
}
