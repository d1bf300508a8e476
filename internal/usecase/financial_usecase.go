package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/finance"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecordID                = errors.New("invalid financial record id")
	ErrRecordNotFound                 = fmt.Errorf("financial record %w", lifecycle.ErrNotFound)
	ErrCommissionPaymentNotFound      = fmt.Errorf("commission payment %w", lifecycle.ErrNotFound)
	ErrAlreadyCollected               = finance.ErrAlreadyCollected
	ErrInvalidCommissionRate          = finance.ErrInvalidRate
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IFinancialUseCase covers commission records after signing: listing,
// the global commission rate, and collection (manual or through the
// payment provider).
type IFinancialUseCase interface {
	List(ctx context.Context, actor entities.Actor, status entities.FinancialRecordStatus) ([]entities.FinancialRecord, error)
	GetByProjectID(ctx context.Context, actor entities.Actor, projectID string) (entities.FinancialRecord, error)
	GetCommissionRate(ctx context.Context, actor entities.Actor) (float64, error)
	SetCommissionRate(ctx context.Context, actor entities.Actor, rate float64) (float64, error)
	MarkCollected(ctx context.Context, actor entities.Actor, recordID, reference string) (entities.FinancialRecord, error)
	CollectCommission(ctx context.Context, actor entities.Actor, recordID string, payload json.RawMessage) (entities.CommissionPayment, entities.FinancialRecord, error)
	ListPayments(ctx context.Context, actor entities.Actor, recordID string) ([]entities.CommissionPayment, error)
}

type FinancialUseCase struct {
	records     interfaces.IFinancialRecordRepository
	payments    interfaces.ICommissionPaymentRepository
	settings    interfaces.ISettingsRepository
	users       interfaces.IUserDirectory
	gateway     interfaces.IPaymentGateway
	audit       interfaces.IAuditLog
	log         logger.Logger
	defaultRate float64
	mockMode    bool
	now         func() time.Time
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

type FinancialOption func(*FinancialUseCase)

func WithFinancialAuditLog(a interfaces.IAuditLog) FinancialOption {
	return func(u *FinancialUseCase) { u.audit = a }
}

// WithPaymentMockMode relaxes payload checks when the gateway runs in mock mode.
func WithPaymentMockMode(mock bool) FinancialOption {
	return func(u *FinancialUseCase) { u.mockMode = mock }
}

func WithFinancialDefaultRate(rate float64) FinancialOption {
	return func(u *FinancialUseCase) { u.defaultRate = rate }
}

func NewFinancialUseCase(
	records interfaces.IFinancialRecordRepository,
	payments interfaces.ICommissionPaymentRepository,
	settings interfaces.ISettingsRepository,
	users interfaces.IUserDirectory,
	gateway interfaces.IPaymentGateway,
	log logger.Logger,
	opts ...FinancialOption,
) *FinancialUseCase {
	u := &FinancialUseCase{
		records:     records,
		payments:    payments,
		settings:    settings,
		users:       users,
		gateway:     gateway,
		log:         log.Named("finance.usecase"),
		defaultRate: finance.DefaultCommissionRate,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// List returns every record for admins and only their own for installers.
func (u *FinancialUseCase) List(ctx context.Context, actor entities.Actor, status entities.FinancialRecordStatus) ([]entities.FinancialRecord, error) {
	if !actor.Is(entities.RoleAdmin) && !actor.Is(entities.RoleInstaller) {
		return nil, lifecycle.ErrForbidden
	}
	records, err := u.records.List(ctx, status)
	if err != nil {
		return nil, err
	}
	if actor.Is(entities.RoleAdmin) {
		return records, nil
	}
	own := make([]entities.FinancialRecord, 0, len(records))
	for _, r := range records {
		if r.InstallerID == actor.ID {
			own = append(own, r)
		}
	}
	return own, nil
}

func (u *FinancialUseCase) GetByProjectID(ctx context.Context, actor entities.Actor, projectID string) (entities.FinancialRecord, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.FinancialRecord{}, ErrInvalidProjectID
	}
	rec, err := u.records.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if rec.ID == "" {
		return entities.FinancialRecord{}, ErrRecordNotFound
	}
	if !actor.Is(entities.RoleAdmin) && !(actor.Is(entities.RoleInstaller) && rec.InstallerID == actor.ID) {
		return entities.FinancialRecord{}, ErrRecordNotFound
	}
	return rec, nil
}

func (u *FinancialUseCase) GetCommissionRate(ctx context.Context, actor entities.Actor) (float64, error) {
	if !actor.Is(entities.RoleAdmin) {
		return 0, lifecycle.ErrForbidden
	}
	rate, err := u.settings.GetCommissionRate(ctx)
	if err != nil {
		return 0, err
	}
	if rate == 0 {
		return u.defaultRate, nil
	}
	return rate, nil
}

// SetCommissionRate affects future signings only; existing records keep the
// rate they were signed at.
func (u *FinancialUseCase) SetCommissionRate(ctx context.Context, actor entities.Actor, rate float64) (float64, error) {
	if !actor.Is(entities.RoleAdmin) {
		return 0, lifecycle.ErrForbidden
	}
	if err := finance.ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := u.settings.SetCommissionRate(ctx, rate); err != nil {
		return 0, err
	}
	u.log.Info("commission rate updated", map[string]interface{}{"rate": rate, "actor_id": actor.ID})
	u.record(ctx, actor, "set_commission_rate", entities.HistoryTargetSetting, "commission_rate", strconv.FormatFloat(rate, 'f', -1, 64))
	return rate, nil
}

// MarkCollected flips a record to PAID without going through the provider
// (bank transfer reconciled by an admin).
func (u *FinancialUseCase) MarkCollected(ctx context.Context, actor entities.Actor, recordID, reference string) (entities.FinancialRecord, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.FinancialRecord{}, lifecycle.ErrForbidden
	}
	rec, err := u.load(ctx, recordID)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	return u.collect(ctx, actor, rec, strings.TrimSpace(reference))
}

func (u *FinancialUseCase) collect(ctx context.Context, actor entities.Actor, rec entities.FinancialRecord, reference string) (entities.FinancialRecord, error) {
	paid, err := finance.MarkCollected(rec, u.now(), reference)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	updated, err := u.records.UpdateStatus(ctx, paid, entities.FinancialRecordStatusPending)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if updated.ID == "" {
		// Another admin collected it between our read and write.
		return entities.FinancialRecord{}, ErrAlreadyCollected
	}
	u.log.Info("commission collected", map[string]interface{}{
		"record_id": updated.ID, "project_id": updated.ProjectID, "amount": updated.CommissionAmount, "reference": reference,
	})
	u.record(ctx, actor, "mark_collected", entities.HistoryTargetFinance, updated.ID, updated.ProjectCity)
	return updated, nil
}

// CollectCommission charges the winning installer through the payment
// provider and marks the record PAID when the provider approves.
func (u *FinancialUseCase) CollectCommission(ctx context.Context, actor entities.Actor, recordID string, payload json.RawMessage) (entities.CommissionPayment, entities.FinancialRecord, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, lifecycle.ErrForbidden
	}
	log := u.log.WithFields(map[string]interface{}{"record_id": recordID})
	log.Debug("collect commission start", map[string]interface{}{"payload_len": len(payload)})

	if len(payload) == 0 || !json.Valid(payload) {
		if !u.mockMode {
			return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrPaymentGatewayNotConfigured
	}

	rec, err := u.load(ctx, recordID)
	if err != nil {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, err
	}
	if rec.Status == entities.FinancialRecordStatusPaid {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrAlreadyCollected
	}

	installer, err := u.users.GetByID(ctx, rec.InstallerID)
	if err != nil {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrInvalidPaymentPayload
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn("missing payment_method_id", nil)
		return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrInvalidPaymentPayload
	}
	ensurePayerDefaults(reqMap, installer.Contact.Email)
	if !u.mockMode && !hasPayer(reqMap) {
		log.Warn("missing payer", nil)
		return entities.CommissionPayment{}, entities.FinancialRecord{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = rec.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Commission for project %s", rec.ProjectID)
	}
	// The amount always comes from the stored record.
	reqMap["transaction_amount"] = rec.CommissionAmount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.CommissionPayment{}, entities.FinancialRecord{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.WithError(err).Warn("payment gateway failed", nil)
		return entities.CommissionPayment{}, entities.FinancialRecord{}, mapGatewayError(err)
	}
	log.Info("payment gateway responded", map[string]interface{}{
		"provider_payment_id": providerPaymentID, "provider_status": providerStatus,
	})

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Debug("provider response not parsed", nil)
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	status := entities.CommissionPaymentStatusPending
	switch strings.ToLower(providerStatus) {
	case "approved":
		status = entities.CommissionPaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		status = entities.CommissionPaymentStatusDenied
	}

	payment, err := u.payments.Create(ctx, entities.CommissionPayment{
		ID:                 providerPaymentID,
		RecordID:           rec.ID,
		ProjectID:          rec.ProjectID,
		Amount:             rec.CommissionAmount,
		Date:               u.now(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		log.WithError(err).Error("commission payment create failed", map[string]interface{}{"payment_id": providerPaymentID})
		return entities.CommissionPayment{}, entities.FinancialRecord{}, err
	}

	if status != entities.CommissionPaymentStatusApproved {
		return payment, rec, ErrPaymentNotApproved
	}
	updated, err := u.collect(ctx, actor, rec, payment.ID)
	if err != nil {
		return payment, rec, err
	}
	return payment, updated, nil
}

func (u *FinancialUseCase) ListPayments(ctx context.Context, actor entities.Actor, recordID string) ([]entities.CommissionPayment, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, lifecycle.ErrForbidden
	}
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return nil, ErrInvalidRecordID
	}
	return u.payments.ListByRecordID(ctx, recordID)
}

func (u *FinancialUseCase) load(ctx context.Context, recordID string) (entities.FinancialRecord, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.FinancialRecord{}, ErrInvalidRecordID
	}
	rec, err := u.records.GetByID(ctx, recordID)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if rec.ID == "" {
		return entities.FinancialRecord{}, ErrRecordNotFound
	}
	return rec, nil
}

func (u *FinancialUseCase) record(ctx context.Context, actor entities.Actor, action string, target entities.HistoryTargetType, targetID, targetName string) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, entities.HistoryEntry{
		ID:         uuid.NewString(),
		Timestamp:  u.now(),
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		TargetType: target,
		TargetID:   targetID,
		TargetName: targetName,
	})
	if err != nil {
		u.log.WithError(err).Warn("audit record failed", map[string]interface{}{"action": action})
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults bills the installer's email unless the caller named a
// payer explicitly.
func ensurePayerDefaults(m map[string]any, installerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(installerEmail) != "" {
		payer["email"] = strings.TrimSpace(installerEmail)
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
