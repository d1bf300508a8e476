package memory

import (
	"context"
	"sort"

	"solar_portal/internal/domain/entities"
)

func (r *Records) GetByID(_ context.Context, id string) (entities.FinancialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.records[id], nil
}

func (r *Records) GetByProjectID(_ context.Context, projectID string) (entities.FinancialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.records {
		if rec.ProjectID == projectID {
			return rec, nil
		}
	}
	return entities.FinancialRecord{}, nil
}

func (r *Records) List(_ context.Context, status entities.FinancialRecordStatus) ([]entities.FinancialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.FinancialRecord, 0, len(r.s.records))
	for _, rec := range r.s.records {
		if status == "" || rec.Status == status {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignedAt.After(out[j].SignedAt) })
	return out, nil
}

func (r *Records) UpdateStatus(_ context.Context, rec entities.FinancialRecord, from entities.FinancialRecordStatus) (entities.FinancialRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.records[rec.ID]
	if !ok || current.Status != from {
		return entities.FinancialRecord{}, nil
	}
	r.s.records[rec.ID] = rec
	return rec, nil
}

func (p *Payments) Create(_ context.Context, pay entities.CommissionPayment) (entities.CommissionPayment, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.payments[pay.ID] = pay
	return pay, nil
}

func (p *Payments) GetByID(_ context.Context, id string) (entities.CommissionPayment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	return p.s.payments[id], nil
}

func (p *Payments) ListByRecordID(_ context.Context, recordID string) ([]entities.CommissionPayment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]entities.CommissionPayment, 0)
	for _, pay := range p.s.payments {
		if pay.RecordID == recordID {
			out = append(out, pay)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (st *Settings) GetCommissionRate(_ context.Context) (float64, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	return st.s.rate, nil
}

func (st *Settings) SetCommissionRate(_ context.Context, rate float64) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.rate = rate
	return nil
}
