package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

// IFinancialRecordRepository reads commission records and applies the single
// allowed mutation (PENDING -> PAID). Records are created by
// IProjectRepository.CommitTransition only.
type IFinancialRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.FinancialRecord, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.FinancialRecord, error)
	List(ctx context.Context, status entities.FinancialRecordStatus) ([]entities.FinancialRecord, error)
	// UpdateStatus writes rec only if the stored status still equals from;
	// otherwise it returns a zero record.
	UpdateStatus(ctx context.Context, rec entities.FinancialRecord, from entities.FinancialRecordStatus) (entities.FinancialRecord, error)
}
