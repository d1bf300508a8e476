// Package memory is a process-local implementation of every repository
// port. It backs the "memory" storage driver and the use case tests.
package memory

import (
	"sync"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"
)

// Store keeps all state behind one mutex so CommitTransition is atomic.
// Each port is a thin view over the same Store; values are copied in and
// out so callers never share slices with it.
type Store struct {
	mu            sync.RWMutex
	projects      map[string]entities.Project
	records       map[string]entities.FinancialRecord
	payments      map[string]entities.CommissionPayment
	notifications map[string]entities.Notification
	byUser        map[string][]string
	users         map[string]entities.User
	history       []entities.HistoryEntry
	rate          float64
}

var (
	_ interfaces.IProjectRepository           = (*Projects)(nil)
	_ interfaces.IFinancialRecordRepository   = (*Records)(nil)
	_ interfaces.ICommissionPaymentRepository = (*Payments)(nil)
	_ interfaces.INotificationRepository      = (*Notifications)(nil)
	_ interfaces.ISettingsRepository          = (*Settings)(nil)
	_ interfaces.IAuditLog                    = (*History)(nil)
	_ interfaces.IUserDirectory               = (*Users)(nil)
)

func NewStore() *Store {
	return &Store{
		projects:      map[string]entities.Project{},
		records:       map[string]entities.FinancialRecord{},
		payments:      map[string]entities.CommissionPayment{},
		notifications: map[string]entities.Notification{},
		byUser:        map[string][]string{},
		users:         map[string]entities.User{},
	}
}

type (
	Projects      struct{ s *Store }
	Records       struct{ s *Store }
	Payments      struct{ s *Store }
	Notifications struct{ s *Store }
	Settings      struct{ s *Store }
	History       struct{ s *Store }
	Users         struct{ s *Store }
)

func (s *Store) Projects() *Projects           { return &Projects{s} }
func (s *Store) Records() *Records             { return &Records{s} }
func (s *Store) Payments() *Payments           { return &Payments{s} }
func (s *Store) Notifications() *Notifications { return &Notifications{s} }
func (s *Store) Settings() *Settings           { return &Settings{s} }
func (s *Store) History() *History             { return &History{s} }
func (s *Store) Users() *Users                 { return &Users{s} }
