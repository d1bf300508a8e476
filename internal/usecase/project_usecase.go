package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/finance"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/domain/visibility"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/infrastructure/metrics"
	"solar_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrProjectNotFound   = fmt.Errorf("project %w", lifecycle.ErrNotFound)
	ErrInstallerNotFound = fmt.Errorf("installer %w", lifecycle.ErrNotFound)
	ErrUnknownRoofType   = fmt.Errorf("roof type %w", lifecycle.ErrNotFound)
	ErrUnknownEquipment  = fmt.Errorf("equipment model %w", lifecycle.ErrNotFound)
)

const defaultSideEffectTimeout = 5 * time.Second

// ListQuery narrows project listings. Status is honoured for every role;
// County only for admins.
type ListQuery struct {
	Status entities.ProjectStatus
	County string
}

// IProjectUseCase drives the project lifecycle. Each mutating call is one
// load/apply/commit cycle against a single project.
type IProjectUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, draft lifecycle.ProjectDraft) (entities.Project, error)
	Approve(ctx context.Context, actor entities.Actor, projectID, photoRef string) (entities.Project, error)
	Hold(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	Restore(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	Delete(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	Edit(ctx context.Context, actor entities.Actor, projectID string, edit lifecycle.ProjectEdit) (entities.Project, error)
	ShareContact(ctx context.Context, actor entities.Actor, projectID, installerID string) (entities.Project, error)
	SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, in lifecycle.QuoteInput) (entities.Project, entities.Quote, error)
	AcceptOffer(ctx context.Context, actor entities.Actor, projectID, quoteID string) (entities.Project, error)
	MarkAsSigned(ctx context.Context, actor entities.Actor, projectID string, finalPrice float64) (entities.Project, error)
	LeaveReview(ctx context.Context, actor entities.Actor, projectID string, rating int, comment string) (entities.Project, error)

	GetByID(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	List(ctx context.Context, actor entities.Actor, q ListQuery) ([]entities.Project, error)
	InstallerDashboard(ctx context.Context, actor entities.Actor) (map[visibility.Bucket][]entities.Project, error)
	HomeownerContact(ctx context.Context, actor entities.Actor, projectID string) (entities.ContactInfo, error)
}

type ProjectUseCase struct {
	projects   interfaces.IProjectRepository
	users      interfaces.IUserDirectory
	settings   interfaces.ISettingsRepository
	dispatcher INotificationDispatcher
	log        logger.Logger

	machine     *lifecycle.Machine
	catalog     interfaces.ICatalog
	delivery    interfaces.INotificationDelivery
	audit       interfaces.IAuditLog
	publisher   interfaces.IEventPublisher
	defaultRate float64
	timeout     time.Duration
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

type ProjectOption func(*ProjectUseCase)

func WithMachine(m *lifecycle.Machine) ProjectOption {
	return func(u *ProjectUseCase) { u.machine = m }
}

func WithCatalog(c interfaces.ICatalog) ProjectOption {
	return func(u *ProjectUseCase) { u.catalog = c }
}

func WithDelivery(d interfaces.INotificationDelivery) ProjectOption {
	return func(u *ProjectUseCase) { u.delivery = d }
}

func WithAuditLog(a interfaces.IAuditLog) ProjectOption {
	return func(u *ProjectUseCase) { u.audit = a }
}

func WithEventPublisher(p interfaces.IEventPublisher) ProjectOption {
	return func(u *ProjectUseCase) { u.publisher = p }
}

// WithDefaultCommissionRate is used while no rate is stored in settings.
func WithDefaultCommissionRate(rate float64) ProjectOption {
	return func(u *ProjectUseCase) { u.defaultRate = rate }
}

func WithSideEffectTimeout(d time.Duration) ProjectOption {
	return func(u *ProjectUseCase) { u.timeout = d }
}

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	users interfaces.IUserDirectory,
	settings interfaces.ISettingsRepository,
	dispatcher INotificationDispatcher,
	log logger.Logger,
	opts ...ProjectOption,
) *ProjectUseCase {
	u := &ProjectUseCase{
		projects:    projects,
		users:       users,
		settings:    settings,
		dispatcher:  dispatcher,
		log:         log.Named("project.usecase"),
		machine:     lifecycle.NewMachine(),
		defaultRate: finance.DefaultCommissionRate,
		timeout:     defaultSideEffectTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ProjectUseCase) Submit(ctx context.Context, actor entities.Actor, draft lifecycle.ProjectDraft) (entities.Project, error) {
	start := time.Now()
	if u.catalog != nil && !u.catalog.RoofTypeExists(strings.TrimSpace(draft.RoofTypeID)) {
		u.rejected(lifecycle.OpSubmit, ErrUnknownRoofType)
		return entities.Project{}, ErrUnknownRoofType
	}
	tr, err := u.machine.Submit(actor, draft)
	if err != nil {
		u.rejected(lifecycle.OpSubmit, err)
		return entities.Project{}, err
	}
	tr, err = u.commit(ctx, actor, tr, 0, start)
	return tr.Project, err
}

func (u *ProjectUseCase) Approve(ctx context.Context, actor entities.Actor, projectID, photoRef string) (entities.Project, error) {
	tr, err := u.apply(ctx, actor, lifecycle.OpApprove, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.Approve(actor, p, photoRef)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) Hold(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	tr, err := u.apply(ctx, actor, lifecycle.OpHold, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.Hold(actor, p)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) Restore(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	tr, err := u.apply(ctx, actor, lifecycle.OpRestore, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.Restore(actor, p)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) Delete(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	tr, err := u.apply(ctx, actor, lifecycle.OpDelete, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.Delete(actor, p)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) Edit(ctx context.Context, actor entities.Actor, projectID string, edit lifecycle.ProjectEdit) (entities.Project, error) {
	if edit.RoofTypeID != nil && u.catalog != nil && !u.catalog.RoofTypeExists(strings.TrimSpace(*edit.RoofTypeID)) {
		u.rejected(lifecycle.OpEdit, ErrUnknownRoofType)
		return entities.Project{}, ErrUnknownRoofType
	}
	tr, err := u.apply(ctx, actor, lifecycle.OpEdit, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.Edit(actor, p, edit)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) ShareContact(ctx context.Context, actor entities.Actor, projectID, installerID string) (entities.Project, error) {
	installerID = strings.TrimSpace(installerID)
	if installerID != "" {
		inst, err := u.users.GetByID(ctx, installerID)
		if err != nil {
			return entities.Project{}, err
		}
		if inst.ID == "" || entities.RoleOf(inst) != entities.RoleInstaller {
			u.rejected(lifecycle.OpShareContact, ErrInstallerNotFound)
			return entities.Project{}, ErrInstallerNotFound
		}
	}
	tr, err := u.apply(ctx, actor, lifecycle.OpShareContact, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.ShareContact(actor, p, installerID)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, in lifecycle.QuoteInput) (entities.Project, entities.Quote, error) {
	if err := u.checkEquipment(in); err != nil {
		u.rejected(lifecycle.OpSubmitQuote, err)
		return entities.Project{}, entities.Quote{}, err
	}
	tr, err := u.apply(ctx, actor, lifecycle.OpSubmitQuote, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.SubmitQuote(actor, p, in)
	})
	if err != nil {
		return entities.Project{}, entities.Quote{}, err
	}
	q, _, _ := tr.Project.QuoteByInstaller(actor.ID)
	return tr.Project, q, nil
}

func (u *ProjectUseCase) AcceptOffer(ctx context.Context, actor entities.Actor, projectID, quoteID string) (entities.Project, error) {
	rate, err := u.commissionRate(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	tr, err := u.apply(ctx, actor, lifecycle.OpAcceptOffer, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.AcceptOffer(actor, p, quoteID, rate)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) MarkAsSigned(ctx context.Context, actor entities.Actor, projectID string, finalPrice float64) (entities.Project, error) {
	rate, err := u.commissionRate(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	tr, err := u.apply(ctx, actor, lifecycle.OpMarkAsSigned, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.MarkAsSigned(actor, p, finalPrice, rate)
	})
	return tr.Project, err
}

func (u *ProjectUseCase) LeaveReview(ctx context.Context, actor entities.Actor, projectID string, rating int, comment string) (entities.Project, error) {
	tr, err := u.apply(ctx, actor, lifecycle.OpLeaveReview, projectID, func(p entities.Project) (lifecycle.Transition, error) {
		return u.machine.LeaveReview(actor, p, rating, comment)
	})
	return tr.Project, err
}

// GetByID hides projects the actor may not view behind ErrProjectNotFound.
func (u *ProjectUseCase) GetByID(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if !visibility.CanViewProject(p, actor) {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context, actor entities.Actor, q ListQuery) ([]entities.Project, error) {
	var (
		out []entities.Project
		err error
	)
	switch actor.Role {
	case entities.RoleAdmin:
		out, err = u.projects.List(ctx, interfaces.ProjectFilter{Statuses: statusFilter(q.Status), County: strings.TrimSpace(q.County)})
	case entities.RoleHomeowner:
		out, err = u.projects.List(ctx, interfaces.ProjectFilter{HomeownerID: actor.ID, Statuses: statusFilter(q.Status)})
	case entities.RoleInstaller:
		out, err = u.installerProjects(ctx, actor)
	default:
		return nil, lifecycle.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	visible := make([]entities.Project, 0, len(out))
	for _, p := range out {
		if !visibility.CanViewProject(p, actor) {
			continue
		}
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		visible = append(visible, p)
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].CreatedAt.After(visible[j].CreatedAt) })
	return visible, nil
}

func (u *ProjectUseCase) InstallerDashboard(ctx context.Context, actor entities.Actor) (map[visibility.Bucket][]entities.Project, error) {
	if !actor.Is(entities.RoleInstaller) {
		return nil, lifecycle.ErrForbidden
	}
	projects, err := u.installerProjects(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := map[visibility.Bucket][]entities.Project{}
	for _, p := range projects {
		if bucket, ok := visibility.ClassifyForInstaller(p, actor); ok {
			out[bucket] = append(out[bucket], p)
		}
	}
	return out, nil
}

// HomeownerContact returns the owner's contact details if the gate allows.
func (u *ProjectUseCase) HomeownerContact(ctx context.Context, actor entities.Actor, projectID string) (entities.ContactInfo, error) {
	p, err := u.GetByID(ctx, actor, projectID)
	if err != nil {
		return entities.ContactInfo{}, err
	}
	if !visibility.CanSeeContact(p, actor) {
		return entities.ContactInfo{}, lifecycle.ErrForbidden
	}
	owner, err := u.users.GetByID(ctx, p.HomeownerID)
	if err != nil {
		return entities.ContactInfo{}, err
	}
	return owner.Contact, nil
}

// installerProjects merges the installer's own projects with open leads in
// its service counties.
func (u *ProjectUseCase) installerProjects(ctx context.Context, actor entities.Actor) ([]entities.Project, error) {
	seen := map[string]bool{}
	var out []entities.Project
	add := func(ps []entities.Project) {
		for _, p := range ps {
			if !seen[p.ID] {
				seen[p.ID] = true
				out = append(out, p)
			}
		}
	}

	mine, err := u.projects.List(ctx, interfaces.ProjectFilter{InstallerID: actor.ID})
	if err != nil {
		return nil, err
	}
	add(mine)

	for _, county := range actor.ServiceCounties {
		leads, err := u.projects.List(ctx, interfaces.ProjectFilter{
			County:   county,
			Statuses: []entities.ProjectStatus{entities.ProjectStatusApproved, entities.ProjectStatusContactShared},
		})
		if err != nil {
			return nil, err
		}
		add(leads)
	}
	return out, nil
}

func (u *ProjectUseCase) load(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) apply(
	ctx context.Context,
	actor entities.Actor,
	op string,
	projectID string,
	fn func(p entities.Project) (lifecycle.Transition, error),
) (lifecycle.Transition, error) {
	start := time.Now()
	p, err := u.load(ctx, projectID)
	if err != nil {
		u.rejected(op, err)
		return lifecycle.Transition{}, err
	}

	tr, err := fn(p)
	if err != nil {
		u.rejected(op, err)
		u.log.Info("transition rejected", map[string]interface{}{
			"op": op, "project_id": p.ID, "status": string(p.Status), "actor_id": actor.ID, "error": err.Error(),
		})
		return lifecycle.Transition{}, err
	}
	if tr.Noop {
		return tr, nil
	}
	return u.commit(ctx, actor, tr, p.Version, start)
}

func (u *ProjectUseCase) commit(ctx context.Context, actor entities.Actor, tr lifecycle.Transition, expected int64, start time.Time) (lifecycle.Transition, error) {
	notifications := u.dispatcher.Build(ctx, tr.Events)

	stored, err := u.projects.CommitTransition(ctx, interfaces.TransitionBundle{
		Project:         tr.Project,
		ExpectedVersion: expected,
		Record:          tr.Record,
		Notifications:   notifications,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			err = lifecycle.ErrConcurrentModification
		}
		u.rejected(tr.Op, err)
		u.log.WithError(err).Warn("commit failed", map[string]interface{}{"op": tr.Op, "project_id": tr.Project.ID})
		return lifecycle.Transition{}, err
	}
	tr.Project = stored

	metrics.TransitionsCommitted.WithLabelValues(tr.Op).Inc()
	metrics.TransitionDuration.WithLabelValues(tr.Op).Observe(time.Since(start).Seconds())
	for _, n := range notifications {
		metrics.NotificationsEmitted.WithLabelValues(n.MessageKey).Inc()
	}
	if tr.Record != nil {
		metrics.CommissionSigned.Add(tr.Record.CommissionAmount)
	}
	u.log.Info("transition committed", map[string]interface{}{
		"op": tr.Op, "project_id": stored.ID, "status": string(stored.Status), "version": stored.Version,
		"actor_id": actor.ID, "notifications": len(notifications),
	})

	u.afterCommit(ctx, actor, tr, notifications)
	return tr, nil
}

// afterCommit runs the external collaborators. They hold no lock, get their
// own deadline, and can only log.
func (u *ProjectUseCase) afterCommit(ctx context.Context, actor entities.Actor, tr lifecycle.Transition, notifications []entities.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	if u.delivery != nil {
		for _, n := range notifications {
			recipient, err := u.users.GetByID(ctx, n.UserID)
			if err == nil && recipient.ID != "" {
				err = u.delivery.Deliver(ctx, n, recipient)
			}
			if err != nil {
				metrics.DeliveryFailures.WithLabelValues("delivery").Inc()
				u.log.WithError(err).Warn("notification delivery failed", map[string]interface{}{
					"notification_id": n.ID, "user_id": n.UserID, "message_key": n.MessageKey,
				})
			}
		}
	}

	if u.audit != nil {
		entry := entities.HistoryEntry{
			ID:         uuid.NewString(),
			Timestamp:  tr.Project.UpdatedAt,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     tr.Op,
			TargetType: entities.HistoryTargetProject,
			TargetID:   tr.Project.ID,
			TargetName: tr.Project.Address.Street + ", " + tr.Project.Address.City,
		}
		if err := u.audit.Record(ctx, entry); err != nil {
			metrics.DeliveryFailures.WithLabelValues("audit").Inc()
			u.log.WithError(err).Warn("audit record failed", map[string]interface{}{"op": tr.Op, "project_id": tr.Project.ID})
		}
	}

	if u.publisher != nil && len(tr.Events) > 0 {
		if err := u.publisher.Publish(ctx, tr.Events); err != nil {
			metrics.DeliveryFailures.WithLabelValues("events").Inc()
			u.log.WithError(err).Warn("event publish failed", map[string]interface{}{"op": tr.Op, "project_id": tr.Project.ID})
		}
	}
}

func (u *ProjectUseCase) commissionRate(ctx context.Context) (float64, error) {
	if u.settings == nil {
		return u.defaultRate, nil
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

func (u *ProjectUseCase) checkEquipment(in lifecycle.QuoteInput) error {
	if u.catalog == nil {
		return nil
	}
	if id := strings.TrimSpace(in.PanelModelID); id != "" && !u.catalog.PanelModelExists(id) {
		return fmt.Errorf("%w: panel %s", ErrUnknownEquipment, id)
	}
	if id := strings.TrimSpace(in.InverterModelID); id != "" && !u.catalog.InverterModelExists(id) {
		return fmt.Errorf("%w: inverter %s", ErrUnknownEquipment, id)
	}
	if id := strings.TrimSpace(in.BatteryModelID); id != "" && !u.catalog.BatteryModelExists(id) {
		return fmt.Errorf("%w: battery %s", ErrUnknownEquipment, id)
	}
	return nil
}

func (u *ProjectUseCase) rejected(op string, err error) {
	metrics.TransitionsRejected.WithLabelValues(op, rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrAlreadySigned):
		return "already_signed"
	case errors.Is(err, lifecycle.ErrPreconditionFailed):
		return "precondition_failed"
	case errors.Is(err, lifecycle.ErrNotEligible):
		return "not_eligible"
	case errors.Is(err, lifecycle.ErrNotFound):
		return "not_found"
	case errors.Is(err, lifecycle.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, lifecycle.ErrForbidden):
		return "forbidden"
	case errors.Is(err, lifecycle.ErrInvalidInput), errors.Is(err, ErrInvalidProjectID):
		return "invalid_input"
	}
	return "internal"
}

func statusFilter(s entities.ProjectStatus) []entities.ProjectStatus {
	if s == "" {
		return nil
	}
	return []entities.ProjectStatus{s}
}
