package usecase

import (
	"context"
	"fmt"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/events"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Message keys rendered by the client.
const (
	MsgAdminNewProject        = "adminNewProject"
	MsgInstallerNewLead       = "installerNewLead"
	MsgInstallerContactShared = "installerContactShared"
	MsgHomeownerNewQuote      = "homeownerNewQuote"
	MsgHomeownerQuoteRevised  = "homeownerQuoteRevised"
	MsgAdminDealSigned        = "adminDealSigned"
	MsgInstallerDealWon       = "installerDealWon"
	MsgInstallerNewReview     = "installerNewReview"
)

const (
	linkAdminPendingProjects = "/admin/projects/pending"
	linkInstallerNewLeads    = "/installer/newLeads"
	linkInstallerShared      = "/installer/sharedContacts"
	linkAdminFinancePending  = "/admin/finance/pending"
	linkInstallerSignedDeals = "/installer/signedDeals"
)

func quoteLink(projectID, quoteID string) string {
	return fmt.Sprintf("/quote/%s/%s", projectID, quoteID)
}

func installerProfileLink(installerID string) string {
	return "/installerProfile/" + installerID
}

// INotificationDispatcher turns the events of one transition into the
// notifications committed with it.
type INotificationDispatcher interface {
	Build(ctx context.Context, evs []events.Event) []entities.Notification
}

// NotificationDispatcher resolves recipients through the user directory.
// Lookup failures drop the affected notifications and are logged; they
// never fail the transition.
type NotificationDispatcher struct {
	users interfaces.IUserDirectory
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(users interfaces.IUserDirectory, log logger.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		users: users,
		log:   log.Named("notification.dispatcher"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (d *NotificationDispatcher) Build(ctx context.Context, evs []events.Event) []entities.Notification {
	var out []entities.Notification
	for _, ev := range evs {
		out = append(out, d.forEvent(ctx, ev)...)
	}
	return out
}

func (d *NotificationDispatcher) forEvent(ctx context.Context, ev events.Event) []entities.Notification {
	switch ev.Type {
	case events.ProjectSubmitted:
		return d.toRole(ctx, ev, entities.RoleAdmin, MsgAdminNewProject,
			map[string]any{"projectId": ev.ProjectID, "city": ev.City}, linkAdminPendingProjects)

	case events.ProjectApproved:
		installers, err := d.users.ListInstallersByCounty(ctx, ev.County)
		if err != nil {
			d.warn(ev, "list installers by county failed", err)
			return nil
		}
		out := make([]entities.Notification, 0, len(installers))
		for _, u := range installers {
			if u.Status == entities.UserStatusDeleted {
				continue
			}
			out = append(out, d.make(u.ID, MsgInstallerNewLead, map[string]any{"city": ev.City}, linkInstallerNewLeads))
		}
		return out

	case events.ContactShared:
		return []entities.Notification{
			d.make(ev.InstallerID, MsgInstallerContactShared,
				map[string]any{"homeownerName": d.nameOf(ctx, ev, ev.HomeownerID)}, linkInstallerShared),
		}

	case events.QuoteSubmitted, events.QuoteRevised:
		key := MsgHomeownerNewQuote
		if ev.Type == events.QuoteRevised {
			key = MsgHomeownerQuoteRevised
		}
		return []entities.Notification{
			d.make(ev.HomeownerID, key,
				map[string]any{"installerName": d.nameOf(ctx, ev, ev.InstallerID)}, quoteLink(ev.ProjectID, ev.QuoteID)),
		}

	case events.DealSigned:
		installerName := d.nameOf(ctx, ev, ev.InstallerID)
		homeownerName := d.nameOf(ctx, ev, ev.HomeownerID)
		out := d.toRole(ctx, ev, entities.RoleAdmin, MsgAdminDealSigned,
			map[string]any{"finalPrice": ev.FinalPrice, "installerName": installerName}, linkAdminFinancePending)
		return append(out,
			d.make(ev.InstallerID, MsgInstallerDealWon, map[string]any{"homeownerName": homeownerName}, linkInstallerSignedDeals),
			d.make(ev.InstallerID, MsgInstallerContactShared, map[string]any{"homeownerName": homeownerName}, linkInstallerShared),
		)

	case events.ReviewSubmitted:
		return []entities.Notification{
			d.make(ev.InstallerID, MsgInstallerNewReview,
				map[string]any{"homeownerName": d.nameOf(ctx, ev, ev.HomeownerID)}, installerProfileLink(ev.InstallerID)),
		}
	}
	return nil
}

func (d *NotificationDispatcher) toRole(ctx context.Context, ev events.Event, role entities.Role, key string, params map[string]any, link string) []entities.Notification {
	users, err := d.users.ListByRole(ctx, role)
	if err != nil {
		d.warn(ev, "list users by role failed", err)
		return nil
	}
	out := make([]entities.Notification, 0, len(users))
	for _, u := range users {
		if u.Status == entities.UserStatusDeleted {
			continue
		}
		out = append(out, d.make(u.ID, key, params, link))
	}
	return out
}

// nameOf falls back to an empty name; the notification is still useful
// without it.
func (d *NotificationDispatcher) nameOf(ctx context.Context, ev events.Event, userID string) string {
	u, err := d.users.GetByID(ctx, userID)
	if err != nil {
		d.warn(ev, "user lookup failed", err)
		return ""
	}
	return u.Name
}

func (d *NotificationDispatcher) make(userID, key string, params map[string]any, link string) entities.Notification {
	copied := make(map[string]any, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return entities.Notification{
		ID:            d.newID(),
		UserID:        userID,
		MessageKey:    key,
		MessageParams: copied,
		Link:          link,
		CreatedAt:     d.now(),
	}
}

func (d *NotificationDispatcher) warn(ev events.Event, msg string, err error) {
	d.log.WithError(err).Warn(msg, map[string]interface{}{
		"event":      string(ev.Type),
		"project_id": ev.ProjectID,
	})
}
