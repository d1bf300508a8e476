package response

import (
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/visibility"
)

type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	County string `json:"county"`
}

type CostBreakdownResponse struct {
	Equipment float64 `json:"equipment"`
	Labor     float64 `json:"labor"`
	Permits   float64 `json:"permits"`
}

type QuoteResponse struct {
	ID                        string                `json:"id"`
	InstallerID               string                `json:"installer_id"`
	Price                     float64               `json:"price"`
	PriceWithoutBattery       *float64              `json:"price_without_battery,omitempty"`
	SystemSizeKW              float64               `json:"system_size_kw"`
	PanelModelID              string                `json:"panel_model_id"`
	InverterModelID           string                `json:"inverter_model_id"`
	BatteryModelID            string                `json:"battery_model_id,omitempty"`
	Warranty                  string                `json:"warranty"`
	EstimatedAnnualProduction float64               `json:"estimated_annual_production"`
	CostBreakdown             CostBreakdownResponse `json:"cost_breakdown"`
}

type ReviewResponse struct {
	ID          string    `json:"id"`
	InstallerID string    `json:"installer_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectResponse is a project as seen by one viewer. Quotes the viewer may
// not see are dropped, and the shared-installer set is only exposed to the
// owner and admins.
type ProjectResponse struct {
	ID           string          `json:"id"`
	HomeownerID  string          `json:"homeowner_id"`
	Address      AddressResponse `json:"address"`
	EnergyBill   float64         `json:"energy_bill"`
	RoofTypeID   string          `json:"roof_type_id"`
	Notes        string          `json:"notes"`
	WantsBattery bool            `json:"wants_battery"`
	PhotoRef     string          `json:"photo_ref,omitempty"`
	Status       string          `json:"status"`

	Quotes                 []QuoteResponse `json:"quotes"`
	QuoteCount             int             `json:"quote_count"`
	SharedWithInstallerIDs []string        `json:"shared_with_installer_ids,omitempty"`
	ContactShared          bool            `json:"contact_shared"`
	Outcome                string          `json:"outcome,omitempty"`

	WinningInstallerID string          `json:"winning_installer_id,omitempty"`
	FinalPrice         float64         `json:"final_price,omitempty"`
	SignedAt           *time.Time      `json:"signed_at,omitempty"`
	ReviewSubmitted    bool            `json:"review_submitted"`
	Review             *ReviewResponse `json:"review,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                        q.ID,
		InstallerID:               q.InstallerID,
		Price:                     q.Price,
		PriceWithoutBattery:       q.PriceWithoutBattery,
		SystemSizeKW:              q.SystemSizeKW,
		PanelModelID:              q.PanelModelID,
		InverterModelID:           q.InverterModelID,
		BatteryModelID:            q.BatteryModelID,
		Warranty:                  q.Warranty,
		EstimatedAnnualProduction: q.EstimatedAnnualProduction,
		CostBreakdown: CostBreakdownResponse{
			Equipment: q.CostBreakdown.Equipment,
			Labor:     q.CostBreakdown.Labor,
			Permits:   q.CostBreakdown.Permits,
		},
	}
}

func FromProject(p entities.Project, viewer entities.Actor) ProjectResponse {
	quotes := visibility.VisibleQuotes(p, viewer)
	res := ProjectResponse{
		ID:              p.ID,
		HomeownerID:     p.HomeownerID,
		Address:         AddressResponse{Street: p.Address.Street, City: p.Address.City, County: p.Address.County},
		EnergyBill:      p.EnergyBill,
		RoofTypeID:      p.RoofTypeID,
		Notes:           p.Notes,
		WantsBattery:    p.WantsBattery,
		PhotoRef:        p.PhotoRef,
		Status:          string(p.Status),
		Quotes:          make([]QuoteResponse, 0, len(quotes)),
		QuoteCount:      len(p.Quotes),
		ContactShared:   visibility.CanSeeContact(p, viewer),
		ReviewSubmitted: p.ReviewSubmitted,
		SignedAt:        p.SignedAt,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, q := range quotes {
		res.Quotes = append(res.Quotes, FromQuote(q))
	}

	switch viewer.Role {
	case entities.RoleAdmin, entities.RoleHomeowner:
		res.SharedWithInstallerIDs = append([]string(nil), p.SharedWithInstallerIDs...)
		res.WinningInstallerID = p.WinningInstallerID
		res.FinalPrice = p.FinalPrice
	case entities.RoleInstaller:
		res.Outcome = string(visibility.QuoteOutcome(p, viewer.ID))
		if p.WinningInstallerID == viewer.ID {
			res.WinningInstallerID = p.WinningInstallerID
			res.FinalPrice = p.FinalPrice
		}
	}

	if p.Review != nil {
		res.Review = &ReviewResponse{
			ID:          p.Review.ID,
			InstallerID: p.Review.InstallerID,
			Rating:      p.Review.Rating,
			Comment:     p.Review.Comment,
			CreatedAt:   p.Review.CreatedAt,
		}
	}
	return res
}

func FromProjects(ps []entities.Project, viewer entities.Actor) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p, viewer))
	}
	return out
}

// QuoteSubmittedResponse is returned after an installer submits or revises
// its quote.
type QuoteSubmittedResponse struct {
	Quote   QuoteResponse   `json:"quote"`
	Project ProjectResponse `json:"project"`
}

// DashboardResponse groups an installer's projects by tab. Every tab is
// present, empty or not.
type DashboardResponse struct {
	NewLeads       []ProjectResponse `json:"new_leads"`
	SubmittedQuote []ProjectResponse `json:"submitted_quotes"`
	SharedContacts []ProjectResponse `json:"shared_contacts"`
	SignedDeals    []ProjectResponse `json:"signed_deals"`
	LostDeals      []ProjectResponse `json:"lost_deals"`
}

func FromDashboard(board map[visibility.Bucket][]entities.Project, viewer entities.Actor) DashboardResponse {
	return DashboardResponse{
		NewLeads:       FromProjects(board[visibility.BucketNewLead], viewer),
		SubmittedQuote: FromProjects(board[visibility.BucketSubmittedQuote], viewer),
		SharedContacts: FromProjects(board[visibility.BucketSharedContact], viewer),
		SignedDeals:    FromProjects(board[visibility.BucketSignedDeal], viewer),
		LostDeals:      FromProjects(board[visibility.BucketLostDeal], viewer),
	}
}
