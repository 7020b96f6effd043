package plans

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PeriodUnit measures billing and trial periods.
type PeriodUnit string

const (
	PeriodDays   PeriodUnit = "days"
	PeriodMonths PeriodUnit = "months"
)

func periodUnits() []string {
	return []string{string(PeriodDays), string(PeriodMonths)}
}

// Plan is the persisted billing plan record. OwnerID is assigned from the
// authenticated caller at creation and never changes; no operation accepts
// it from a client.
type Plan struct {
	ID                     bson.ObjectID `bson:"_id"`
	OwnerID                string        `bson:"owner_id"`
	Name                   string        `bson:"name"`
	Code                   string        `bson:"code"`
	Description            *string       `bson:"description,omitempty"`
	BillingCyclePeriod     int           `bson:"billing_cycle_period"`
	BillingCyclePeriodUnit PeriodUnit    `bson:"billing_cycle_period_unit"`
	PricePerBillingCycle   float64       `bson:"price_per_billing_cycle"`
	SetupFee               float64       `bson:"setup_fee"`
	TotalBillingCycles     int           `bson:"total_billing_cycles"`
	TrialPeriod            int           `bson:"trial_period"`
	TrialPeriodUnit        PeriodUnit    `bson:"trial_period_unit"`
	Renews                 bool          `bson:"renews"`
	CreatedAt              time.Time     `bson:"created_at"`
	UpdatedAt              time.Time     `bson:"updated_at"`
}

// PlanResponse is the external representation of a plan. It is the only
// shape that leaves the service; internal bookkeeping stays off the wire.
type PlanResponse struct {
	ID                     string     `json:"id"`
	OwnerID                string     `json:"ownerId"`
	Name                   string     `json:"name"`
	Code                   string     `json:"code"`
	Description            *string    `json:"description"`
	BillingCyclePeriod     int        `json:"billingCyclePeriod"`
	BillingCyclePeriodUnit PeriodUnit `json:"billingCyclePeriodUnit"`
	PricePerBillingCycle   float64    `json:"pricePerBillingCycle"`
	SetupFee               float64    `json:"setupFee"`
	TotalBillingCycles     int        `json:"totalBillingCycles"`
	TrialPeriod            int        `json:"trialPeriod"`
	TrialPeriodUnit        PeriodUnit `json:"trialPeriodUnit"`
	Renews                 bool       `json:"renews"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func newPlanResponse(p *Plan) PlanResponse {
	return PlanResponse{
		ID:                     p.ID.Hex(),
		OwnerID:                p.OwnerID,
		Name:                   p.Name,
		Code:                   p.Code,
		Description:            p.Description,
		BillingCyclePeriod:     p.BillingCyclePeriod,
		BillingCyclePeriodUnit: p.BillingCyclePeriodUnit,
		PricePerBillingCycle:   p.PricePerBillingCycle,
		SetupFee:               p.SetupFee,
		TotalBillingCycles:     p.TotalBillingCycles,
		TrialPeriod:            p.TrialPeriod,
		TrialPeriodUnit:        p.TrialPeriodUnit,
		Renews:                 p.Renews,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}
