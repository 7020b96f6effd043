package plans

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/plankit/pkg/daterange"
	"github.com/dmitrymomot/plankit/pkg/validator"
)

const (
	maxNameLen        = 100
	minCodeLen        = 2
	maxCodeLen        = 20
	maxDescriptionLen = 200

	defaultLimit = 20
	minLimit     = 10
)

var codePattern = regexp.MustCompile(`^[a-z0-9]+$`)

// CreatePlanRequest carries the client-mutable plan fields. Pointer fields
// distinguish absent values from zero values, so "setupFee": 0 and a missing
// setupFee both validate while a missing billingCyclePeriod does not. The
// owner is never part of the body.
type CreatePlanRequest struct {
	Name                   string   `json:"name"`
	Code                   string   `json:"code"`
	Description            *string  `json:"description"`
	BillingCyclePeriod     *int     `json:"billingCyclePeriod"`
	BillingCyclePeriodUnit string   `json:"billingCyclePeriodUnit"`
	PricePerBillingCycle   *float64 `json:"pricePerBillingCycle"`
	SetupFee               *float64 `json:"setupFee"`
	TotalBillingCycles     *int     `json:"totalBillingCycles"`
	TrialPeriod            *int     `json:"trialPeriod"`
	TrialPeriodUnit        string   `json:"trialPeriodUnit"`
	Renews                 *bool    `json:"renews"`
}

// plan normalizes the request, validates it and builds the record to
// persist. Name and code are trimmed, the code is lowercased before its
// shape is checked, and optional fields receive their defaults. Validation
// failures come back as validator.ValidationErrors.
func (r CreatePlanRequest) plan(ownerID string, now time.Time) (*Plan, error) {
	name := strings.TrimSpace(r.Name)
	code := strings.ToLower(strings.TrimSpace(r.Code))

	var desc *string
	if r.Description != nil {
		if d := strings.TrimSpace(*r.Description); d != "" {
			desc = &d
		}
	}

	rules := []validator.Rule{
		validator.RequiredString("name", name),
		validator.MaxLen("name", name, maxNameLen),
		validator.RequiredString("code", code),
		validator.MinLen("code", code, minCodeLen),
		validator.MaxLen("code", code, maxCodeLen),
		validator.Matches("code", code, codePattern, "lowercase letters and digits"),
	}
	if desc != nil {
		rules = append(rules, validator.MaxLen("description", *desc, maxDescriptionLen))
	}

	rules = append(rules, validator.Provided("billingCyclePeriod", r.BillingCyclePeriod != nil))
	if r.BillingCyclePeriod != nil {
		rules = append(rules, validator.Min("billingCyclePeriod", *r.BillingCyclePeriod, 1))
	}

	rules = append(rules, validator.RequiredString("billingCyclePeriodUnit", r.BillingCyclePeriodUnit))
	if r.BillingCyclePeriodUnit != "" {
		rules = append(rules, validator.OneOf("billingCyclePeriodUnit", r.BillingCyclePeriodUnit, periodUnits()))
	}

	rules = append(rules, validator.Provided("pricePerBillingCycle", r.PricePerBillingCycle != nil))
	if r.PricePerBillingCycle != nil {
		rules = append(rules, validator.Min("pricePerBillingCycle", *r.PricePerBillingCycle, 0))
	}

	if r.SetupFee != nil {
		rules = append(rules, validator.Min("setupFee", *r.SetupFee, 0))
	}

	rules = append(rules, validator.Provided("totalBillingCycles", r.TotalBillingCycles != nil))
	if r.TotalBillingCycles != nil {
		rules = append(rules, validator.Min("totalBillingCycles", *r.TotalBillingCycles, 1))
	}

	if r.TrialPeriod != nil {
		rules = append(rules, validator.Min("trialPeriod", *r.TrialPeriod, 0))
	}

	trialUnit := PeriodDays
	if r.TrialPeriodUnit != "" {
		rules = append(rules, validator.OneOf("trialPeriodUnit", r.TrialPeriodUnit, periodUnits()))
		trialUnit = PeriodUnit(r.TrialPeriodUnit)
	}

	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	setupFee := 0.0
	if r.SetupFee != nil {
		setupFee = *r.SetupFee
	}
	trialPeriod := 0
	if r.TrialPeriod != nil {
		trialPeriod = *r.TrialPeriod
	}
	renews := true
	if r.Renews != nil {
		renews = *r.Renews
	}

	now = now.UTC()
	return &Plan{
		ID:                     bson.NewObjectID(),
		OwnerID:                ownerID,
		Name:                   name,
		Code:                   code,
		Description:            desc,
		BillingCyclePeriod:     *r.BillingCyclePeriod,
		BillingCyclePeriodUnit: PeriodUnit(r.BillingCyclePeriodUnit),
		PricePerBillingCycle:   *r.PricePerBillingCycle,
		SetupFee:               setupFee,
		TotalBillingCycles:     *r.TotalBillingCycles,
		TrialPeriod:            trialPeriod,
		TrialPeriodUnit:        trialUnit,
		Renews:                 renews,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

// ListPlansRequest is a validated, normalized list query. Page is 0-indexed
// as it arrives on the wire.
type ListPlansRequest struct {
	Page   int64
	Limit  int64
	Range  daterange.Range
	Search string
}

func parseListPlansRequest(q url.Values, maxLimit int64) (ListPlansRequest, error) {
	var verrs validator.ValidationErrors

	page := int64(0)
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			verrs.Add(validator.ValidationError{Field: "page", Message: "must be an integer"})
		case n < 0:
			verrs.Add(validator.ValidationError{Field: "page", Message: "must be at least 0"})
		default:
			page = n
		}
	}

	limit := int64(defaultLimit)
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			verrs.Add(validator.ValidationError{Field: "limit", Message: "must be an integer"})
		case n < minLimit || n > maxLimit:
			verrs.Add(validator.ValidationError{Field: "limit", Message: fmt.Sprintf("must be between %d and %d", minLimit, maxLimit)})
		default:
			limit = n
		}
	}

	tag := q.Get("date_range")
	if tag == "" {
		tag = daterange.TagAllTime
	}
	rng, err := daterange.Parse(tag, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		switch {
		case errors.Is(err, daterange.ErrUnknownTag):
			verrs.Add(validator.ValidationError{Field: "date_range", Message: "must be one of: " + strings.Join(daterange.Tags(), ", ")})
		case errors.Is(err, daterange.ErrMissingBounds):
			if strings.TrimSpace(q.Get("start_date")) == "" {
				verrs.Add(validator.ValidationError{Field: "start_date", Message: "is required when date_range is custom"})
			}
			if strings.TrimSpace(q.Get("end_date")) == "" {
				verrs.Add(validator.ValidationError{Field: "end_date", Message: "is required when date_range is custom"})
			}
		case errors.Is(err, daterange.ErrInvertedBounds):
			verrs.Add(validator.ValidationError{Field: "start_date", Message: "must not be after end_date"})
		case errors.Is(err, daterange.ErrInvalidBound):
			verrs.Add(validator.ValidationError{Field: "date_range", Message: "has invalid custom bounds, dates must be YYYY-MM-DD or RFC 3339"})
		default:
			verrs.Add(validator.ValidationError{Field: "date_range", Message: "is invalid"})
		}
	}

	if !verrs.IsEmpty() {
		return ListPlansRequest{}, verrs
	}

	return ListPlansRequest{
		Page:   page,
		Limit:  limit,
		Range:  rng,
		Search: strings.TrimSpace(q.Get("search")),
	}, nil
}
