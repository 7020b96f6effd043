package plans

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/plankit/pkg/identity"
	"github.com/dmitrymomot/plankit/pkg/logger"
	"github.com/dmitrymomot/plankit/pkg/pagination"
	"github.com/dmitrymomot/plankit/pkg/respond"
	"github.com/dmitrymomot/plankit/pkg/validator"
)

const (
	msgForbidden = "The requested resource is forbidden."
	msgNotFound  = "The requested resource was not found."
	msgCodeTaken = "A plan with this code already exists."
	msgInternal  = "Internal server error."
	msgBadJSON   = "Request body must be valid JSON."
	msgBadPlanID = "Plan identifier must be a 24-character hex string."
)

// planIDPattern is the wire contract for path identifiers. It admits some
// non-hex characters; the hex decode right after it rejects those, still
// before any store access.
var planIDPattern = regexp.MustCompile(`^[a-z0-9]{24}$`)

// Handler serves the plan resource endpoints.
type Handler struct {
	store    Store
	log      *slog.Logger
	now      func() time.Time
	maxLimit int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler's logger.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithClock replaces the time source, fixing "now" in tests.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithMaxLimit sets the largest accepted page size.
func WithMaxLimit(limit int64) HandlerOption {
	return func(h *Handler) {
		if limit >= minLimit {
			h.maxLimit = limit
		}
	}
}

// NewHandler creates a plan handler on top of the given store.
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:    store,
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
		maxLimit: 100,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Create handles POST /. The owner is always the authenticated caller;
// nothing in the body can override it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identity.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, msgForbidden)
		return
	}

	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	plan, err := req.plan(ownerID, h.now())
	if err != nil {
		respond.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	taken, err := h.store.ExistsByCode(r.Context(), ownerID, plan.Code)
	if err != nil {
		h.internal(w, r, err)
		return
	}
	if taken {
		respond.Error(w, http.StatusBadRequest, msgCodeTaken)
		return
	}

	if err := h.store.Insert(r.Context(), plan); err != nil {
		// Two concurrent creates can both pass the existence check; the
		// unique index decides the winner.
		if errors.Is(err, ErrCodeTaken) {
			respond.Error(w, http.StatusBadRequest, msgCodeTaken)
			return
		}
		h.internal(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "plan created",
		logger.PlanID(plan.ID.Hex()),
		logger.PlanCode(plan.Code),
	)
	respond.JSON(w, http.StatusCreated, newPlanResponse(plan))
}

// List handles GET /. Results are always scoped to the caller's plans.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identity.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, msgForbidden)
		return
	}

	req, err := parseListPlansRequest(r.URL.Query(), h.maxLimit)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	filter := Filter{OwnerID: ownerID, Search: req.Search}
	if start, end, ok := req.Range.Bounds(h.now()); ok {
		filter.CreatedFrom, filter.CreatedTo = &start, &end
	}

	records, total, err := h.store.FindPage(r.Context(), filter, req.Page+1, req.Limit)
	if err != nil {
		h.internal(w, r, err)
		return
	}

	out := make([]PlanResponse, 0, len(records))
	for i := range records {
		out = append(out, newPlanResponse(&records[i]))
	}
	respond.JSON(w, http.StatusOK, pagination.New(out, total, req.Page, req.Limit))
}

// Get handles GET /{planID}. A plan owned by someone else answers exactly
// like a missing one, so existence never leaks across tenants.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identity.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusForbidden, msgForbidden)
		return
	}

	raw := chi.URLParam(r, "planID")
	if !planIDPattern.MatchString(raw) {
		respond.Error(w, http.StatusBadRequest, msgBadPlanID)
		return
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, msgBadPlanID)
		return
	}

	plan, err := h.store.FindByID(r.Context(), id, ownerID)
	if errors.Is(err, ErrNotFound) {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, newPlanResponse(plan))
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "plan store failure", logger.Error(err))
	respond.Error(w, http.StatusInternalServerError, msgInternal)
}

// validationMessage surfaces the first field error; one message per request
// is enough for clients to correct input.
func validationMessage(err error) string {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return verrs[0].String()
	}
	return "Invalid request."
}
