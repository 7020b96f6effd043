package plans

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Filter narrows a plan listing. OwnerID is always set; every query is
// tenant-scoped. CreatedFrom and CreatedTo are inclusive bounds applied
// together or not at all.
type Filter struct {
	OwnerID     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Search      string
}

// Store is the persistence boundary for plan records.
type Store interface {
	// Insert persists a new plan. It returns ErrCodeTaken when the owner
	// already has a plan with the same code.
	Insert(ctx context.Context, plan *Plan) error

	// FindByID returns the plan matching both the identifier and the
	// owner. A missing record and a record owned by someone else both
	// return ErrNotFound.
	FindByID(ctx context.Context, id bson.ObjectID, ownerID string) (*Plan, error)

	// FindPage returns one page of plans matching the filter, newest
	// first, along with the total match count. Pages are 1-indexed here;
	// the transport layer converts from the 0-indexed wire value.
	FindPage(ctx context.Context, filter Filter, page, limit int64) ([]Plan, int64, error)

	// ExistsByCode reports whether the owner already has a plan with the
	// given code.
	ExistsByCode(ctx context.Context, ownerID, code string) (bool, error)
}
