package domain

import "context"

// Contribution is one recorded monthly payment. User holds the member's
// name copied at creation time, not a reference to the User record; a
// rename reconciles the copy, a delete leaves it untouched.
type Contribution struct {
	ID     string
	User   string
	Amount float64
	Month  string
	Year   string
}

// MonthNames are the twelve calendar month names offered by the entry form.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ContributionRepository defines persistence operations for contributions.
// There is no update operation: entries are an append/delete ledger and an
// amendment is a delete followed by a re-create.
type ContributionRepository interface {
	List(ctx context.Context) ([]Contribution, error)
	Create(ctx context.Context, c *Contribution) error
	Delete(ctx context.Context, id string) error
	// RenameUser rewrites the denormalized user name on every contribution
	// recorded under oldName and returns the number of records touched.
	RenameUser(ctx context.Context, oldName, newName string) (int64, error)
}
