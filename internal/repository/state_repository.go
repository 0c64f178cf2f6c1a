package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/states-directory/internal/database"
	"github.com/iliyamo/states-directory/internal/model"
)

// Querier is the slice of *sql.DB the state directory needs.  Every call
// borrows one pooled connection which is returned once the rows are closed.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const stateColumns = "id, name, abbreviation, capital"

// StateRepo serves the read-only states reference table.  It holds no
// mutable state and is safe for concurrent use.
type StateRepo struct {
	db      Querier
	dialect database.Dialect

	listSQL   string
	searchSQL string
	getSQL    string
}

// NewStateRepo prepares the query templates for the given dialect.  User
// input never reaches the templates; it is always passed as a bound argument.
func NewStateRepo(db Querier, dialect database.Dialect) *StateRepo {
	match := strings.Join([]string{
		dialect.ILike("name", 1),
		dialect.ILike("abbreviation", 1),
		dialect.ILike("capital", 1),
	}, " OR ")

	return &StateRepo{
		db:        db,
		dialect:   dialect,
		listSQL:   "SELECT " + stateColumns + " FROM states ORDER BY name ASC",
		searchSQL: "SELECT " + stateColumns + " FROM states WHERE " + match + " ORDER BY name ASC",
		getSQL:    "SELECT " + stateColumns + " FROM states WHERE id = " + dialect.Placeholder(1),
	}
}

// List returns every state ordered by name.  A non-empty search restricts
// the result to states whose name, abbreviation or capital contains the term,
// ignoring case.  The result is never nil.
func (r *StateRepo) List(ctx context.Context, search string) ([]model.State, error) {
	if search == "" {
		return r.query(ctx, "list", r.listSQL)
	}
	pattern := ContainsPattern(search)
	args := []any{pattern}
	if r.dialect.Rebinds() {
		args = []any{pattern, pattern, pattern}
	}
	return r.query(ctx, "list", r.searchSQL, args...)
}

// GetByID returns the state whose id equals the given token.  The token is
// bound as-is; the store decides how it compares against the id column.
func (r *StateRepo) GetByID(ctx context.Context, id string) (model.State, error) {
	states, err := r.query(ctx, "get", r.getSQL, id)
	if err != nil {
		return model.State{}, err
	}
	if len(states) == 0 {
		return model.State{}, ErrStateNotFound
	}
	return states[0], nil
}

func (r *StateRepo) query(ctx context.Context, op, q string, args ...any) ([]model.State, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, &DataSourceError{Op: op, Err: err}
	}
	defer rows.Close()

	out := make([]model.State, 0, 50)
	for rows.Next() {
		var s model.State
		if err := rows.Scan(&s.ID, &s.Name, &s.Abbreviation, &s.Capital); err != nil {
			return nil, &DataSourceError{Op: op, Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &DataSourceError{Op: op, Err: err}
	}
	return out, nil
}

var likeMeta = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern wraps term in LIKE wildcards so it matches as a substring.
// LIKE metacharacters inside term are escaped and match literally.
func ContainsPattern(term string) string {
	return "%" + likeMeta.Replace(term) + "%"
}
