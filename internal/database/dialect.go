package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the SQL differences the read path cares about: how bound
// parameters are written and how a case-insensitive LIKE is expressed.
type Dialect struct {
	Name       string
	DriverName string // name registered with database/sql

	// numbered placeholders ($1, $2, ...) rather than ?
	numbered bool
	// native ILIKE operator; otherwise LOWER(col) LIKE LOWER(param)
	ilike bool
	// explicit ESCAPE clause, for engines without a default escape character
	escape string
}

var (
	Postgres = Dialect{Name: "postgres", DriverName: "pgx", numbered: true, ilike: true}
	MySQL    = Dialect{Name: "mysql", DriverName: "mysql"}
	SQLite   = Dialect{Name: "sqlite3", DriverName: "sqlite3", escape: ` ESCAPE '\'`}
)

// DialectFor resolves a DB_DRIVER value.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Placeholder returns the marker for the n-th (1-based) bound parameter.
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// ILike renders "column matches param, ignoring case".  Backslash escapes
// LIKE metacharacters in the bound value on every dialect.  With numbered
// placeholders the same parameter can be referenced repeatedly, so callers
// must check Rebinds to know whether to pass the value once per use.
func (d Dialect) ILike(column string, n int) string {
	if d.ilike {
		return column + " ILIKE " + d.Placeholder(n) + d.escape
	}
	return "LOWER(" + column + ") LIKE LOWER(" + d.Placeholder(n) + ")" + d.escape
}

// Rebinds reports whether a parameter referenced k times needs k arguments.
func (d Dialect) Rebinds() bool { return !d.numbered }
