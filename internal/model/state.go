package model

// State is one row of the read-only `states` reference table.  Rows are
// seeded out of band; the service never writes them.
//
// Fields:
//  ID           – primary key, stable across deployments.
//  Name         – full state name, unique.
//  Abbreviation – two-letter postal code, unique.
//  Capital      – capital city.
type State struct {
	ID           int64  `json:"id"`           // states.id
	Name         string `json:"name"`         // states.name
	Abbreviation string `json:"abbreviation"` // states.abbreviation
	Capital      string `json:"capital"`      // states.capital
}
