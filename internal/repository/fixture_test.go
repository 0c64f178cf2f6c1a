package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/states-directory/internal/model"
)

var seedStates = []model.State{
	{ID: 1, Name: "Alabama", Abbreviation: "AL", Capital: "Montgomery"},
	{ID: 2, Name: "Alaska", Abbreviation: "AK", Capital: "Juneau"},
	{ID: 3, Name: "Arizona", Abbreviation: "AZ", Capital: "Phoenix"},
	{ID: 4, Name: "Arkansas", Abbreviation: "AR", Capital: "Little Rock"},
	{ID: 5, Name: "California", Abbreviation: "CA", Capital: "Sacramento"},
	{ID: 6, Name: "Colorado", Abbreviation: "CO", Capital: "Denver"},
	{ID: 7, Name: "Connecticut", Abbreviation: "CT", Capital: "Hartford"},
	{ID: 8, Name: "Delaware", Abbreviation: "DE", Capital: "Dover"},
	{ID: 9, Name: "Florida", Abbreviation: "FL", Capital: "Tallahassee"},
	{ID: 10, Name: "Georgia", Abbreviation: "GA", Capital: "Atlanta"},
	{ID: 11, Name: "Hawaii", Abbreviation: "HI", Capital: "Honolulu"},
	{ID: 12, Name: "Idaho", Abbreviation: "ID", Capital: "Boise"},
	{ID: 13, Name: "Illinois", Abbreviation: "IL", Capital: "Springfield"},
	{ID: 14, Name: "Indiana", Abbreviation: "IN", Capital: "Indianapolis"},
	{ID: 15, Name: "Iowa", Abbreviation: "IA", Capital: "Des Moines"},
	{ID: 16, Name: "Kansas", Abbreviation: "KS", Capital: "Topeka"},
	{ID: 17, Name: "Kentucky", Abbreviation: "KY", Capital: "Frankfort"},
	{ID: 18, Name: "Louisiana", Abbreviation: "LA", Capital: "Baton Rouge"},
	{ID: 19, Name: "Maine", Abbreviation: "ME", Capital: "Augusta"},
	{ID: 20, Name: "Maryland", Abbreviation: "MD", Capital: "Annapolis"},
	{ID: 21, Name: "Massachusetts", Abbreviation: "MA", Capital: "Boston"},
	{ID: 22, Name: "Michigan", Abbreviation: "MI", Capital: "Lansing"},
	{ID: 23, Name: "Minnesota", Abbreviation: "MN", Capital: "Saint Paul"},
	{ID: 24, Name: "Mississippi", Abbreviation: "MS", Capital: "Jackson"},
	{ID: 25, Name: "Missouri", Abbreviation: "MO", Capital: "Jefferson City"},
	{ID: 26, Name: "Montana", Abbreviation: "MT", Capital: "Helena"},
	{ID: 27, Name: "Nebraska", Abbreviation: "NE", Capital: "Lincoln"},
	{ID: 28, Name: "Nevada", Abbreviation: "NV", Capital: "Carson City"},
	{ID: 29, Name: "New Hampshire", Abbreviation: "NH", Capital: "Concord"},
	{ID: 30, Name: "New Jersey", Abbreviation: "NJ", Capital: "Trenton"},
	{ID: 31, Name: "New Mexico", Abbreviation: "NM", Capital: "Santa Fe"},
	{ID: 32, Name: "New York", Abbreviation: "NY", Capital: "Albany"},
	{ID: 33, Name: "North Carolina", Abbreviation: "NC", Capital: "Raleigh"},
	{ID: 34, Name: "North Dakota", Abbreviation: "ND", Capital: "Bismarck"},
	{ID: 35, Name: "Ohio", Abbreviation: "OH", Capital: "Columbus"},
	{ID: 36, Name: "Oklahoma", Abbreviation: "OK", Capital: "Oklahoma City"},
	{ID: 37, Name: "Oregon", Abbreviation: "OR", Capital: "Salem"},
	{ID: 38, Name: "Pennsylvania", Abbreviation: "PA", Capital: "Harrisburg"},
	{ID: 39, Name: "Rhode Island", Abbreviation: "RI", Capital: "Providence"},
	{ID: 40, Name: "South Carolina", Abbreviation: "SC", Capital: "Columbia"},
	{ID: 41, Name: "South Dakota", Abbreviation: "SD", Capital: "Pierre"},
	{ID: 42, Name: "Tennessee", Abbreviation: "TN", Capital: "Nashville"},
	{ID: 43, Name: "Texas", Abbreviation: "TX", Capital: "Austin"},
	{ID: 44, Name: "Utah", Abbreviation: "UT", Capital: "Salt Lake City"},
	{ID: 45, Name: "Vermont", Abbreviation: "VT", Capital: "Montpelier"},
	{ID: 46, Name: "Virginia", Abbreviation: "VA", Capital: "Richmond"},
	{ID: 47, Name: "Washington", Abbreviation: "WA", Capital: "Olympia"},
	{ID: 48, Name: "West Virginia", Abbreviation: "WV", Capital: "Charleston"},
	{ID: 49, Name: "Wisconsin", Abbreviation: "WI", Capital: "Madison"},
	{ID: 50, Name: "Wyoming", Abbreviation: "WY", Capital: "Cheyenne"},
}

// openSeededSQLite returns an in-memory database holding seedStates.  Rows
// are inserted in reverse so ordering has to come from the query.
func openSeededSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	// every connection would get its own empty in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE states (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		abbreviation TEXT NOT NULL UNIQUE,
		capital TEXT NOT NULL
	)`)
	require.NoError(t, err)

	for i := len(seedStates) - 1; i >= 0; i-- {
		s := seedStates[i]
		_, err := db.Exec("INSERT INTO states (id, name, abbreviation, capital) VALUES (?, ?, ?, ?)",
			s.ID, s.Name, s.Abbreviation, s.Capital)
		require.NoError(t, err)
	}
	return db
}
