// Package greeting holds the static greeting catalogue and the counter that
// numbers hello responses.
package greeting

import (
	"fmt"

	"github.com/iliyamo/states-directory/internal/model"
)

// DefaultName is used when the hello endpoint receives no name.
const DefaultName = "World"

var catalog = []model.Greeting{
	{ID: 1, Language: "English", Message: "Hello, World!"},
	{ID: 2, Language: "Spanish", Message: "Hola, Mundo!"},
	{ID: 3, Language: "French", Message: "Bonjour, le Monde!"},
	{ID: 4, Language: "German", Message: "Hallo, Welt!"},
	{ID: 5, Language: "Italian", Message: "Ciao, Mondo!"},
}

// All returns a copy of the multilingual greeting list.
func All() []model.Greeting {
	out := make([]model.Greeting, len(catalog))
	copy(out, catalog)
	return out
}

// Hello formats the personalised greeting.  name is used verbatim.
func Hello(name string) string {
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf("Hello, %s!", name)
}
