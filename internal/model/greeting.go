package model

// Greeting is an entry of the static multilingual greeting list.
type Greeting struct {
	ID       int    `json:"id"`
	Language string `json:"language"`
	Message  string `json:"message"`
}

// HelloGreeting is the response of the hello endpoint.  ID is the counter
// value assigned to this greeting.
type HelloGreeting struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
