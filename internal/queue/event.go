// Package queue defines message payloads exchanged over the message broker.
package queue

// GreetingQueueName is the durable queue carrying GreetingIssuedEvent.
const GreetingQueueName = "greeting.issued"

// GreetingIssuedEvent is published each time the hello endpoint numbers a
// greeting.  It carries everything a consumer needs to log or count it.
type GreetingIssuedEvent struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	IssuedAt string `json:"issued_at"`
}
