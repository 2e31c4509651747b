package broker

// Message is a single broker entry. It stays pending until acknowledged.
type Message interface {
	ID() string
	Body() string
	Ack() error
}
