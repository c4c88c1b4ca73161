package model

// Event is anything the kafka gateway can publish with a message key.
type Event interface {
	GetId() string
}
