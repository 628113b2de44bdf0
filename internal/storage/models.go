package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// ContactMessage is a contact form submission kept in the local inbox.
type ContactMessage struct {
	ID         string    `json:"id" yaml:"id"`
	ReceivedAt time.Time `json:"received_at" yaml:"received_at"`
	Fullname   string    `json:"fullname" yaml:"fullname"`
	Email      string    `json:"email" yaml:"email"`
	Message    string    `json:"message" yaml:"message"`
	RemoteAddr string    `json:"remote_addr" yaml:"remote_addr"`
}
