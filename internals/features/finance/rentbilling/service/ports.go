package service

import (
	"rentalku_backend/internals/features/finance/rentbilling/model"
)

// DocumentRenderer turns a persisted invoice into a deliverable document
// (PDF in production). Rendering lives outside this service.
type DocumentRenderer interface {
	Render(invoice model.Invoice) ([]byte, error)
}

// DocumentSender delivers a rendered document to the tenant.
type DocumentSender interface {
	Send(document []byte, recipientEmail string) error
}
