package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates QR codes printed on invoices
type QRCodeService interface {
	// GenerateOrderQR returns a PNG QR code encoding the order reference
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the order ID
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
