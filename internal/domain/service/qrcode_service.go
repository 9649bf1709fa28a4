package service

import (
	"ledger/internal/domain/entity"
)

// QRCodeService renders event codes as QR images.
type QRCodeService interface {
	// EventCodePNG renders the redemption payload of the code as a PNG.
	EventCodePNG(code *entity.EventCode, claim *entity.LocationClaim) ([]byte, error)
}
