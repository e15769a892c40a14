package service

// QRCodeService generates share QR codes for portfolio items.
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at the public page of
	// one portfolio item.
	GenerateShareQR(itemID string) ([]byte, error)
}
