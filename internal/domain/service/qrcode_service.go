package service

// QRCodeService renders share QR codes for catalog pages.
type QRCodeService interface {
	// GenerateLandmarkQR generates a PNG QR code pointing at the landmark's public page
	GenerateLandmarkQR(landmarkID string) ([]byte, error)
}
