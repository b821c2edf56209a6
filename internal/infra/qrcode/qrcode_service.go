package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"localguide/config"
	"localguide/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	landmarkPrefix = "/landmarks/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig is the Fx constructor; a missing qrcode section falls back to defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateLandmarkQR encodes the landmark's public URL as a PNG QR code.
func (s *qrcodeService) GenerateLandmarkQR(landmarkID string) ([]byte, error) {
	if landmarkID == "" {
		return nil, fmt.Errorf("landmark ID is required")
	}

	qrCode, err := qrcode.New(s.landmarkURL(landmarkID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func (s *qrcodeService) landmarkURL(landmarkID string) string {
	return s.baseURL + landmarkPrefix + url.PathEscape(landmarkID)
}
