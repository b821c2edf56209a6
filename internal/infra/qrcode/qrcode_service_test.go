package qrcode

import (
	"testing"

	"localguide/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://guide.example.com"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: testBaseURL},
	}))
}

func TestQRCodeService_GenerateLandmarkQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateLandmarkQR("senso-ji")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateLandmarkQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateLandmarkQR("")
	assert.Error(t, err)
	assert.Nil(t, qrBytes)
}

func TestQRCodeService_LandmarkURL(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL+"/").(*qrcodeService)

	assert.Equal(t, testBaseURL+"/landmarks/senso-ji", service.landmarkURL("senso-ji"))
	assert.Equal(t, testBaseURL+"/landmarks/meiji%20shrine", service.landmarkURL("meiji shrine"))
	assert.Equal(t, testBaseURL+"/landmarks/a%2Fb", service.landmarkURL("a/b"))
}
