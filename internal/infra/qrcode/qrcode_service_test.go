package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel))
		})
	}
}

func TestNew_UsesDefaultsWithoutConfig(t *testing.T) {
	svc := New(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultQRSize, svc.size)
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	qrBytes, err := svc.GenerateOrderQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), len(pngMagic))
	assert.Equal(t, pngMagic, qrBytes[:4])
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(128, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: orderQRType})
	require.NoError(t, err)

	got, err := svc.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"bad uuid", `{"order_id":"nope","type":"order"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParseOrderQR(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
