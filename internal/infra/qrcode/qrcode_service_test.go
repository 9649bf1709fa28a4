package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"ledger/config"
	"ledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, level string) *qrcodeService {
	t.Helper()

	svc, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 128,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://ledger.example/redeem",
		CacheSize:            2,
	}})
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func fixture() (*entity.EventCode, *entity.LocationClaim) {
	claim := &entity.LocationClaim{ID: uuid.New(), Location: "Springfield"}
	code := &entity.EventCode{
		ID:        uuid.New(),
		ClaimID:   claim.ID,
		Code:      "048213",
		ExpiresAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	return code, claim
}

func TestParseRecoveryLevel(t *testing.T) {
	assert.Equal(t, qrcode.Low, parseRecoveryLevel("L"))
	assert.Equal(t, qrcode.Medium, parseRecoveryLevel("M"))
	assert.Equal(t, qrcode.High, parseRecoveryLevel("Q"))
	assert.Equal(t, qrcode.Highest, parseRecoveryLevel("H"))
	assert.Equal(t, qrcode.Medium, parseRecoveryLevel("invalid"))
}

func TestQRCodeService_EventCodePNG(t *testing.T) {
	svc := newService(t, "M")
	code, claim := fixture()

	png, err := svc.EventCodePNG(code, claim)
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	assert.Equal(t, 1, svc.cache.Len())

	again, err := svc.EventCodePNG(code, claim)
	require.NoError(t, err)
	assert.Equal(t, png, again)
}

func TestQRCodeService_CacheEvicts(t *testing.T) {
	svc := newService(t, "L")

	for range 3 {
		code, claim := fixture()
		_, err := svc.EventCodePNG(code, claim)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, svc.cache.Len())
}

func TestPayloadRoundTrip(t *testing.T) {
	svc := newService(t, "M")
	code, claim := fixture()

	raw, err := json.Marshal(svc.payload(code, claim))
	require.NoError(t, err)

	parsed, err := ParsePayload(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "048213", parsed.Code)
	assert.Equal(t, claim.ID.String(), parsed.ClaimID)
	assert.Equal(t, "https://ledger.example/redeem?code=048213", parsed.RedeemURL)
}

func TestParsePayload_Invalid(t *testing.T) {
	_, err := ParsePayload(`{"type":"subscription"}`)
	require.Error(t, err)

	_, err = ParsePayload("not json")
	require.Error(t, err)
}
