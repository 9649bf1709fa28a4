package qrcode

import (
	"encoding/json"
	"net/url"

	"ledger/config"
	"ledger/internal/domain/entity"
	"ledger/internal/domain/service"
	"ledger/internal/errors"

	lru "github.com/hashicorp/golang-lru"
	"github.com/skip2/go-qrcode"
)

const (
	payloadType = "event_code"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
	// rendered PNGs keyed by event code id; a code's payload never changes
	cache *lru.Cache
}

// Payload is the JSON encoded into an event code QR image.
type Payload struct {
	Type      string `json:"type"`
	Code      string `json:"code"`
	ClaimID   string `json:"claim_id"`
	Location  string `json:"location"`
	ExpiresAt int64  `json:"expires_at"`
	RedeemURL string `json:"redeem_url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	cacheSize := qrCfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 1
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create QR cache")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              qrCfg.BaseURL,
		cache:                cache,
	}, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EventCodePNG renders the redemption payload of the code as a PNG.
func (s *qrcodeService) EventCodePNG(code *entity.EventCode, claim *entity.LocationClaim) ([]byte, error) {
	if cached, ok := s.cache.Get(code.ID); ok {
		if png, ok := cached.([]byte); ok {
			return png, nil
		}
	}

	jsonData, err := json.Marshal(s.payload(code, claim))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	s.cache.Add(code.ID, pngBytes)

	return pngBytes, nil
}

func (s *qrcodeService) payload(code *entity.EventCode, claim *entity.LocationClaim) Payload {
	p := Payload{
		Type:      payloadType,
		Code:      code.Code,
		ClaimID:   code.ClaimID.String(),
		Location:  claim.Location,
		ExpiresAt: code.ExpiresAt.Unix(),
	}

	if s.baseURL != "" {
		p.RedeemURL = s.baseURL + "?" + url.Values{"code": {code.Code}}.Encode()
	}

	return p
}

// ParsePayload decodes the JSON carried by an event code QR image.
func ParsePayload(data string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if p.Type != payloadType {
		return nil, errors.Errorf("invalid QR code type: %s", p.Type)
	}

	return &p, nil
}
