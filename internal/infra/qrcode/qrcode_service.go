package qrcode

import (
	"net/url"
	"strings"

	"deliwer/config"
	"deliwer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://deliwer.com/join"
	referralParam  = "ref"
)

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds the referral QR service from config. A nil config
// falls back to 256px medium-recovery codes.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	svc := &qrcodeService{
		size:    defaultSize,
		level:   qrcode.Medium,
		baseURL: defaultBaseURL,
	}

	if cfg == nil || cfg.QRCode == nil {
		return svc
	}
	if cfg.QRCode.Size > 0 {
		svc.size = cfg.QRCode.Size
	}
	if cfg.QRCode.BaseURL != "" {
		svc.baseURL = cfg.QRCode.BaseURL
	}
	svc.level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)

	return svc
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ReferralURL appends the affiliate ID as the ref query parameter.
func (s *qrcodeService) ReferralURL(affiliateID uuid.UUID) string {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return s.baseURL + "?" + referralParam + "=" + affiliateID.String()
	}

	q := u.Query()
	q.Set(referralParam, affiliateID.String())
	u.RawQuery = q.Encode()

	return u.String()
}

// GenerateReferralQR renders the referral URL as a PNG.
func (s *qrcodeService) GenerateReferralQR(affiliateID uuid.UUID) ([]byte, error) {
	png, err := qrcode.Encode(s.ReferralURL(affiliateID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode referral QR")
	}

	return png, nil
}

// ParseReferralQR reads the affiliate ID back out of a scanned referral URL.
func (s *qrcodeService) ParseReferralQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse referral URL")
	}

	ref := u.Query().Get(referralParam)
	if ref == "" {
		return uuid.Nil, errors.New("referral URL has no ref parameter")
	}

	affiliateID, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse affiliate ID")
	}

	return affiliateID, nil
}
