package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses affiliate referral QR codes.
type QRCodeService interface {
	// GenerateReferralQR returns a PNG encoding the affiliate's referral link.
	GenerateReferralQR(affiliateID uuid.UUID) ([]byte, error)

	// ReferralURL returns the link encoded by GenerateReferralQR.
	ReferralURL(affiliateID uuid.UUID) string

	// ParseReferralQR extracts the affiliate ID from QR payload data.
	ParseReferralQR(qrData string) (uuid.UUID, error)
}
