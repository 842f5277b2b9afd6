package usecase

import (
	"context"
	"time"
)

// AdminToken is an issued back-office access token.
type AdminToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AdminUsecase defines the interface for back-office authentication
type AdminUsecase interface {
	Login(ctx context.Context, username, password string) (*AdminToken, error)
}
