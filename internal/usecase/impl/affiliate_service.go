package impl

import (
	"context"
	"log/slog"
	"strings"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type affiliateService struct {
	affiliateRepo  repository.AffiliateRepository
	qrcodeService  service.QRCodeService
	metrics        service.MetricsRecorder
	commissionRate float64
	logger         *slog.Logger
}

// AffiliateServiceParams holds dependencies for AffiliateService, injected by Fx.
type AffiliateServiceParams struct {
	fx.In

	AffiliateRepo repository.AffiliateRepository
	QRCodeService service.QRCodeService
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAffiliateService creates a new affiliate service
func NewAffiliateService(params AffiliateServiceParams) usecase.AffiliateUsecase {
	return &affiliateService{
		affiliateRepo:  params.AffiliateRepo,
		qrcodeService:  params.QRCodeService,
		metrics:        params.Metrics,
		commissionRate: params.Config.Campaign.AffiliateCommission,
		logger:         params.Logger,
	}
}

// RegisterAffiliate creates an active partner. Duplicate emails conflict.
func (srv *affiliateService) RegisterAffiliate(ctx context.Context, input *usecase.RegisterAffiliateInput) (*entity.Affiliate, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown affiliate type")
	}

	affiliate := &entity.Affiliate{
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:          strings.TrimSpace(input.Phone),
		Country:        strings.TrimSpace(input.Country),
		City:           strings.TrimSpace(input.City),
		Type:           input.Type,
		CommissionRate: srv.commissionRate,
		CommunitySize:  input.CommunitySize,
		IsActive:       true,
	}

	if err := srv.affiliateRepo.Create(ctx, affiliate); err != nil {
		if errors.Is(err, repository.ErrDuplicateAffiliate) {
			return nil, errors.Wrap(domainerrors.ErrAffiliateAlreadyExists, "failed to register affiliate")
		}

		return nil, errors.Wrap(err, "failed to register affiliate")
	}

	srv.metrics.AffiliateRegistered(string(affiliate.Type))
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Affiliate registered",
		slog.String("affiliate_id", affiliate.ID.String()),
		slog.String("type", string(affiliate.Type)),
	)

	return affiliate, nil
}

// ListAffiliates returns partners, optionally for one country
func (srv *affiliateService) ListAffiliates(ctx context.Context, country string) ([]*entity.Affiliate, error) {
	affiliates, err := srv.affiliateRepo.FindAll(ctx, strings.TrimSpace(country))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list affiliates")
	}

	return affiliates, nil
}

// GetReferralQR renders the partner's referral link as a QR code
func (srv *affiliateService) GetReferralQR(ctx context.Context, affiliateID uuid.UUID) ([]byte, error) {
	affiliate, err := srv.findAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateReferralQR(affiliate.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

// UpdateNFTRewards overwrites the partner's NFT counters
func (srv *affiliateService) UpdateNFTRewards(ctx context.Context, affiliateID uuid.UUID, rewards entity.NFTRewards) (*entity.Affiliate, error) {
	if rewards.Earned < 0 || rewards.Distributed < 0 || rewards.CommunityImpact < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("NFT rewards must not be negative")
	}
	if rewards.Distributed > rewards.Earned {
		return nil, domainerrors.ErrValidationFailed.WithDetails("distributed NFTs cannot exceed earned NFTs")
	}

	affiliate, err := srv.affiliateRepo.UpdateNFTRewards(ctx, affiliateID, rewards)
	if errors.Is(err, repository.ErrAffiliateNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAffiliateNotFound, "failed to update NFT rewards")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update NFT rewards")
	}

	return affiliate, nil
}

func (srv *affiliateService) findAffiliate(ctx context.Context, affiliateID uuid.UUID) (*entity.Affiliate, error) {
	affiliate, err := srv.affiliateRepo.FindByID(ctx, affiliateID)
	if errors.Is(err, repository.ErrAffiliateNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAffiliateNotFound, "failed to find affiliate")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find affiliate")
	}

	return affiliate, nil
}
