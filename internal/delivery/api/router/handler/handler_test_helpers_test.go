package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"deliwer/config"
	"deliwer/internal/delivery/api/validator"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/infra/persistence/memory"
	"deliwer/internal/infra/qrcode"
	"deliwer/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) PublishImpactEvent(context.Context, *service.ImpactEvent) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

type errorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type testResponse struct {
	Status int
	Header map[string][]string
	Body   []byte
	Data   json.RawMessage
	Error  *errorBody
}

// decode unmarshals the data envelope into v.
func (r *testResponse) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v))
}

type handlers struct {
	repos         repository.RepositoryFactory
	tradeIn       *TradeInHandler
	order         *OrderHandler
	affiliate     *AffiliateHandler
	leaderboard   *LeaderboardHandler
	challenge     *ChallengeHandler
	analytics     *AnalyticsHandler
	campaign      *CampaignHandler
	user          *UserHandler
	droughtRegion *DroughtRegionHandler
}

func newHandlers() *handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Campaign: config.DefaultCampaign()}
	metrics := service.NoopMetrics{}
	publisher := nopPublisher{}

	store := memory.NewStore()
	repos := memory.NewRepositoryFactory(store)
	txManager := memory.NewTransactionManager(store)

	return &handlers{
		repos: repos,
		tradeIn: NewTradeInHandler(TradeInHandlerParams{
			TradeInUC: impl.NewTradeInService(impl.TradeInServiceParams{
				TxManager: txManager, TradeInRepo: repos.NewTradeInRepository(), Metrics: metrics, Logger: logger,
			}),
			Logger: logger,
		}),
		order: NewOrderHandler(OrderHandlerParams{
			OrderUC: impl.NewOrderService(impl.OrderServiceParams{
				TxManager: txManager, OrderRepo: repos.NewOrderRepository(), Publisher: publisher, Metrics: metrics, Config: cfg, Logger: logger,
			}),
			Logger: logger,
		}),
		affiliate: NewAffiliateHandler(AffiliateHandlerParams{
			AffiliateUC: impl.NewAffiliateService(impl.AffiliateServiceParams{
				AffiliateRepo: repos.NewAffiliateRepository(), QRCodeService: qrcode.NewQRCodeService(cfg), Metrics: metrics, Config: cfg, Logger: logger,
			}),
			Logger: logger,
		}),
		leaderboard: NewLeaderboardHandler(LeaderboardHandlerParams{
			LeaderboardUC: impl.NewLeaderboardService(impl.LeaderboardServiceParams{
				TxManager: txManager, LeaderboardRepo: repos.NewLeaderboardRepository(), Logger: logger,
			}),
			Logger: logger,
		}),
		challenge: NewChallengeHandler(ChallengeHandlerParams{
			ChallengeUC: impl.NewChallengeService(impl.ChallengeServiceParams{
				TxManager: txManager, ChallengeRepo: repos.NewChallengeRepository(), Publisher: publisher, Metrics: metrics, Config: cfg, Logger: logger,
			}),
			Logger: logger,
		}),
		analytics: NewAnalyticsHandler(AnalyticsHandlerParams{
			AnalyticsUC: impl.NewAnalyticsService(impl.AnalyticsServiceParams{
				UserRepo: repos.NewUserRepository(), LeaderboardRepo: repos.NewLeaderboardRepository(),
				ChallengeRepo: repos.NewChallengeRepository(), DroughtRegionRepo: repos.NewDroughtRegionRepository(),
				Config: cfg, Logger: logger,
			}),
			Logger: logger,
		}),
		campaign: NewCampaignHandler(CampaignHandlerParams{
			CampaignUC: impl.NewCampaignService(impl.CampaignServiceParams{
				TxManager: txManager, Metrics: metrics, Logger: logger,
			}),
			Logger: logger,
		}),
		user: NewUserHandler(UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				TxManager: txManager, UserRepo: repos.NewUserRepository(), Metrics: metrics, Logger: logger,
			}),
			Logger: logger,
		}),
		droughtRegion: NewDroughtRegionHandler(DroughtRegionHandlerParams{
			DroughtRegionUC: impl.NewDroughtRegionService(impl.DroughtRegionServiceParams{
				DroughtRegionRepo: repos.NewDroughtRegionRepository(), Logger: logger,
			}),
			Logger: logger,
		}),
	}
}

// call runs h against a request. params are name/value pairs of path params.
func call(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *testResponse {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	require.NoError(t, h(c))

	resp := &testResponse{Status: rec.Code, Header: rec.Header(), Body: rec.Body.Bytes()}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var env struct {
			Data  json.RawMessage `json:"data"`
			Error *errorBody      `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		resp.Data = env.Data
		resp.Error = env.Error
	}

	return resp
}

// createUser registers a hero through the handler and returns its id.
func (h *handlers) createUser(t *testing.T, username, country string) string {
	t.Helper()

	resp := call(t, h.user.RegisterUser, "POST", "/api/users",
		`{"username":"`+username+`","email":"`+username+`@example.com","country":"`+country+`"}`)
	require.Equal(t, 201, resp.Status)

	var user struct {
		ID string `json:"id"`
	}
	resp.decode(t, &user)

	return user.ID
}
