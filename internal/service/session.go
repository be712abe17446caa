package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/internal/state"
	"investment-advisor/pkg/cache"
	"investment-advisor/pkg/common"
	"investment-advisor/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoRecommendation   = errors.New("session has no recommendation")
)

// SessionService keeps one wizard state per logged-in client. State only
// changes through state.Reduce.
type SessionService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (state.AppState, error)
	Dispatch(ctx context.Context, sessionID string, actions ...state.Action) (state.AppState, error)
	Analyze(ctx context.Context, sessionID string, profile dto.InvestmentProfile) (*dto.AnalysisResult, error)
	Historical(ctx context.Context, sessionID string) (dto.HistoricalData, error)
}

type sessionService struct {
	cfg                   *config.Config
	log                   *logger.Logger
	store                 cache.Cache
	recommendationService RecommendationService
	historicalService     HistoricalService
	mu                    sync.Mutex
}

func NewSessionService(
	cfg *config.Config,
	log *logger.Logger,
	store cache.Cache,
	recommendationService RecommendationService,
	historicalService HistoricalService,
) SessionService {
	return &sessionService{
		cfg:                   cfg,
		log:                   log,
		store:                 store,
		recommendationService: recommendationService,
		historicalService:     historicalService,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf(common.KEY_SESSION, id)
}

// Login checks the configured demo credentials and opens a session.
func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	emailOK := strings.EqualFold(strings.TrimSpace(req.Email), s.cfg.Auth.Email)
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Auth.Password)) == 1
	if !emailOK || !passwordOK {
		s.log.WarnContext(ctx, "Login rejected", logger.StringField("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	user := dto.User{
		ID:    uuid.NewString(),
		Email: s.cfg.Auth.Email,
		Name:  s.cfg.Auth.Name,
	}
	sessionID := uuid.NewString()

	st := state.Reduce(state.Initial(s.cfg.FX.FallbackRate), state.SetUser{User: &user})
	s.store.Set(sessionKey(sessionID), st, cache.DefaultExpiration)

	s.log.InfoContext(ctx, "Session opened", logger.StringField("session_id", sessionID))
	return &dto.LoginResponse{SessionID: sessionID, User: user}, nil
}

func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := cache.GetAs[state.AppState](s.store, sessionKey(sessionID)); !ok {
		return ErrSessionNotFound
	}
	s.store.Delete(sessionKey(sessionID))
	s.log.InfoContext(ctx, "Session closed", logger.StringField("session_id", sessionID))
	return nil
}

func (s *sessionService) Get(_ context.Context, sessionID string) (state.AppState, error) {
	st, ok := cache.GetAs[state.AppState](s.store, sessionKey(sessionID))
	if !ok {
		return state.AppState{}, ErrSessionNotFound
	}
	return st, nil
}

// Dispatch applies actions to the session atomically and refreshes its
// expiry.
func (s *sessionService) Dispatch(_ context.Context, sessionID string, actions ...state.Action) (state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := cache.GetAs[state.AppState](s.store, sessionKey(sessionID))
	if !ok {
		return state.AppState{}, ErrSessionNotFound
	}
	st = state.Reduce(st, actions...)
	s.store.Set(sessionKey(sessionID), st, cache.DefaultExpiration)
	return st, nil
}

// Analyze runs the recommendation pipeline for the session and stores the
// profile, recommendation and exchange rate it produced.
func (s *sessionService) Analyze(ctx context.Context, sessionID string, profile dto.InvestmentProfile) (*dto.AnalysisResult, error) {
	if _, err := s.Dispatch(ctx, sessionID, state.SetLoading{Loading: true}); err != nil {
		return nil, err
	}

	result := s.recommendationService.Analyze(ctx, profile)

	_, err := s.Dispatch(ctx, sessionID,
		state.SetProfile{Profile: profile},
		state.SetRecommendation{Recommendation: result.Recommendation},
		state.SetExchangeRate{Rate: result.ExchangeRate},
		state.SetLoading{Loading: false},
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sessionService) Historical(ctx context.Context, sessionID string) (dto.HistoricalData, error) {
	st, err := s.Get(ctx, sessionID)
	if err != nil {
		return dto.HistoricalData{}, err
	}
	if st.Recommendation == nil {
		return dto.HistoricalData{}, ErrNoRecommendation
	}
	return s.historicalService.GenerateSeries(st.Recommendation.AssetAllocation), nil
}
