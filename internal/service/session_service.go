// FILE: internal/service/session_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
	"fintech-hub-client/internal/mapper"
	"fintech-hub-client/internal/pkg/logger"
	"fintech-hub-client/pkg/api"
	"fintech-hub-client/pkg/events"
	"fintech-hub-client/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys for the persisted session.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

type SessionState string

const (
	// SessionInitializing: persisted state has not been read yet; identity
	// is unknown, not "logged out".
	SessionInitializing  SessionState = "initializing"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// RegisterDraft carries everything the registration form collects. Optional
// fields left blank are never sent; the remote API distinguishes "not
// provided" from "explicitly empty".
type RegisterDraft struct {
	Email     string
	Password  string
	FullName  string
	Company   string
	Phone     string
	Location  string
	Bio       string
	AvatarUrl string
	Role      string
	Investor  *dto.InvestorDraft
}

// RegisterResult separates the primary outcome from the best-effort investor
// provisioning: Warning is set — and the call still succeeds — when the
// account was created but the investor profile was not.
type RegisterResult struct {
	User    *entity.UserProfile
	Warning error
}

type ISessionService interface {
	Hydrate()
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, draft RegisterDraft) (*RegisterResult, error)
	Logout()
	CurrentUser() *entity.UserProfile
	Token() string
	TokenExpiry() (time.Time, bool)
	Initializing() bool
	Busy() bool
	State() SessionState
}

// sessionService is the single source of truth for "who is signed in".
// It is the sole writer of the session keys in the store; in-memory state
// and persisted state change together or not at all.
type sessionService struct {
	api      *api.Client
	store    store.Store
	bus      *events.Bus
	logger   logger.ILogger
	users    *mapper.UserMapper
	validate *validator.Validate

	mu           sync.RWMutex
	user         *entity.UserProfile
	token        string
	initializing bool
	busy         bool
}

// NewSessionService wires the session manager and installs itself as the API
// client's token source. Call Hydrate before the first read of session state.
func NewSessionService(apiClient *api.Client, st store.Store, bus *events.Bus, sysLogger logger.ILogger) ISessionService {
	s := &sessionService{
		api:          apiClient,
		store:        st,
		bus:          bus,
		logger:       sysLogger,
		users:        mapper.NewUserMapper(),
		validate:     validator.New(),
		initializing: true,
	}
	apiClient.SetTokenSource(s.Token)
	return s
}

// Hydrate restores the persisted session. A stored profile that does not
// parse is deleted and the session stays anonymous; nothing here can fail
// the startup. Runs once — later calls are no-ops.
func (s *sessionService) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initializing {
		return
	}
	defer func() { s.initializing = false }()

	if token, err := s.store.Get(StorageKeyToken); err == nil && token != "" {
		s.token = token
	}

	raw, err := s.store.Get(StorageKeyUser)
	if err != nil {
		return
	}
	var user entity.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		_ = s.store.Delete(StorageKeyUser)
		s.logger.Warn("session", "discarded unparsable stored profile", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.user = &user
}

// Login exchanges credentials for a token, fetches the profile with it, and
// only then commits both to memory and the store. Any failure leaves the
// session exactly as it was before the call.
func (s *sessionService) Login(ctx context.Context, email, password string) error {
	s.setBusy(true)
	defer s.setBusy(false)
	return s.login(ctx, email, password)
}

func (s *sessionService) login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("session", "login failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return err
	}
	if resp.Token == "" {
		return &api.Error{Kind: api.KindMalformedResponse, Message: "token missing from response"}
	}

	raw, err := s.api.Me(ctx, resp.Token)
	if err != nil {
		return err
	}
	profile := s.users.ToProfile(raw)

	if err := s.adopt(resp.Token, profile); err != nil {
		return err
	}

	s.logger.Info("session", "signed in", map[string]interface{}{"email": profile.Email})
	s.publish(ctx, events.TypeSignedIn, map[string]interface{}{
		"user_id": profile.Id,
		"email":   profile.Email,
	})
	return nil
}

// Register creates the account from only the fields actually supplied and
// adopts the returned profile. For investor registrations it additionally
// provisions the investor profile — signing in first when the registration
// response carried no token — and reports a provisioning failure through
// RegisterResult.Warning instead of failing the call.
func (s *sessionService) Register(ctx context.Context, draft RegisterDraft) (*RegisterResult, error) {
	s.setBusy(true)
	defer s.setBusy(false)

	req := dto.RegisterRequest{
		Email:     draft.Email,
		Password:  draft.Password,
		Name:      draft.FullName,
		Company:   draft.Company,
		Phone:     draft.Phone,
		Location:  draft.Location,
		Bio:       draft.Bio,
		AvatarUrl: draft.AvatarUrl,
		Role:      draft.Role,
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	if draft.Investor != nil {
		if err := s.validate.Struct(draft.Investor); err != nil {
			return nil, fmt.Errorf("invalid investor profile: %w", err)
		}
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.logger.Warn("session", "registration failed", map[string]interface{}{
			"email": draft.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	profile := s.users.ToProfile(resp.Profile())
	if profile.Email == "" {
		profile.Email = draft.Email
	}
	if err := s.adopt(resp.Token, profile); err != nil {
		return nil, err
	}

	result := &RegisterResult{User: profile}

	if draft.Role == entity.UserRoleInvestor {
		if warning := s.provisionInvestor(ctx, draft, profile); warning != nil {
			result.Warning = warning
			s.logger.Warn("session", "investor provisioning failed", map[string]interface{}{
				"email": draft.Email,
				"error": warning.Error(),
			})
			s.publish(ctx, events.TypeWarning, map[string]interface{}{
				"reason": api.Message(warning),
			})
		}
	}

	s.logger.Info("session", "registered", map[string]interface{}{
		"email": profile.Email,
		"role":  profile.Role,
	})
	s.publish(ctx, events.TypeRegistered, map[string]interface{}{
		"user_id": profile.Id,
		"email":   profile.Email,
	})
	return result, nil
}

// provisionInvestor is the best-effort secondary step of an investor
// registration. Every failure comes back as a secondary-effect error for the
// caller's warning channel, never as a hard failure.
func (s *sessionService) provisionInvestor(ctx context.Context, draft RegisterDraft, profile *entity.UserProfile) error {
	token := s.Token()
	if token == "" {
		// Registration did not sign us in; exchange the same credentials.
		if err := s.login(ctx, draft.Email, draft.Password); err != nil {
			return &api.Error{Kind: api.KindSecondaryEffect, Message: api.Message(err), Err: err}
		}
		token = s.Token()
	}

	userId := profile.Id
	if userId == "" {
		if current := s.CurrentUser(); current != nil {
			userId = current.Id
		}
	}

	investor := investorFromDraft(draft.Investor, userId, profile)
	if _, err := s.api.CreateInvestor(ctx, token, investor); err != nil {
		return &api.Error{Kind: api.KindSecondaryEffect, Message: api.Message(err), Err: err}
	}
	return nil
}

func investorFromDraft(draft *dto.InvestorDraft, userId string, profile *entity.UserProfile) entity.Investor {
	if draft == nil {
		draft = &dto.InvestorDraft{}
	}
	investor := entity.Investor{
		UserId:              userId,
		LegalName:           draft.LegalName,
		Type:                draft.Type,
		MinCheck:            draft.MinCheck,
		MaxCheck:            draft.MaxCheck,
		PreferredIndustries: draft.PreferredIndustries,
		PreferredStages:     draft.PreferredStages,
		Description:         draft.Description,
		Website:             draft.Website,
		IsVerified:          false,
	}
	if investor.LegalName == "" {
		investor.LegalName = profile.FullName
	}
	if investor.Type == "" {
		investor.Type = entity.InvestorTypeAngel
	}
	if investor.PreferredIndustries == nil {
		investor.PreferredIndustries = []string{}
	}
	if investor.PreferredStages == nil {
		investor.PreferredStages = []string{}
	}
	return investor
}

// Logout clears memory and both storage keys. Synchronous, cannot fail,
// idempotent.
func (s *sessionService) Logout() {
	s.mu.Lock()
	wasSignedIn := s.user != nil || s.token != ""
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	_ = s.store.Delete(StorageKeyToken)
	_ = s.store.Delete(StorageKeyUser)

	if wasSignedIn {
		s.logger.Info("session", "signed out", nil)
		s.publish(context.Background(), events.TypeSignedOut, map[string]interface{}{})
	}
}

// adopt commits a new identity: profile always, token only when one was
// issued. Store first, memory second, so a persisted session never refers
// to state the process does not hold.
func (s *sessionService) adopt(token string, user *entity.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.store.Set(StorageKeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	if token != "" {
		if err := s.store.Set(StorageKeyToken, token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}

	s.mu.Lock()
	s.user = user
	if token != "" {
		s.token = token
	}
	s.mu.Unlock()
	return nil
}

func (s *sessionService) CurrentUser() *entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry inspects the held token's exp claim without verifying the
// signature — the server stays the authority on validity. Opaque non-JWT
// tokens simply report no expiry.
func (s *sessionService) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *sessionService) Initializing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initializing
}

func (s *sessionService) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

func (s *sessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.initializing:
		return SessionInitializing
	case s.user != nil || s.token != "":
		return SessionAuthenticated
	default:
		return SessionAnonymous
	}
}

func (s *sessionService) setBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()
}

func (s *sessionService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("session", "failed to publish session event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
