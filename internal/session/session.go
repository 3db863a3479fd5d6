package session

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/common/validation"
	adminmodels "github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
	adminrepo "github.com/Ignition-ceo/RaffleFox/internal/features/admin/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/identity"
)

const lookupTimeout = 5 * time.Second

// devProfile is the synthetic session used when AUTH_DISABLED is set.
// Development mode only; never a production code path.
var devProfile = adminmodels.Admin{
	ID:      "dev",
	UID:     "dev",
	Email:   "dev@rafflefox.local",
	Name:    "Dev User",
	Company: "Raffle Fox",
	Role:    "super_admin",
	Status:  adminmodels.StatusActive,
}

// AuthResult is what sign-in/sign-up hand back to the UI: either OK
// with a token, or per-field validation errors, or a human-readable
// failure message. Never a raw error.
type AuthResult struct {
	OK          bool               `json:"ok"`
	Token       string             `json:"token,omitempty"`
	Identity    *identity.Identity `json:"identity,omitempty"`
	FieldErrors map[string]string  `json:"fieldErrors,omitempty"`
	Message     string             `json:"message,omitempty"`
}

// Session is a resolved per-request view of who is calling.
type Session struct {
	Identity *identity.Identity
	Profile  *adminmodels.Admin
	admin    bool
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.admin
}

// Manager tracks the provider's current identity and resolves it to an
// admin profile. One instance per process; Start subscribes to the
// identity stream, Close tears it down.
type Manager struct {
	provider     identity.Provider
	admins       adminrepo.AdminRepository
	authDisabled bool
	profiles     *gocache.Cache

	mu      sync.RWMutex
	current *identity.Identity
	profile *adminmodels.Admin
	loading bool

	cancelSub func()
	done      chan struct{}
}

func NewManager(provider identity.Provider, admins adminrepo.AdminRepository, authDisabled bool, profileTTL time.Duration) *Manager {
	m := &Manager{
		provider:     provider,
		admins:       admins,
		authDisabled: authDisabled,
		profiles:     gocache.New(profileTTL, 2*profileTTL),
		loading:      !authDisabled,
	}
	if authDisabled {
		p := devProfile
		p.CreatedAt = time.Now()
		m.profile = &p
	}
	return m
}

// Start establishes the identity subscription. With auth disabled the
// provider is never contacted.
func (m *Manager) Start() {
	if m.authDisabled {
		logger.Warn().Msg("AUTH_DISABLED set, using synthetic dev session")
		return
	}

	events, cancel := m.provider.Subscribe()
	m.cancelSub = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		for ev := range events {
			m.handleEvent(ev.Identity)
		}
	}()
}

func (m *Manager) Close() {
	if m.cancelSub != nil {
		m.cancelSub()
		<-m.done
	}
}

func (m *Manager) handleEvent(ident *identity.Identity) {
	var profile *adminmodels.Admin
	if ident != nil {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		profile = m.resolveProfile(ctx, ident.UID)
		cancel()
	}

	m.mu.Lock()
	m.current = ident
	m.profile = profile
	m.loading = false
	m.mu.Unlock()
}

// resolveProfile looks up the admin record for a uid. Not-found means
// "not an admin" and a lookup failure is logged, never surfaced.
func (m *Manager) resolveProfile(ctx context.Context, uid string) *adminmodels.Admin {
	if cached, ok := m.profiles.Get(uid); ok {
		p := cached.(adminmodels.Admin)
		return &p
	}

	profile, err := m.admins.GetByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, adminrepo.ErrAdminNotFound) {
			logger.Error().Err(err).Str("uid", uid).Msg("admin profile lookup failed")
		}
		return nil
	}

	m.profiles.SetDefault(uid, *profile)
	return profile
}

func (m *Manager) Identity() *identity.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) AdminProfile() *adminmodels.Admin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// Loading is true until the first identity resolution completes.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IsAdmin is authDisabled OR (profile present AND status "active").
func (m *Manager) IsAdmin() bool {
	if m.authDisabled {
		return true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile.IsActive()
}

func (m *Manager) AuthDisabled() bool {
	return m.authDisabled
}

func validateCredentials(email, password string) map[string]string {
	fields := make(map[string]string)
	if err := validation.ValidateEmail(email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validation.ValidatePassword(password); err != nil {
		fields["password"] = err.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// SignIn validates the credentials locally, then delegates to the
// provider. Validation failures never reach the provider.
func (m *Manager) SignIn(ctx context.Context, email, password string) AuthResult {
	if fields := validateCredentials(email, password); fields != nil {
		return AuthResult{FieldErrors: fields}
	}

	ident, token, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return AuthResult{Message: "Invalid email or password."}
		}
		logger.Error().Err(err).Msg("sign-in failed")
		return AuthResult{Message: "An unexpected error occurred. Please try again."}
	}

	return AuthResult{OK: true, Token: token, Identity: ident}
}

func (m *Manager) SignUp(ctx context.Context, email, password string) AuthResult {
	if fields := validateCredentials(email, password); fields != nil {
		return AuthResult{FieldErrors: fields}
	}

	ident, err := m.provider.SignUp(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return AuthResult{Message: "An account with this email already exists."}
		}
		logger.Error().Err(err).Msg("sign-up failed")
		return AuthResult{Message: "An unexpected error occurred. Please try again."}
	}

	return AuthResult{
		OK:       true,
		Identity: ident,
		Message:  "Your account has been created. Contact an admin to grant you access.",
	}
}

// SignOut delegates to the provider and clears the cached profile.
func (m *Manager) SignOut(ctx context.Context) error {
	if m.authDisabled {
		return nil
	}

	m.mu.Lock()
	current := m.current
	m.profile = nil
	m.mu.Unlock()

	if current == nil {
		return nil
	}
	m.profiles.Delete(current.UID)
	return m.provider.SignOut(ctx, current.UID)
}

// Resolve verifies a bearer token and builds the per-request session.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if m.authDisabled {
		p := devProfile
		return &Session{
			Identity: &identity.Identity{UID: p.UID, Email: p.Email},
			Profile:  &p,
			admin:    true,
		}, nil
	}

	ident, err := m.provider.Verify(token)
	if err != nil {
		return nil, err
	}

	profile := m.resolveProfile(ctx, ident.UID)
	return &Session{
		Identity: ident,
		Profile:  profile,
		admin:    profile.IsActive(),
	}, nil
}
