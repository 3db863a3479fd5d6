package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedCredential struct {
	UID          string       `json:"uid"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"passwordHash"`
	CreatedAt    store.Millis `json:"createdAt,omitempty"`
}

// emailProvider is an email/password provider over the document store.
// Credential documents live in the auth_users collection keyed by uid;
// email lookup is a scan, same as every other read in this system.
type emailProvider struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration

	mu      sync.Mutex
	current *Identity
	subs    map[int]chan Event
	nextSub int
}

func NewEmailProvider(s store.Store, jwtSecret string, tokenTTL time.Duration) Provider {
	return &emailProvider{
		store:    s,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		subs:     make(map[int]chan Event),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *emailProvider) findByEmail(ctx context.Context, email string) (*storedCredential, error) {
	docs, err := p.store.List(ctx, store.CollectionAuth)
	if err != nil {
		return nil, fmt.Errorf("credential scan: %w", err)
	}
	for _, doc := range docs {
		var cred storedCredential
		if err := json.Unmarshal(doc.Data, &cred); err != nil {
			continue
		}
		if cred.Email == email {
			return &cred, nil
		}
	}
	return nil, nil
}

func (p *emailProvider) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	email = normalizeEmail(email)

	cred, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if cred == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	ident := &Identity{UID: cred.UID, Email: cred.Email}
	token, err := p.issueToken(ident)
	if err != nil {
		return nil, "", err
	}

	p.emit(ident)
	return ident, token, nil
}

func (p *emailProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	email = normalizeEmail(email)

	existing, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	cred := storedCredential{
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    store.Now(),
	}
	data, err := json.Marshal(cred)
	if err != nil {
		return nil, err
	}
	if err := p.store.Set(ctx, store.CollectionAuth, cred.UID, data); err != nil {
		return nil, err
	}

	return &Identity{UID: cred.UID, Email: cred.Email}, nil
}

func (p *emailProvider) SignOut(_ context.Context, uid string) error {
	p.mu.Lock()
	// Only the signed-in identity can be signed out; a stale uid is a no-op.
	if p.current != nil && p.current.UID != uid {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	p.emit(nil)
	return nil
}

// Subscribe registers an identity-change listener. The current identity
// (possibly nil) is delivered immediately so a new subscriber can settle
// without waiting for the next sign-in.
func (p *emailProvider) Subscribe() (<-chan Event, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Event, 8)
	id := p.nextSub
	p.nextSub++
	p.subs[id] = ch

	ch <- Event{Identity: p.current}

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (p *emailProvider) emit(ident *Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = ident
	for _, ch := range p.subs {
		select {
		case ch <- Event{Identity: ident}:
		default:
			// Slow subscriber; drop rather than block sign-in.
		}
	}
}
