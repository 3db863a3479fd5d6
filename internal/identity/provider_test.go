package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func newProvider() Provider {
	return NewEmailProvider(store.NewMemory(), "test-secret", time.Hour)
}

func TestSignUpSignIn(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	created, err := p.SignUp(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, created.UID)
	assert.Equal(t, "admin@rafflefox.local", created.Email)

	ident, token, err := p.SignIn(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, created.UID, ident.UID)
	require.NotEmpty(t, token)

	verified, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.UID, verified.UID)
	assert.Equal(t, created.Email, verified.Email)
}

func TestSignIn_NormalizesEmail(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	_, err := p.SignUp(ctx, "Admin@RaffleFox.Local", "hunter22")
	require.NoError(t, err)

	_, _, err = p.SignIn(ctx, "  admin@rafflefox.local ", "hunter22")
	assert.NoError(t, err)
}

func TestSignIn_WrongPassword(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	_, err := p.SignUp(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)

	_, _, err = p.SignIn(ctx, "admin@rafflefox.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	_, _, err := newProvider().SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	_, err := p.SignUp(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)

	_, err = p.SignUp(ctx, "admin@rafflefox.local", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerify_RejectsGarbageAndForeignTokens(t *testing.T) {
	p := newProvider()

	_, err := p.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewEmailProvider(store.NewMemory(), "other-secret", time.Hour)
	_, token, err := func() (*Identity, string, error) {
		ctx := context.Background()
		if _, err := other.SignUp(ctx, "a@b.co", "hunter22"); err != nil {
			return nil, "", err
		}
		return other.SignIn(ctx, "a@b.co", "hunter22")
	}()
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	p := NewEmailProvider(store.NewMemory(), "test-secret", -time.Minute)

	_, err := p.SignUp(ctx, "a@b.co", "hunter22")
	require.NoError(t, err)

	_, token, err := p.SignIn(ctx, "a@b.co", "hunter22")
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSubscribe_DeliversCurrentAndChanges(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	events, cancel := p.Subscribe()
	defer cancel()

	// The current identity (none yet) arrives immediately.
	first := <-events
	assert.Nil(t, first.Identity)

	created, err := p.SignUp(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)
	_, _, err = p.SignIn(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)

	signedIn := <-events
	require.NotNil(t, signedIn.Identity)
	assert.Equal(t, created.UID, signedIn.Identity.UID)

	require.NoError(t, p.SignOut(ctx, created.UID))
	signedOut := <-events
	assert.Nil(t, signedOut.Identity)
}

func TestSignOut_StaleUIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	created, err := p.SignUp(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)
	_, _, err = p.SignIn(ctx, "admin@rafflefox.local", "hunter22")
	require.NoError(t, err)

	events, cancel := p.Subscribe()
	defer cancel()
	current := <-events
	require.NotNil(t, current.Identity)

	require.NoError(t, p.SignOut(ctx, "someone-else"))

	// No sign-out event was emitted for the stale uid.
	select {
	case ev := <-events:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
	_ = created
}
