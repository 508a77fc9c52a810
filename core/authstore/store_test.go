package authstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dataview/core/authstore"
	"github.com/dmitrymomot/dataview/core/kv"
)

// mockAuthenticator implements authstore.Authenticator for testing.
type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, identifier, secret string) (authstore.Principal, string, error) {
	args := m.Called(ctx, identifier, secret)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(authstore.Principal), args.String(1), args.Error(2)
}

// messagedError carries a server-provided user-facing message.
type messagedError struct{ msg string }

func (e *messagedError) Error() string       { return e.msg }
func (e *messagedError) UserMessage() string { return e.msg }

func emily() authstore.Principal {
	return authstore.Principal{"id": float64(1), "username": "emilys", "email": "emily@x.com"}
}

func newTestStore(t *testing.T, auth *mockAuthenticator) (*authstore.Store, *kv.Memory) {
	t.Helper()
	storage := kv.NewMemory()
	store, err := authstore.New(auth, storage)
	require.NoError(t, err)
	return store, storage
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil collaborators", func(t *testing.T) {
		t.Parallel()

		_, err := authstore.New(nil, kv.NewMemory())
		assert.ErrorIs(t, err, authstore.ErrNilAuthenticator)

		_, err = authstore.New(&mockAuthenticator{}, nil)
		assert.ErrorIs(t, err, authstore.ErrNilStorage)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success commits and persists both entries", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Authenticate", mock.Anything, "emilys", "emilyspass").
			Return(emily(), "tok-123", nil)

		store, storage := newTestStore(t, auth)
		require.NoError(t, store.Login(ctx, "emilys", "emilyspass"))

		assert.Equal(t, "tok-123", store.Token())
		assert.Equal(t, "emilys", store.Principal()["username"])
		assert.True(t, store.IsAuthenticated(ctx))
		assert.Empty(t, store.LastError())

		tok, err := storage.Get(ctx, authstore.TokenKey)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", tok)
		_, err = storage.Get(ctx, authstore.PrincipalKey)
		assert.NoError(t, err)
	})

	t.Run("credentials are trimmed before the call", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Authenticate", mock.Anything, "emilys", "emilyspass").
			Return(emily(), "tok-123", nil)

		store, _ := newTestStore(t, auth)
		require.NoError(t, store.Login(ctx, "  emilys  ", "  emilyspass  "))
		auth.AssertExpectations(t)
	})

	t.Run("empty credentials rejected without a network call", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		store, _ := newTestStore(t, auth)

		err := store.Login(ctx, "   ", "secret")
		assert.ErrorIs(t, err, authstore.ErrEmptyCredentials)
		assert.Equal(t, "Username and password are required.", store.LastError())
		auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("remote failure keeps prior session and re-signals", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Authenticate", mock.Anything, "emilys", "emilyspass").
			Return(emily(), "tok-123", nil).Once()
		auth.On("Authenticate", mock.Anything, "emilys", "wrong").
			Return(nil, "", &messagedError{msg: "Invalid credentials"}).Once()

		store, _ := newTestStore(t, auth)
		require.NoError(t, store.Login(ctx, "emilys", "emilyspass"))

		err := store.Login(ctx, "emilys", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", store.LastError())
		assert.Equal(t, "tok-123", store.Token(), "prior session untouched")
		assert.True(t, store.IsAuthenticated(ctx))
	})

	t.Run("network failure uses fallback message", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Authenticate", mock.Anything, "emilys", "emilyspass").
			Return(nil, "", errors.New("dial tcp: timeout"))

		store, _ := newTestStore(t, auth)
		require.Error(t, store.Login(ctx, "emilys", "emilyspass"))
		assert.Equal(t, "Login failed.", store.LastError())
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("clears memory and both durable entries", func(t *testing.T) {
		t.Parallel()

		auth := &mockAuthenticator{}
		auth.On("Authenticate", mock.Anything, "emilys", "emilyspass").
			Return(emily(), "tok-123", nil)

		store, storage := newTestStore(t, auth)
		require.NoError(t, store.Login(ctx, "emilys", "emilyspass"))
		require.NoError(t, store.Logout(ctx))

		assert.Empty(t, store.Token())
		assert.Nil(t, store.Principal())
		assert.False(t, store.IsAuthenticated(ctx))

		_, err := storage.Get(ctx, authstore.TokenKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
		_, err = storage.Get(ctx, authstore.PrincipalKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("idempotent without a session", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t, &mockAuthenticator{})
		assert.NoError(t, store.Logout(ctx))
		assert.NoError(t, store.Logout(ctx))
	})
}

func TestHydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("restores a complete persisted session", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))
		require.NoError(t, storage.Set(ctx, authstore.PrincipalKey, `{"id":1,"username":"emilys"}`))

		require.NoError(t, store.Hydrate(ctx))

		assert.Equal(t, "tok-123", store.Token())
		assert.Equal(t, "emilys", store.Principal()["username"])
		assert.True(t, store.IsAuthenticated(ctx))
	})

	t.Run("idempotent with unchanged storage", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))
		require.NoError(t, storage.Set(ctx, authstore.PrincipalKey, `{"id":1}`))

		require.NoError(t, store.Hydrate(ctx))
		first := store.Principal()
		firstToken := store.Token()

		require.NoError(t, store.Hydrate(ctx))
		assert.Equal(t, first, store.Principal())
		assert.Equal(t, firstToken, store.Token())
	})

	t.Run("empty storage leaves the store signed out", func(t *testing.T) {
		t.Parallel()

		store, _ := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, store.Hydrate(ctx))
		assert.False(t, store.IsAuthenticated(ctx))
	})

	t.Run("token without principal clears both", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))

		require.NoError(t, store.Hydrate(ctx))

		assert.False(t, store.IsAuthenticated(ctx))
		_, err := storage.Get(ctx, authstore.TokenKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("principal without token clears both", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.PrincipalKey, `{"id":1}`))

		require.NoError(t, store.Hydrate(ctx))

		assert.False(t, store.IsAuthenticated(ctx))
		_, err := storage.Get(ctx, authstore.PrincipalKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("unparsable principal clears both", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))
		require.NoError(t, storage.Set(ctx, authstore.PrincipalKey, "{not json"))

		require.NoError(t, store.Hydrate(ctx))

		assert.False(t, store.IsAuthenticated(ctx))
		_, err := storage.Get(ctx, authstore.TokenKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
		_, err = storage.Get(ctx, authstore.PrincipalKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})
}

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("falls back to durable storage before hydration", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))

		// No Hydrate yet: durable storage decides.
		assert.True(t, store.IsAuthenticated(ctx))
	})

	t.Run("memory authoritative after hydration", func(t *testing.T) {
		t.Parallel()

		store, storage := newTestStore(t, &mockAuthenticator{})
		require.NoError(t, store.Hydrate(ctx))

		// A token written after hydration is not consulted.
		require.NoError(t, storage.Set(ctx, authstore.TokenKey, "tok-123"))
		assert.False(t, store.IsAuthenticated(ctx))
	})
}
