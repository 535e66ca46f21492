package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/features/twitterauth/models"
	"raider-registry-backend/internal/features/twitterauth/oauth"
	"raider-registry-backend/internal/features/twitterauth/repository/memory"
)

type fakeExchanger struct {
	configured bool

	requestErr error
	accessErr  error
	profileErr error

	calls        int
	lastCallback string
	lastRequest  oauth.TokenPair
	lastVerifier string
}

func (f *fakeExchanger) Configured() bool { return f.configured }

func (f *fakeExchanger) RequestToken(_ context.Context, callbackURL string) (oauth.TokenPair, error) {
	f.calls++
	f.lastCallback = callbackURL
	if f.requestErr != nil {
		return oauth.TokenPair{}, f.requestErr
	}
	return oauth.TokenPair{Token: "req-token", Secret: "req-secret"}, nil
}

func (f *fakeExchanger) AuthorizationURL(requestToken string) string {
	return "https://provider.example/authenticate?oauth_token=" + requestToken
}

func (f *fakeExchanger) AccessToken(_ context.Context, request oauth.TokenPair, verifier string) (oauth.TokenPair, error) {
	f.calls++
	f.lastRequest = request
	f.lastVerifier = verifier
	if f.accessErr != nil {
		return oauth.TokenPair{}, f.accessErr
	}
	return oauth.TokenPair{Token: "acc-token", Secret: "acc-secret"}, nil
}

func (f *fakeExchanger) VerifyCredentials(_ context.Context, access oauth.TokenPair) (*models.ProfileIdentity, error) {
	f.calls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &models.ProfileIdentity{ID: "42", Username: "raider", DisplayName: "Raider", AvatarURL: "https://img/42"}, nil
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, string) error {
	return stderrors.New("connection refused")
}

func (failingStore) Take(context.Context, string) (string, bool, error) {
	return "", false, stderrors.New("connection refused")
}

func newTestService(client TokenExchanger) (*twitterAuthService, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	svc := NewTwitterAuthService(client, memory.NewHandshakeStore(time.Minute), "http://api/callback", zerolog.Nop(), reg)
	return svc.(*twitterAuthService), reg
}

func TestBeginHandshake(t *testing.T) {
	client := &fakeExchanger{configured: true}
	svc, _ := newTestService(client)

	authURL, err := svc.BeginHandshake(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://provider.example/authenticate?oauth_token=req-token", authURL)
	assert.Equal(t, "http://api/callback", client.lastCallback)
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.handshakes.WithLabelValues(stageBegin, "ok")))
}

func TestBeginHandshake_NotConfigured(t *testing.T) {
	client := &fakeExchanger{configured: false}
	svc, _ := newTestService(client)

	_, err := svc.BeginHandshake(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeProviderNotConfigured))
	assert.Zero(t, client.calls)
}

func TestBeginHandshake_UpstreamError(t *testing.T) {
	upstream := errors.NewUpstreamError(errors.ErrCodeUpstreamUnavailable, "request_token", stderrors.New("503"))
	svc, _ := newTestService(&fakeExchanger{configured: true, requestErr: upstream})

	_, err := svc.BeginHandshake(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeUpstreamUnavailable))
}

func TestBeginHandshake_StoreError(t *testing.T) {
	svc := NewTwitterAuthService(&fakeExchanger{configured: true}, failingStore{}, "cb", zerolog.Nop(), nil)

	_, err := svc.BeginHandshake(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeStorageUnavailable))
}

func TestCompleteHandshake(t *testing.T) {
	client := &fakeExchanger{configured: true}
	svc, _ := newTestService(client)
	ctx := context.Background()

	_, err := svc.BeginHandshake(ctx)
	require.NoError(t, err)

	identity, err := svc.CompleteHandshake(ctx, "req-token", "verifier")
	require.NoError(t, err)
	assert.Equal(t, "42", identity.ID)
	assert.Equal(t, "raider", identity.Username)
	assert.Equal(t, oauth.TokenPair{Token: "req-token", Secret: "req-secret"}, client.lastRequest)
	assert.Equal(t, "verifier", client.lastVerifier)
}

func TestCompleteHandshake_TokenIsSingleUse(t *testing.T) {
	svc, _ := newTestService(&fakeExchanger{configured: true})
	ctx := context.Background()

	_, err := svc.BeginHandshake(ctx)
	require.NoError(t, err)

	_, err = svc.CompleteHandshake(ctx, "req-token", "verifier")
	require.NoError(t, err)

	_, err = svc.CompleteHandshake(ctx, "req-token", "verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownOrExpiredToken))
}

func TestCompleteHandshake_UnknownTokenSkipsProvider(t *testing.T) {
	client := &fakeExchanger{configured: true}
	svc, _ := newTestService(client)

	_, err := svc.CompleteHandshake(context.Background(), "never-issued", "verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownOrExpiredToken))
	assert.Zero(t, client.calls)
}

func TestCompleteHandshake_FailureStillConsumesToken(t *testing.T) {
	client := &fakeExchanger{configured: true}
	svc, _ := newTestService(client)
	ctx := context.Background()

	_, err := svc.BeginHandshake(ctx)
	require.NoError(t, err)

	client.accessErr = errors.NewUpstreamError(errors.ErrCodeAccessTokenExchangeFailed, "access_token", stderrors.New("401"))
	_, err = svc.CompleteHandshake(ctx, "req-token", "bad-verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAccessTokenExchangeFailed))

	client.accessErr = nil
	_, err = svc.CompleteHandshake(ctx, "req-token", "verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownOrExpiredToken))
}

func TestCompleteHandshake_ProfileError(t *testing.T) {
	client := &fakeExchanger{configured: true}
	svc, _ := newTestService(client)
	ctx := context.Background()

	_, err := svc.BeginHandshake(ctx)
	require.NoError(t, err)

	client.profileErr = errors.NewUpstreamError(errors.ErrCodeProfileFetchFailed, "verify_credentials", stderrors.New("401"))
	_, err = svc.CompleteHandshake(ctx, "req-token", "verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeProfileFetchFailed))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.handshakes.WithLabelValues(stageComplete, string(errors.ErrCodeProfileFetchFailed))))
}

func TestDeny_RemovesHandshake(t *testing.T) {
	svc, _ := newTestService(&fakeExchanger{configured: true})
	ctx := context.Background()

	_, err := svc.BeginHandshake(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Deny(ctx, "req-token"))

	_, err = svc.CompleteHandshake(ctx, "req-token", "verifier")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnknownOrExpiredToken))
}
