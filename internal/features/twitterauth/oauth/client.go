// Package oauth выполняет трехшаговое OAuth 1.0a рукопожатие с Twitter:
// request token, обмен verifier на access token и чтение профиля.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/dghubble/oauth1/twitter"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/features/twitterauth/models"
)

const (
	DefaultProfileURL = "https://api.twitter.com/1.1/account/verify_credentials.json"

	maxResponseBytes = 64 << 10
)

// Endpoints - адреса провайдера для каждого шага рукопожатия
type Endpoints struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
	ProfileURL      string
}

// DefaultEndpoints возвращает эндпоинты Twitter (oauth/authenticate)
func DefaultEndpoints() Endpoints {
	return Endpoints{
		RequestTokenURL: twitter.AuthenticateEndpoint.RequestTokenURL,
		AuthorizeURL:    twitter.AuthenticateEndpoint.AuthorizeURL,
		AccessTokenURL:  twitter.AuthenticateEndpoint.AccessTokenURL,
		ProfileURL:      DefaultProfileURL,
	}
}

// WithDefaults заполняет пустые поля значениями Twitter
func (e Endpoints) WithDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.RequestTokenURL == "" {
		e.RequestTokenURL = d.RequestTokenURL
	}
	if e.AuthorizeURL == "" {
		e.AuthorizeURL = d.AuthorizeURL
	}
	if e.AccessTokenURL == "" {
		e.AccessTokenURL = d.AccessTokenURL
	}
	if e.ProfileURL == "" {
		e.ProfileURL = d.ProfileURL
	}
	return e
}

// TokenPair - пара token/secret (временная или постоянная)
type TokenPair struct {
	Token  string
	Secret string
}

type Client struct {
	creds      Credentials
	endpoints  Endpoints
	httpClient *http.Client
	signer     *signer
}

func NewClient(creds Credentials, endpoints Endpoints, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		creds:      creds,
		endpoints:  endpoints.WithDefaults(),
		httpClient: &http.Client{Timeout: timeout},
		signer:     newSigner(creds),
	}
}

// Configured сообщает, заданы ли ключи приложения
func (c *Client) Configured() bool {
	return c.creds.Configured()
}

// RequestToken получает временный токен. Подпись без токена, с oauth_callback.
func (c *Client) RequestToken(ctx context.Context, callbackURL string) (TokenPair, error) {
	values, err := c.postForm(ctx, c.endpoints.RequestTokenURL, "", map[string]string{
		paramCallback: callbackURL,
	})
	if err != nil {
		return TokenPair{}, errors.NewUpstreamError(errors.ErrCodeUpstreamUnavailable, "request_token", err)
	}

	pair, err := tokenPairFrom(values)
	if err != nil {
		return TokenPair{}, errors.NewUpstreamError(errors.ErrCodeMalformedUpstreamResponse, "request_token", err)
	}
	return pair, nil
}

// AuthorizationURL возвращает адрес страницы подтверждения для пользователя
func (c *Client) AuthorizationURL(requestToken string) string {
	return c.endpoints.AuthorizeURL + "?" + paramToken + "=" + url.QueryEscape(requestToken)
}

// AccessToken обменивает временный токен и verifier на постоянный токен.
// Запрос подписывается секретом временного токена.
func (c *Client) AccessToken(ctx context.Context, request TokenPair, verifier string) (TokenPair, error) {
	values, err := c.postForm(ctx, c.endpoints.AccessTokenURL, request.Secret, map[string]string{
		paramToken:    request.Token,
		paramVerifier: verifier,
	})
	if err != nil {
		return TokenPair{}, errors.NewUpstreamError(errors.ErrCodeAccessTokenExchangeFailed, "access_token", err)
	}

	pair, err := tokenPairFrom(values)
	if err != nil {
		return TokenPair{}, errors.NewUpstreamError(errors.ErrCodeMalformedUpstreamResponse, "access_token", err)
	}
	return pair, nil
}

// VerifyCredentials читает профиль владельца access token
func (c *Client) VerifyCredentials(ctx context.Context, access TokenPair) (*models.ProfileIdentity, error) {
	identity, err := c.fetchProfile(ctx, access)
	if err != nil {
		return nil, errors.NewUpstreamError(errors.ErrCodeProfileFetchFailed, "verify_credentials", err)
	}
	return identity, nil
}

func (c *Client) fetchProfile(ctx context.Context, access TokenPair) (*models.ProfileIdentity, error) {
	// oauth1.NewClient берет базовый транспорт из контекста
	ctx = context.WithValue(ctx, oauth1.HTTPClient, c.httpClient)
	httpClient := oauth1.NewClient(ctx, c.creds.config(oauth1.Endpoint{}), oauth1.NewToken(access.Token, access.Secret))
	httpClient.Timeout = c.httpClient.Timeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.ProfileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload models.VerifyCredentialsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if payload.IDStr == "" {
		return nil, fmt.Errorf("profile response missing id_str")
	}

	return payload.ToIdentity(), nil
}

// postForm выполняет подписанный POST без тела и разбирает form-encoded ответ
func (c *Client) postForm(ctx context.Context, rawURL, tokenSecret string, oauthParams map[string]string) (url.Values, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", rawURL, err)
	}

	auth, err := c.signer.authorization(http.MethodPost, u, tokenSecret, oauthParams)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		// неразборчивое тело трактуем как пустой ответ
		return url.Values{}, nil
	}
	return values, nil
}

func tokenPairFrom(values url.Values) (TokenPair, error) {
	pair := TokenPair{
		Token:  values.Get(paramToken),
		Secret: values.Get(paramTokenSecret),
	}
	if pair.Token == "" || pair.Secret == "" {
		return TokenPair{}, fmt.Errorf("response missing %s or %s", paramToken, paramTokenSecret)
	}
	return pair, nil
}
