package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/middleware"
	"raider-registry-backend/internal/features/twitterauth/models"
	"raider-registry-backend/internal/features/twitterauth/service"
)

const (
	redirectMissingParams = "missing_params"
	redirectInternalError = "internal_error"
)

type TwitterAuthHandler struct {
	service     service.TwitterAuthService
	frontendURL string
	logger      zerolog.Logger
}

func NewTwitterAuthHandler(service service.TwitterAuthService, frontendURL string, logger zerolog.Logger) *TwitterAuthHandler {
	return &TwitterAuthHandler{
		service:     service,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (h *TwitterAuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth/twitter")
	{
		auth.GET("", h.StartAuth)
		auth.GET("/callback", h.Callback)
	}
}

// @Summary Start Twitter authentication
// @Description Requests a temporary token from Twitter and returns the URL the browser should open
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthURLResponse "Authorization URL"
// @Failure 500 {object} middleware.ErrorResponse "Provider not configured or unavailable"
// @Router /auth/twitter [get]
func (h *TwitterAuthHandler) StartAuth(c *gin.Context) {
	authURL, err := h.service.BeginHandshake(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthURLResponse{AuthURL: authURL})
}

// @Summary Twitter OAuth callback
// @Description Completes the handshake and redirects to the frontend with twitter_id, twitter_username, twitter_display_name and twitter_avatar, or with error=<code> on failure
// @Tags auth
// @Param oauth_token query string false "Request token"
// @Param oauth_verifier query string false "Verifier"
// @Param denied query string false "Set by Twitter when the user cancels"
// @Success 302 "Redirect to frontend"
// @Router /auth/twitter/callback [get]
func (h *TwitterAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if denied := c.Query("denied"); denied != "" {
		if err := h.service.Deny(ctx, denied); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to drop denied handshake")
		}
		h.redirectError(c, errors.New(errors.ErrCodeAccessDenied, "User denied access").RedirectCode())
		return
	}

	token := c.Query("oauth_token")
	verifier := c.Query("oauth_verifier")
	if token == "" || verifier == "" {
		h.redirectError(c, redirectMissingParams)
		return
	}

	identity, err := h.service.CompleteHandshake(ctx, token, verifier)
	if err != nil {
		code := redirectInternalError
		appErr, ok := errors.AsAppError(err)
		if ok {
			code = appErr.RedirectCode()
		}

		event := h.logger.Warn()
		if !ok || appErr.IsInternal() {
			event = h.logger.Error()
		}
		event.Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("redirect_error", code).
			Msg("Twitter callback failed")

		h.redirectError(c, code)
		return
	}

	h.redirect(c, url.Values{
		"twitter_id":           {identity.ID},
		"twitter_username":     {identity.Username},
		"twitter_display_name": {identity.DisplayName},
		"twitter_avatar":       {identity.AvatarURL},
	})
}

func (h *TwitterAuthHandler) redirectError(c *gin.Context, code string) {
	h.redirect(c, url.Values{"error": {code}})
}

// redirect добавляет параметры к FRONTEND_URL, сохраняя его собственный query
func (h *TwitterAuthHandler) redirect(c *gin.Context, params url.Values) {
	target, err := url.Parse(h.frontendURL)
	if err != nil {
		h.logger.Error().Err(err).Str("frontend_url", h.frontendURL).Msg("Invalid frontend URL")
		middleware.Abort(c, errors.Wrap(err, errors.ErrCodeInternal, "Internal server error"))
		return
	}

	query := target.Query()
	for k, v := range params {
		query[k] = v
	}
	target.RawQuery = query.Encode()

	c.Redirect(http.StatusFound, target.String())
}
