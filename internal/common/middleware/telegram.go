package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"raider-registry-backend/internal/common/errors"
)

const (
	InitDataHeader  = "init_data"
	telegramUserKey = "telegram_user"
)

// TelegramInitData проверяет init_data Telegram Mini App, если бот настроен.
// Без токена бота middleware ничего не делает.
func TelegramInitData(botToken string, ttl time.Duration, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if botToken == "" {
			c.Next()
			return
		}

		raw := c.GetHeader(InitDataHeader)
		if raw == "" {
			if required {
				Abort(c, errors.NewUnauthorizedError("Telegram init data required"))
				return
			}
			c.Next()
			return
		}

		if err := initdata.Validate(raw, botToken, ttl); err != nil {
			Abort(c, errors.Wrap(err, errors.ErrCodeUnauthorized, "Unauthorized: invalid Telegram init data"))
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			Abort(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Failed to parse Telegram init data"))
			return
		}

		c.Set(telegramUserKey, parsed.User)
		c.Next()
	}
}

// TelegramUser возвращает пользователя из проверенного init_data
func TelegramUser(c *gin.Context) (initdata.User, bool) {
	v, exists := c.Get(telegramUserKey)
	if !exists {
		return initdata.User{}, false
	}
	user, ok := v.(initdata.User)
	return user, ok
}
