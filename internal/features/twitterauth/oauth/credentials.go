package oauth

import (
	"strings"

	"github.com/dghubble/oauth1"
)

// Credentials - consumer key/secret приложения, выданные провайдером
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
}

func NewCredentials(key, secret string) Credentials {
	return Credentials{
		ConsumerKey:    strings.TrimSpace(key),
		ConsumerSecret: strings.TrimSpace(secret),
	}
}

// Configured сообщает, заданы ли оба значения
func (c Credentials) Configured() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != ""
}

func (c Credentials) signer() oauth1.Signer {
	return &oauth1.HMACSigner{ConsumerSecret: c.ConsumerSecret}
}

// config строит oauth1.Config для подписи запросов с access token
func (c Credentials) config(endpoint oauth1.Endpoint) *oauth1.Config {
	return &oauth1.Config{
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		Endpoint:       endpoint,
		Signer:         c.signer(),
		Noncer:         oauth1.Base64Noncer{},
	}
}
