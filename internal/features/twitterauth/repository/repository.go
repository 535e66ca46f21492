package repository

import "context"

// HandshakeStore хранит секреты временных токенов между стартом рукопожатия и колбэком.
// Take одноразовый: запись удаляется при любом исходе.
type HandshakeStore interface {
	Save(ctx context.Context, requestToken, secret string) error
	Take(ctx context.Context, requestToken string) (secret string, ok bool, err error)
}
