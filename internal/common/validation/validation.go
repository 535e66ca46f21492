package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// Максимальные длины для различных полей
	MaxTwitterIDLength        = 20
	MaxTwitterUsernameLength  = 25
	MaxTelegramUsernameLength = 50
	WalletAddressLength       = 42
	MaxClientNameLength       = 100

	// Минимальные длины
	MinTwitterIDLength        = 1
	MinTwitterUsernameLength  = 1
	MinTelegramUsernameLength = 1
)

var (
	numericRegex         = regexp.MustCompile(`^[0-9]+$`)
	twitterUsernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	walletAddressRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// ValidateTwitterID проверяет числовой идентификатор аккаунта Twitter
func ValidateTwitterID(id string) error {
	if id == "" {
		return fmt.Errorf("twitter id cannot be empty")
	}

	if len(id) < MinTwitterIDLength || len(id) > MaxTwitterIDLength {
		return fmt.Errorf("twitter id must be %d-%d characters long", MinTwitterIDLength, MaxTwitterIDLength)
	}

	if !numericRegex.MatchString(id) {
		return fmt.Errorf("twitter id must contain only digits")
	}

	return nil
}

// ValidateTwitterUsername проверяет handle Twitter (без @)
func ValidateTwitterUsername(username string) error {
	if len(username) < MinTwitterUsernameLength || len(username) > MaxTwitterUsernameLength {
		return fmt.Errorf("twitter username must be %d-%d characters long", MinTwitterUsernameLength, MaxTwitterUsernameLength)
	}

	if !twitterUsernameRegex.MatchString(username) {
		return fmt.Errorf("twitter username must contain only letters, numbers, and underscores")
	}

	return nil
}

// ValidateTelegramUsername проверяет имя пользователя Telegram после обрезки пробелов
func ValidateTelegramUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("telegram username cannot be empty")
	}

	if utf8.RuneCountInString(username) > MaxTelegramUsernameLength {
		return fmt.Errorf("telegram username cannot exceed %d characters", MaxTelegramUsernameLength)
	}

	return nil
}

// ValidateWalletAddress проверяет EVM-адрес: 0x и 40 hex-символов
func ValidateWalletAddress(address string) error {
	if address == "" {
		return fmt.Errorf("wallet address cannot be empty")
	}

	if len(address) != WalletAddressLength {
		return fmt.Errorf("wallet address must be exactly %d characters long", WalletAddressLength)
	}

	if !walletAddressRegex.MatchString(address) {
		return fmt.Errorf("wallet address must be 0x followed by 40 hexadecimal characters")
	}

	return nil
}

// ValidateClientName проверяет имя клиента в журнале статусов
func ValidateClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("client name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxClientNameLength {
		return fmt.Errorf("client name cannot exceed %d characters", MaxClientNameLength)
	}

	return nil
}

// NormalizeTelegramUsername убирает пробелы и ведущий @
func NormalizeTelegramUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
