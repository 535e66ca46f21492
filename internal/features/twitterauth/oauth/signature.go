package oauth

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	paramConsumerKey     = "oauth_consumer_key"
	paramNonce           = "oauth_nonce"
	paramSignature       = "oauth_signature"
	paramSignatureMethod = "oauth_signature_method"
	paramTimestamp       = "oauth_timestamp"
	paramToken           = "oauth_token"
	paramTokenSecret     = "oauth_token_secret"
	paramVersion         = "oauth_version"
	paramCallback        = "oauth_callback"
	paramVerifier        = "oauth_verifier"

	oauthVersion = "1.0"
)

// signer формирует заголовок Authorization для шагов 1 и 3, где токен еще временный
type signer struct {
	creds  Credentials
	sign   oauth1.Signer
	noncer oauth1.Noncer
	now    func() time.Time
}

func newSigner(creds Credentials) *signer {
	return &signer{
		creds:  creds,
		sign:   creds.signer(),
		noncer: oauth1.Base64Noncer{},
		now:    time.Now,
	}
}

// authorization возвращает значение заголовка Authorization.
// extra - протокольные параметры шага (oauth_callback, oauth_token, oauth_verifier).
func (s *signer) authorization(method string, u *url.URL, tokenSecret string, extra map[string]string) (string, error) {
	oauthParams := map[string]string{
		paramConsumerKey:     s.creds.ConsumerKey,
		paramSignatureMethod: s.sign.Name(),
		paramTimestamp:       strconv.FormatInt(s.now().Unix(), 10),
		paramNonce:           s.noncer.Nonce(),
		paramVersion:         oauthVersion,
	}
	for k, v := range extra {
		oauthParams[k] = v
	}

	// повторяющиеся параметры query подписываются все
	params := u.Query()
	for k, v := range oauthParams {
		params.Set(k, v)
	}

	signature, err := s.sign.Sign(tokenSecret, signatureBase(method, u, params))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}
	oauthParams[paramSignature] = signature

	return "OAuth " + strings.Join(sortedPairs(oauthParams, `%s="%s"`), ", "), nil
}

// signatureBase собирает base string по RFC 5849 3.4.1
func signatureBase(method string, u *url.URL, params url.Values) string {
	normalized := strings.Join(normalizedParams(params), "&")
	return strings.Join([]string{
		strings.ToUpper(method),
		oauth1.PercentEncode(baseURI(u)),
		oauth1.PercentEncode(normalized),
	}, "&")
}

// baseURI: схема и хост в нижнем регистре, порт по умолчанию для схемы опускается, query отбрасывается
func baseURI(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if h, port, ok := strings.Cut(host, ":"); ok && port == defaultPorts[scheme] {
		host = h
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, u.EscapedPath())
}

var defaultPorts = map[string]string{"http": "80", "https": "443"}

// normalizedParams кодирует пары и сортирует по имени, затем по значению (RFC 5849 3.4.1.3.2)
func normalizedParams(params url.Values) []string {
	pairs := make([]string, 0, len(params))
	for k, values := range params {
		ek := oauth1.PercentEncode(k)
		for _, v := range values {
			pairs = append(pairs, ek+"="+oauth1.PercentEncode(v))
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		ki, vi, _ := strings.Cut(pairs[i], "=")
		kj, vj, _ := strings.Cut(pairs[j], "=")
		if ki != kj {
			return ki < kj
		}
		return vi < vj
	})
	return pairs
}

func sortedPairs(params map[string]string, format string) []string {
	encoded := make(map[string]string, len(params))
	keys := make([]string, 0, len(params))
	for k, v := range params {
		ek := oauth1.PercentEncode(k)
		encoded[ek] = oauth1.PercentEncode(v)
		keys = append(keys, ek)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf(format, k, encoded[k])
	}
	return pairs
}
