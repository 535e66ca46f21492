package models

// ProfileIdentity представляет профиль Twitter, полученный после рукопожатия
// @Description Данные аккаунта Twitter, передаваемые фронтенду через редирект
type ProfileIdentity struct {
	ID          string `json:"twitterId" example:"1234567890"`
	Username    string `json:"twitterUsername" example:"raid_master"`
	DisplayName string `json:"twitterDisplayName" example:"Raid Master"`
	AvatarURL   string `json:"twitterAvatar" example:"https://pbs.twimg.com/profile_images/1/avatar_normal.jpg"`
}

// AuthURLResponse возвращается при старте рукопожатия
type AuthURLResponse struct {
	AuthURL string `json:"authUrl" example:"https://api.twitter.com/oauth/authenticate?oauth_token=abc"`
}

// VerifyCredentialsPayload - подмножество ответа account/verify_credentials
type VerifyCredentialsPayload struct {
	IDStr                string `json:"id_str"`
	ScreenName           string `json:"screen_name"`
	Name                 string `json:"name"`
	ProfileImageURLHTTPS string `json:"profile_image_url_https"`
}

// ToIdentity переводит ответ провайдера в ProfileIdentity
func (p VerifyCredentialsPayload) ToIdentity() *ProfileIdentity {
	return &ProfileIdentity{
		ID:          p.IDStr,
		Username:    p.ScreenName,
		DisplayName: p.Name,
		AvatarURL:   p.ProfileImageURLHTTPS,
	}
}
