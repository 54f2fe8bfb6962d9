package dto

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
