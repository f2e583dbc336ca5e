package auth

type UserGoogle struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresInMinutes int64  `json:"expires_in_minutes"`
	IsNewUser        bool   `json:"is_new_user"`
}

type SessionResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}
