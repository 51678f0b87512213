package response_models

type AccountResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Country   string `json:"country"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"user"`
}
