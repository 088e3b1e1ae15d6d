package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type SignupResponse struct {
	Message string `json:"message"`
}
