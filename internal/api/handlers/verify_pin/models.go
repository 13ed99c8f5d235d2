package verify_pin

// VerifyPinRequest HTTP request model
type VerifyPinRequest struct {
	Pin string `json:"pin"`
}

// VerifyPinResponse HTTP response model
type VerifyPinResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"` // ISO 8601
}
