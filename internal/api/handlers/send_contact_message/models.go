package send_contact_message

// ContactRequest HTTP request model формы обратной связи
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Sent bool `json:"sent"`
}
