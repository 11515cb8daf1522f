package models

// Message is an inbound contact-form submission.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
