package models

// ContactForm is the contact page submission.
type ContactForm struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Subject string `json:"subject" binding:"required,min=5"`
	Message string `json:"message" binding:"required,min=10"`
}

// NewsletterSignup is the footer subscription form.
type NewsletterSignup struct {
	Email string `json:"email" binding:"required,email"`
}
