package handlers

import (
	"net/http"

	"divineastro/models"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler accepts the contact form and newsletter signups. Submissions
// are acknowledged after logging; no mail delivery is attached yet.
type ContactHandler struct{}

// ContactFormHandler handles POST /api/contact.
func (h *ContactHandler) ContactFormHandler(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BindingError(c, err)
		return
	}
	utils.GetLogger().Info("Contact form received",
		zap.String("email", form.Email), zap.String("subject", form.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for contacting us. We will get back to you shortly."})
}

// NewsletterHandler handles POST /api/newsletter.
func (h *ContactHandler) NewsletterHandler(c *gin.Context) {
	var signup models.NewsletterSignup
	if err := c.ShouldBindJSON(&signup); err != nil {
		utils.BindingError(c, err)
		return
	}
	utils.GetLogger().Info("Newsletter signup", zap.String("email", signup.Email))
	c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
}
