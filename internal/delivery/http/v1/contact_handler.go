package v1

import (
	"errors"
	"io"
	"net/http"

	"codeforge-backend/internal/delivery/http/response"
	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Client-facing messages
const (
	msgContactSent      = "Emails sent successfully! We'll be in touch soon."
	msgMissingFields    = "Please provide name, email, and project description."
	msgInvalidEmail     = "Please provide a valid email address."
	msgInvalidBody      = "Invalid request body."
	msgDeliveryFailed   = "Failed to send email. Please try again or contact us directly."
	msgMethodNotAllowed = "Method not allowed"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		api.Handle(method, "/contact", handler.MethodNotAllowed)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Emails the submission to every admin recipient and sends an acknowledgement to the submitter.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	form, err := bindContactForm(c)
	if err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgInvalidBody, err))
		return
	}

	if _, err := h.contactUC.Handle(c.Request.Context(), form); err != nil {
		var verr *domain.ValidationError
		switch {
		case domain.IsInvalidInput(err) && errors.As(err, &verr) && verr.Kind == domain.InvalidEmailFormat:
			c.Error(apperror.BadRequest(msgInvalidEmail))
		case domain.IsInvalidInput(err):
			c.Error(apperror.BadRequest(msgMissingFields))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, msgDeliveryFailed, err))
		}
		return
	}

	response.Success(c, http.StatusOK, msgContactSent, nil)
}

// MethodNotAllowed answers non-POST requests to /contact
func (h *ContactHandler) MethodNotAllowed(c *gin.Context) {
	c.Error(apperror.MethodNotAllowed(msgMethodNotAllowed))
}

// bindContactForm reads a JSON or url-encoded body. An empty body yields an
// empty form so the validator reports the missing fields.
func bindContactForm(c *gin.Context) (domain.ContactForm, error) {
	var form domain.ContactForm

	if c.ContentType() == gin.MIMEPOSTForm {
		if v, ok := c.GetPostForm("name"); ok {
			form.Name = v
		}
		if v, ok := c.GetPostForm("email"); ok {
			form.Email = v
		}
		if v, ok := c.GetPostForm("project"); ok {
			form.Project = v
		}
		return form, nil
	}

	if err := c.ShouldBindJSON(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ContactForm{}, nil
		}
		return domain.ContactForm{}, err
	}
	return form, nil
}
