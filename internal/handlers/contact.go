package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/salon/internal/contact"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/internal/selection"
	"github.com/nfrund/salon/internal/view"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// Submitter accepts validated contact form input.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (domain.ContactMessage, error)
}

// ContactHandler handles contact form posts.
type ContactHandler struct {
	site      *SiteHandler
	submitter Submitter
}

// NewContactHandler creates a new ContactHandler. Plain form posts that fail
// validation re-render the full page through site.
func NewContactHandler(site *SiteHandler, submitter Submitter) *ContactHandler {
	return &ContactHandler{site: site, submitter: submitter}
}

// ContactPost handles POST /contact. HTMX requests get the form back in
// place; plain posts are redirected to the contact section with a flash,
// keeping the selection of the page they were posted from.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission").SetInternal(err)
	}
	req.trim()

	form := partials.ContactForm{Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message}
	if err := c.Validate(&req); err != nil {
		form.Errors = FieldErrors(err)
		if form.Errors == nil {
			return err
		}
		return h.renderForm(c, http.StatusUnprocessableEntity, form)
	}

	logger := middleware.FromContext(c.Request().Context())
	_, err := h.submitter.Submit(c.Request().Context(), contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidSubmission):
		form.Errors = map[string]string{"message": "Please fill in your name, email and message."}
		return h.renderForm(c, http.StatusUnprocessableEntity, form)
	case err != nil:
		logger.Error("Failed to submit contact message", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Your message could not be sent. Please call us instead.").SetInternal(err)
	}

	if isHTMX(c) {
		return c.Render(http.StatusOK, "", partials.ContactFormView(partials.ContactForm{Sent: true}))
	}
	view.SetFlashSuccess(c, "Thanks for reaching out! We'll get back to you soon.")
	return c.Redirect(http.StatusSeeOther, routes.PageURL(originSnapshot(c, h.site.content.Catalog()), "contact"))
}

func (h *ContactHandler) renderForm(c echo.Context, status int, form partials.ContactForm) error {
	if isHTMX(c) {
		return c.Render(status, "", partials.ContactFormView(form))
	}
	cat := h.site.content.Catalog()
	state, err := selection.Restore(cat.CategoryIDs(), len(cat.About.Images), originSnapshot(c, cat))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return h.site.renderPage(c, status, cat, state.Snapshot(), form)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
