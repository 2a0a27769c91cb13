package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const notifyTimeout = 5 * time.Second

type newsletterStore interface {
	Add(ctx context.Context, subscription *models.Newsletter) error
}

type contactStore interface {
	Add(ctx context.Context, contact *models.Contact) error
}

type newsletterHandler struct {
	responder  Responder
	logger     zerolog.Logger
	newsletter newsletterStore
}

func newNewsletterHandler(newsletter newsletterStore) newsletterHandler {
	logger := log.With().Str("handlerName", "newsletterHandler").Logger()
	return newsletterHandler{NewResponder(logger), logger, newsletter}
}

// subscribe adds an email to the newsletter list.
// @Summary Subscribe to newsletter
// @Tags Forms
// @Accept json
// @Produce json
// @Param subscription body models.NewsletterInput true "Email"
// @Success 201 {object} models.Newsletter
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Email already subscribed"
// @Failure 500 {object} ErrorResponse "Failed to subscribe to newsletter"
// @Router /api/newsletter [post]
func (h newsletterHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.NewsletterInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		subscription := input.ToNewsletter()
		if err := h.newsletter.Add(r.Context(), &subscription); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{
				Failure:  "Failed to subscribe to newsletter",
				Conflict: "Email already subscribed",
			}, err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, subscription)
	}
}

type contactNotifier interface {
	NotifyContact(ctx context.Context, contact *models.Contact) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contacts  contactStore
	notifier  contactNotifier // optional
}

func newContactHandler(contacts contactStore, notifier contactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()
	return contactHandler{NewResponder(logger), logger, contacts, notifier}
}

// sendMessage stores a contact form message and, when configured, forwards it
// to the site owner by email.
// @Summary Send contact message
// @Tags Forms
// @Accept json
// @Produce json
// @Param contact body models.ContactInput true "Message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 500 {object} ErrorResponse "Failed to send contact message"
// @Router /api/contact [post]
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ContactInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := input.ToContact()
		if err := h.contacts.Add(r.Context(), &contact); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError(errs.DatabaseMessages{Failure: "Failed to send contact message"}, err))
			return
		}

		h.logger.Info().Uint("contactId", contact.ID).Str("category", contact.Category).Msg("contact message received")
		if h.notifier != nil {
			ctx, cancel := context.WithTimeout(r.Context(), notifyTimeout)
			if err := h.notifier.NotifyContact(ctx, &contact); err != nil {
				// The message is stored; a failed email does not fail the request.
				h.logger.Warn().Err(err).Uint("contactId", contact.ID).Msg("contact notification failed")
			}
			cancel()
		}
		h.responder.WriteJSON(w, http.StatusCreated, contact)
	}
}
