package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

// ContactManager defines the contact operations exposed over HTTP.
type ContactManager interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, rawID string) (*models.Contact, error)
}

// NewListContactsHandler returns an HTTP handler listing contact submissions.
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /contacts [get]
// @Security CookieAuth
func NewListContactsHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := svc.List(r.Context())
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, contacts)
	}
}

// NewCreateContactHandler returns an HTTP handler for the public contact form.
// @Summary Submit contact form
// @Tags contacts
// @Accept json
// @Produce json
// @Param contactRequest body models.ContactRequest true "Contact"
// @Success 203 {object} models.MessageResponse "Contact Created!"
// @Failure 400 {object} models.MessageResponse "Empty Fields!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /contacts [post]
func NewCreateContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Empty Fields!")
			return
		}

		if _, err := svc.Create(r.Context(), req); err != nil {
			if errors.Is(err, services.ErrEmptyFields) {
				writeMessage(w, http.StatusBadRequest, "Empty Fields!")
				return
			}
			writeServerError(w, r, err)
			return
		}

		writeMessage(w, http.StatusNonAuthoritativeInfo, "Contact Created!")
	}
}

// NewDeleteContactHandler returns an HTTP handler deleting a contact submission.
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 203 {object} models.ContactResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /contacts/{id} [delete]
// @Security CookieAuth
func NewDeleteContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusNonAuthoritativeInfo, models.ContactResponse{
			Result:  c,
			Message: "Contact Deleted!",
		})
	}
}
