package http

import (
	"errors"
	"net/http"

	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/connectsdk"
	"github.com/talentwire/jobconnect/pkg/httpx"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

type ProviderProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleCreate godoc
//
//	@Summary		Create Provider Profile Endpoint
//	@Description	Register a new provider (company) profile under a contact handle
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.CreateProviderRequest	true	"provider fields"
//	@Success		201		{object}	connectsdk.CreateProviderResponse	"message, provider"
//	@Failure		400		{object}	connectsdk.MessageResponse			"message"
//	@Failure		500		{object}	connectsdk.MessageResponse			"message"
//	@Router			/v1/profile/provider [post].
func (h *ProviderProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.CreateProviderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	provider, err := h.ProfileService.CreateProvider(ctx, providerInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			httpx.WriteMessage(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("provider create failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, connectsdk.CreateProviderResponse{
		Message:  "Profile created successfully",
		Provider: providerJSON(provider),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Provider Profile Endpoint
//	@Description	Replace the profile fields of the provider registered under the given contact handle
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.CreateProviderRequest	true	"provider fields"
//	@Success		200		{object}	connectsdk.CreateProviderResponse	"message, provider"
//	@Failure		400		{object}	connectsdk.MessageResponse			"message"
//	@Failure		404		{object}	connectsdk.MessageResponse			"message"
//	@Failure		500		{object}	connectsdk.MessageResponse			"message"
//	@Router			/v1/profile/provider [put].
func (h *ProviderProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.CreateProviderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	handle, ok := bindHandle(req.WhatsAppNumber, req.Email)
	if !ok {
		httpx.WriteMessage(w, http.StatusBadRequest, "Exactly one of whatsappNumber or email is required")
		return
	}

	provider, err := h.ProfileService.UpdateProviderByHandle(ctx, handle, providerInput(req))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("provider update failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.CreateProviderResponse{
		Message:  "Profile updated successfully",
		Provider: providerJSON(provider),
	})
}

func providerInput(req connectsdk.CreateProviderRequest) service.ProviderInput {
	return service.ProviderInput{
		CompanyWhatsAppNumber: req.WhatsAppNumber,
		CompanyEmail:          req.Email,
		CompanyName:           req.CompanyName,
		HRName:                req.HRName,
		HRDesignation:         req.HRDesignation,
		Website:               req.Website,
		About:                 req.About,
	}
}
