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

type SeekerProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleCreate godoc
//
//	@Summary		Create Seeker Profile Endpoint
//	@Description	Register a new seeker profile under a contact handle
//	@Description	The handle must not already hold a seeker profile
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.CreateSeekerRequest	true	"seeker fields, numeric values as strings"
//	@Success		201		{object}	connectsdk.CreateSeekerResponse	"message, seeker"
//	@Failure		400		{object}	connectsdk.MessageResponse		"message"
//	@Failure		500		{object}	connectsdk.MessageResponse		"message"
//	@Router			/v1/profile/seeker [post].
func (h *SeekerProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.CreateSeekerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	seeker, err := h.ProfileService.CreateSeeker(ctx, seekerInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			httpx.WriteMessage(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("seeker create failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, connectsdk.CreateSeekerResponse{
		Message: "Profile created successfully",
		Seeker:  seekerJSON(seeker),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Seeker Profile Endpoint
//	@Description	Replace the profile fields of the seeker registered under the given contact handle
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.CreateSeekerRequest	true	"seeker fields, numeric values as strings"
//	@Success		200		{object}	connectsdk.CreateSeekerResponse	"message, seeker"
//	@Failure		400		{object}	connectsdk.MessageResponse		"message"
//	@Failure		404		{object}	connectsdk.MessageResponse		"message"
//	@Failure		500		{object}	connectsdk.MessageResponse		"message"
//	@Router			/v1/profile/seeker [put].
func (h *SeekerProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.CreateSeekerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	handle, ok := bindHandle(req.WhatsAppNumber, req.Email)
	if !ok {
		httpx.WriteMessage(w, http.StatusBadRequest, "Exactly one of whatsappNumber or email is required")
		return
	}

	seeker, err := h.ProfileService.UpdateSeekerByHandle(ctx, handle, seekerInput(req))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("seeker update failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.CreateSeekerResponse{
		Message: "Profile updated successfully",
		Seeker:  seekerJSON(seeker),
	})
}

func seekerInput(req connectsdk.CreateSeekerRequest) service.SeekerInput {
	return service.SeekerInput{
		WhatsAppNumber:  req.WhatsAppNumber,
		Email:           req.Email,
		FullName:        req.FullName,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		CurrentCTC:      req.CurrentCTC,
		ExpectedCTC:     req.ExpectedCTC,
		ResumeURL:       req.ResumeURL,
		Bio:             req.Bio,
	}
}
