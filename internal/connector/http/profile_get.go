package http

import (
	"net/http"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/pkg/httpx"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

type GetProfileHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Get Profile Endpoint
//	@Description	Fetch the role-specific profile document registered under a contact handle
//	@Tags			Profiles
//	@Produce		json
//	@Param			role			query		string						true	"seeker, provider or admin"
//	@Param			whatsappNumber	query		string						false	"WhatsApp number, exclusive with email"
//	@Param			email			query		string						false	"email address, exclusive with whatsappNumber"
//	@Success		200				{object}	connectsdk.Seeker			"role-specific profile document"
//	@Failure		400				{object}	connectsdk.MessageResponse	"message"
//	@Failure		404				{object}	connectsdk.MessageResponse	"message"
//	@Failure		500				{object}	connectsdk.MessageResponse	"message"
//	@Router			/v1/profile [get].
func (h *GetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	role, err := domain.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid role")
		return
	}

	handle, ok := bindHandle(r.URL.Query().Get("whatsappNumber"), r.URL.Query().Get("email"))
	if !ok {
		httpx.WriteMessage(w, http.StatusBadRequest, "Exactly one of whatsappNumber or email is required")
		return
	}

	account, isNew, err := h.IdentityService.Resolve(ctx, role, handle)
	if err != nil {
		log.Error("profile lookup failed", "error", err, "role", role)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if isNew {
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountJSON(account))
}
