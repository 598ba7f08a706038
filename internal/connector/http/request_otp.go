package http

import (
	"errors"
	"net/http"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/pkg/connectsdk"
	"github.com/talentwire/jobconnect/pkg/httpx"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

type RequestOTPHandler struct {
	OTPService *service.OTPService

	// DevMode leaks the issued code in the response body. Never enable this
	// outside local development.
	DevMode bool
}

// ServeHTTP godoc
//
//	@Summary		Request OTP Endpoint
//	@Description	Issue a one-time code for the given role and contact handle and deliver it over WhatsApp or email
//	@Description	Re-requesting supersedes any earlier unconsumed code for the same role and handle
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.RequestOTPRequest	true	"role plus exactly one of whatsappNumber or email"
//	@Success		200		{object}	connectsdk.RequestOTPResponse	"message, otp (dev mode only)"
//	@Failure		400		{object}	connectsdk.MessageResponse		"message"
//	@Failure		500		{object}	connectsdk.MessageResponse		"message"
//	@Router			/v1/auth/request-otp [post].
func (h *RequestOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.RequestOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid role")
		return
	}

	handle, ok := bindHandle(req.WhatsAppNumber, req.Email)
	if !ok {
		httpx.WriteMessage(w, http.StatusBadRequest, "Exactly one of whatsappNumber or email is required")
		return
	}

	code, err := h.OTPService.Issue(ctx, role, handle)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, "Missing or invalid contact identifier")
		case errors.Is(err, service.ErrDelivery):
			log.Error("otp delivery failed", "error", err, "role", role)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to send OTP")
		default:
			log.Error("otp issue failed", "error", err, "role", role)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	resp := connectsdk.RequestOTPResponse{Message: "OTP sent successfully"}
	if h.DevMode {
		resp.OTP = code
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
