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

type VerifyOTPHandler struct {
	OTPService *service.OTPService
}

// ServeHTTP godoc
//
//	@Summary		Verify OTP Endpoint
//	@Description	Verify a previously issued code and resolve the account behind the role and contact handle
//	@Description	With bypass set the code check is skipped and the response only classifies the handle as new or existing
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		connectsdk.VerifyOTPRequest		true	"role, contact handle, otp or bypass flag"
//	@Success		200		{object}	connectsdk.VerifyOTPResponse	"message, status, isNewUser, user"
//	@Failure		400		{object}	connectsdk.MessageResponse		"message"
//	@Failure		500		{object}	connectsdk.MessageResponse		"message"
//	@Router			/v1/auth/verify-otp [post].
func (h *VerifyOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.VerifyOTPRequest
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

	if !req.Bypass && req.OTP == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "OTP is required")
		return
	}

	result, err := h.OTPService.Verify(ctx, role, handle, req.OTP, req.Bypass)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOtpMismatch):
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteMessage(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, "Missing or invalid contact identifier")
		default:
			log.Error("otp verify failed", "error", err, "role", role)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.VerifyOTPResponse{
		Message:   "OTP verified successfully",
		Status:    result.Status(),
		IsNewUser: result.IsNew,
		User:      accountJSON(result.Account),
	})
}
