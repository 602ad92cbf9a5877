package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// PaymentWebhook handler
// @Summary Payment gateway notification
// @Description Unauthenticated; the notification signature is verified instead
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body model.WebhookNotification true "Gateway notification"
// @Success 200 {object} model.WebhookResponse
// @Failure 400 {object} Response
// @Router /payment/webhook [post]
func (s *RestHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req model.WebhookNotification
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentApp.HandleWebhook(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
