package visitors

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/dto"
	"github.com/GlebRadaev/gamemarket/pkg/utils"
)

type Service interface {
	TrackVisit(ctx context.Context, visit domain.Visit) error
}

type VisitorHandler struct {
	visitorService Service
}

func New(visitorService Service) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
	}
}

// TrackVisitor godoc
//
//	@Summary		Report an anonymous page view
//	@Description	Forwarded to the notification channel in the background
//	@Tags			Visitors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TrackVisitorRequestDTO	true	"Visit"
//	@Success		202		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/v1/track-visitor [post]
func (h *VisitorHandler) TrackVisitor(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackVisitorRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	visit := domain.Visit{
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		Language:  req.Language,
		Screen:    req.Screen,
		IP:        r.RemoteAddr,
	}
	if visit.UserAgent == "" {
		visit.UserAgent = r.UserAgent()
	}
	if err := h.visitorService.TrackVisit(r.Context(), visit); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Status: utils.StatusSuccess, Message: "Visit tracked"})
}
