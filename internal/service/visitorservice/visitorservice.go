package visitorservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/internal/notify"
)

const maxFieldLen = 300

type Service struct {
	notifier notify.NotifierI
}

func New(notifier notify.NotifierI) *Service {
	return &Service{notifier: notifier}
}

// TrackVisit reports a page view to the operators. Delivery happens in the background.
func (s *Service) TrackVisit(ctx context.Context, visit domain.Visit) error {
	visit.Page = clip(visit.Page)
	if visit.Page == "" {
		return fmt.Errorf("%w: page is required", domain.ErrValidation)
	}
	visit.Referrer = clip(visit.Referrer)
	visit.UserAgent = clip(visit.UserAgent)
	visit.Language = clip(visit.Language)
	visit.Screen = clip(visit.Screen)
	visit.IP = clip(visit.IP)

	s.notifier.Notify(ctx, notify.VisitorEvent(visit))
	return nil
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxFieldLen {
		return string(r[:maxFieldLen])
	}
	return s
}
