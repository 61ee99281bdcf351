package notification

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
)

// Service is a composite notifier; channels without configuration are
// skipped silently.
type Service struct {
	discord *DiscordService
}

func NewService(log zerolog.Logger, webhookURL string) domain.Notifier {
	var discord *DiscordService
	if webhookURL != "" {
		discord = NewDiscordService(log, webhookURL)
	}

	return &Service{
		discord: discord,
	}
}

func (s *Service) SendSuccess(ctx context.Context, stats domain.Statistics) error {
	if s.discord != nil {
		if err := s.discord.SendSuccess(ctx, stats); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord != nil {
		if err := s.discord.SendError(ctx, err); err != nil {
			return err
		}
	}
	return nil
}
