package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
)

// DiscordService posts warm-run outcomes to a Discord webhook.
type DiscordService struct {
	log        zerolog.Logger
	webhookURL string
	httpClient *http.Client
}

func NewDiscordService(log zerolog.Logger, webhookURL string) *DiscordService {
	return &DiscordService{
		log:        log.With().Str("module", "notification").Str("type", "discord").Logger(),
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendSuccess sends a success notification with warm-run statistics.
func (s *DiscordService) SendSuccess(ctx context.Context, stats domain.Statistics) error {
	if s.webhookURL == "" {
		return nil
	}

	embed := discordEmbed{
		Title:       "socplan Warm Run Completed",
		Description: fmt.Sprintf("Course data for %s cached successfully", stats.Term.Name()),
		Color:       0x00ff00,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []discordField{
			{
				Name:   "Departments",
				Value:  fmt.Sprintf("%d", stats.Departments),
				Inline: true,
			},
			{
				Name:   "Courses",
				Value:  fmt.Sprintf("%d", stats.Courses),
				Inline: true,
			},
			{
				Name:   "Lecture Sections",
				Value:  fmt.Sprintf("%d", stats.Sections),
				Inline: true,
			},
			{
				Name:   "Failed Departments",
				Value:  fmt.Sprintf("%d", stats.Failures),
				Inline: true,
			},
		},
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

// SendError sends an error notification with error details.
func (s *DiscordService) SendError(ctx context.Context, err error) error {
	if s.webhookURL == "" {
		return nil
	}

	embed := discordEmbed{
		Title:       "socplan Warm Run Failed",
		Description: fmt.Sprintf("Warm run failed with error:\n```%s```", err.Error()),
		Color:       0xff0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

func (s *DiscordService) sendWebhook(ctx context.Context, payload discordWebhook) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.Wrap(err, "failed to create webhook request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send webhook request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook request failed with status %d", resp.StatusCode)
	}

	s.log.Debug().Msg("Discord notification sent successfully")
	return nil
}

type discordWebhook struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Color       int            `json:"color"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
