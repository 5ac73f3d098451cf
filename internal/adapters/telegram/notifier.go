package telegram

import (
	"fmt"
	"math"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/PSchramm12/ACM-Project/internal/adapters/config"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Notifier posts a one-message summary after an analysis run.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates the notifier or returns nil when no token is configured.
func NewNotifier(cfg *config.TelegramConfig) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Notifier{bot: bot, chatID: cfg.ChatID}, nil
}

// NotifyRun sends the run summary: post volume and the correlation results.
func (n *Notifier) NotifyRun(postCount int, results []models.CorrelationResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis run complete: %d posts\n", postCount)

	for _, res := range results {
		coeff := "undefined"
		if !math.IsNaN(res.Coefficient) {
			coeff = fmt.Sprintf("%.3f", res.Coefficient)
		}
		fmt.Fprintf(&b, "%s/%s: r=%s lag=%d n=%d\n",
			res.Signal, res.Method, coeff, res.Lag, res.SampleSize)
	}

	msg := tgbotapi.NewMessage(n.chatID, b.String())
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send run summary: %w", err)
	}
	return nil
}
