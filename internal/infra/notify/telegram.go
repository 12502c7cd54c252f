package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vkuzn/depot-stock/internal/domain/alerts"
	"github.com/vkuzn/depot-stock/internal/domain/fuel"
	"github.com/vkuzn/depot-stock/internal/domain/inventory"
	"github.com/vkuzn/depot-stock/internal/infra/metrics"
	"github.com/vkuzn/depot-stock/internal/report"
)

// Notifier periodically checks the low-stock view and pushes an alert to
// the depot chat, with the current stock workbook attached so the operator
// can act without opening a terminal.
type Notifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	agg      *alerts.Aggregator
	stores   []alerts.ItemLister
	ledger   *fuel.Ledger
	machines report.MachineLister
	log      *slog.Logger
}

func New(token string, chatID int64, agg *alerts.Aggregator, stores []alerts.ItemLister, ledger *fuel.Ledger, machines report.MachineLister, log *slog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{bot: bot, chatID: chatID, agg: agg, stores: stores, ledger: ledger, machines: machines, log: log}, nil
}

// Run sweeps until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.sweep(ctx)
		}
	}
}

func (n *Notifier) sweep(ctx context.Context) {
	low, err := n.agg.ComputeLowStock(ctx)
	if err != nil {
		n.log.Error("low-stock sweep failed", "err", err)
		return
	}

	total := 0
	for _, items := range low {
		total += len(items)
	}
	metrics.LowStockItems.Set(float64(total))
	if total == 0 {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, formatAlert(low))
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error("alert send failed", "err", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")

	stock, err := report.BuildStockWorkbook(ctx, n.stores, n.ledger)
	if err != nil {
		n.log.Error("stock workbook failed", "err", err)
		return
	}
	n.sendDocument(fmt.Sprintf("stock_%s.xlsx", stamp), stock, "Current stock snapshot")

	history, err := report.BuildFuelHistoryWorkbook(ctx, n.ledger, n.machines)
	if err != nil {
		n.log.Error("fuel history workbook failed", "err", err)
		return
	}
	n.sendDocument(fmt.Sprintf("fuel_history_%s.xlsx", stamp), history, "Fuel consumption history")
}

func (n *Notifier) sendDocument(name string, data []byte, caption string) {
	doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FileBytes{
		Name:  name,
		Bytes: data,
	})
	doc.Caption = caption
	if _, err := n.bot.Send(doc); err != nil {
		n.log.Error("document send failed", "name", name, "err", err)
	}
}

func formatAlert(low map[inventory.Category][]inventory.Item) string {
	var b strings.Builder
	b.WriteString("Low stock alert:\n")
	for _, cat := range inventory.Categories {
		for _, it := range low[cat] {
			fmt.Fprintf(&b, "- [%s] %s: %v%s (threshold %v)\n",
				cat.Label(), it.Name, it.Quantity, it.Unit, it.AlertThreshold)
		}
	}
	return b.String()
}
