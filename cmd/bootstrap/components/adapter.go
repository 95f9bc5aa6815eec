package components

import (
	"context"
	"log/slog"

	"commerce-actions/internal/infra/calendar"
	"commerce-actions/internal/infra/catalog"
	"commerce-actions/internal/infra/lock"
	"commerce-actions/internal/infra/mail"
	"commerce-actions/internal/infra/memory"
	"commerce-actions/internal/infra/postgres"
	"commerce-actions/internal/pkg/config"
	"commerce-actions/internal/usecase/commands"
	"commerce-actions/internal/usecase/queries"
	"commerce-actions/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapter",
	fx.Provide(
		NewAdapterTimeout,
		NewCalendar,
		NewMailer,
		NewLocker,
		NewCommerceBackend,
		fx.Annotate(
			catalog.NewBuiltinRecommendations,
			fx.As(new(queries.RecommendationCatalog)),
		),
	),
)

func NewAdapterTimeout(cfg config.Config) shared.AdapterTimeout {
	return shared.AdapterTimeout(cfg.Action.AdapterTimeout)
}

func NewCalendar(cfg config.Config, logger *slog.Logger) (commands.Calendar, error) {
	if !cfg.Calendar.UsesGoogle() {
		logger.Warn("GOOGLE_SERVICE_ACCOUNT_FILE not set, using in-memory calendar",
			slog.String("calendar_id", cfg.Calendar.CalendarID))
		return calendar.NewMemory(cfg.Calendar.CalendarID), nil
	}
	return calendar.NewGoogle(context.Background(), cfg.Calendar, logger)
}

func NewMailer(cfg config.Config, logger *slog.Logger) commands.Mailer {
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP_SERVER not set, notifications are only logged")
		return mail.NewLog(logger)
	}
	return mail.NewSMTP(cfg.SMTP, logger)
}

func NewLocker(cfg config.Config, client *redis.Client, logger *slog.Logger) (commands.Locker, error) {
	if client == nil {
		return lock.NewLocal(), nil
	}
	if err := cfg.Redis.CheckLockLease(cfg.Action.DefaultTimeout); err != nil {
		return nil, err
	}
	return lock.NewRedis(client, cfg.Redis.LockTTL, logger), nil
}

type CommerceBackend struct {
	fx.Out

	CartWriter   commands.CartWriter
	CartReader   queries.CartReadStore
	Appointments commands.AppointmentBook
	BookedRanges queries.BookedRangeReader
	Inventory    queries.InventoryReadStore
	CRM          commands.CRM
	Messenger    commands.Messenger
	Promotions   commands.PromotionIssuer
}

// NewCommerceBackend selects Postgres when a pool is configured and the
// in-memory demo backend otherwise. Each store serves both its write and
// read port.
func NewCommerceBackend(pool *pgxpool.Pool, logger *slog.Logger) CommerceBackend {
	if pool != nil {
		carts := postgres.NewCartStore(pool, logger)
		book := postgres.NewAppointmentBook(pool, logger)
		return CommerceBackend{
			CartWriter:   carts,
			CartReader:   carts,
			Appointments: book,
			BookedRanges: book,
			Inventory:    postgres.NewInventory(pool, logger),
			CRM:          postgres.NewCRM(pool, logger),
			Messenger:    postgres.NewOutbox(pool, logger),
			Promotions:   postgres.NewPromotionStore(pool, logger),
		}
	}

	carts := memory.NewCartStore(memory.DemoProducts, logger)
	book := memory.NewAppointmentBook(logger)
	return CommerceBackend{
		CartWriter:   carts,
		CartReader:   carts,
		Appointments: book,
		BookedRanges: book,
		Inventory:    memory.NewInventory(logger),
		CRM:          memory.NewCRM(),
		Messenger:    memory.NewOutbox(logger),
		Promotions:   memory.NewPromotionStore(logger),
	}
}
