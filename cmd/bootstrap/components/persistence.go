package components

import (
	"log/slog"

	"pro-video-services/internal/infra/memory"
	"pro-video-services/internal/infra/repository"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Stores groups the ledger and CRM stores for the selected storage driver.
type Stores struct {
	fx.Out

	Bookings       usecase.BookingStore
	Clients        usecase.ClientStore
	Projects       usecase.ProjectStore
	Communications usecase.CommunicationStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

func NewStores(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) Stores {
	if cfg.Storage.UsePostgres() {
		return Stores{
			Bookings:       repository.NewBookingRepository(pool, logger),
			Clients:        repository.NewClientRepository(pool, logger),
			Projects:       repository.NewProjectRepository(pool, logger),
			Communications: repository.NewCommunicationRepository(pool, logger),
		}
	}
	return Stores{
		Bookings:       memory.NewBookingStore(),
		Clients:        memory.NewClientStore(),
		Projects:       memory.NewProjectStore(),
		Communications: memory.NewCommunicationStore(),
	}
}
