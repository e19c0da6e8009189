package server

import (
	"go.uber.org/zap"

	"VinaUrbana/internal/analytics"
	"VinaUrbana/internal/auth"
	"VinaUrbana/internal/catalog"
	"VinaUrbana/internal/engagement"
	"VinaUrbana/internal/experience"
	"VinaUrbana/internal/inventory"
	"VinaUrbana/internal/orders"
	"VinaUrbana/internal/partners"
	"VinaUrbana/internal/support"
)

const Version = "1.1.0"

// App bundles every module behind the single router. Users and Codec are
// injected so the binary can swap stores and token schemes; everything else
// is process-local by contract.
type App struct {
	Log   *zap.Logger
	Users auth.UserStore
	Codec auth.TokenCodec

	Auth       *auth.Server
	Catalog    *catalog.Server
	Inventory  *inventory.Server
	Orders     *orders.Server
	Support    *support.Server
	Engagement *engagement.Server
	Experience *experience.Server
	Partners   *partners.Server
	Analytics  *analytics.Server
}

func NewApp(log *zap.Logger, users auth.UserStore, codec auth.TokenCodec) *App {
	return &App{
		Log:   log,
		Users: users,
		Codec: codec,

		Auth:       &auth.Server{Log: log, Store: users, Codec: codec},
		Catalog:    &catalog.Server{Store: catalog.NewStore(), Log: log},
		Inventory:  &inventory.Server{Ledger: inventory.NewLedger(), Log: log},
		Orders:     &orders.Server{Store: orders.NewStore(), Log: log},
		Support:    support.NewServer(log),
		Engagement: engagement.NewServer(log),
		Experience: experience.NewServer(log),
		Partners:   partners.NewServer(log),
		Analytics:  &analytics.Server{Log: log},
	}
}
