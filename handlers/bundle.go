package handlers

import (
	"k2demo/services/catalog"
	"k2demo/services/checkout"
	"k2demo/services/demo"
	"k2demo/services/demolog"
	"k2demo/services/k2"
)

// HandlerBundle groups all endpoint handlers and their service dependencies.
type HandlerBundle struct {
	Catalog   *catalog.Catalog
	Engine    *k2.Engine
	DebugLogs *k2.DebugStore
	Checkout  *checkout.DefaultCheckoutService
	Bus       *demolog.Bus
	Settings  *demo.Settings
}

func NewHandlerBundle(
	cat *catalog.Catalog,
	engine *k2.Engine,
	debugLogs *k2.DebugStore,
	checkoutSvc *checkout.DefaultCheckoutService,
	bus *demolog.Bus,
	settings *demo.Settings,
) *HandlerBundle {
	return &HandlerBundle{
		Catalog:   cat,
		Engine:    engine,
		DebugLogs: debugLogs,
		Checkout:  checkoutSvc,
		Bus:       bus,
		Settings:  settings,
	}
}
