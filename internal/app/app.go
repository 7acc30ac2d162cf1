package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/oui"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/sniffer/capture"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/storage"
	webserver "github.com/lcalzada-xor/wmap-dissect/internal/adapters/web/server"
	"github.com/lcalzada-xor/wmap-dissect/internal/config"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/ports"
	"github.com/lcalzada-xor/wmap-dissect/internal/telemetry"
)

// Application wires the capture reader, dissector, inventory, storage and
// HTTP server for one capture file.
type Application struct {
	Config    *config.Config
	SessionID string
	Reader    *capture.Reader
	Dissector *capture.Dissector
	Inventory *capture.Inventory
	Store     ports.NetworkStore
	Vendors   *oui.Registry
	WebServer *webserver.Server

	// Summary of the last Run.
	Summary capture.Summary
	// VendorStats is the OUI cache state when the registry was closed.
	VendorStats oui.CacheStats
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config:    cfg,
		SessionID: uuid.New().String(),
		Inventory: capture.NewInventory(),
	}

	if err := app.bootstrap(); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	telemetry.InitMetrics()

	linkType, err := capture.ParseLinkType(app.Config.LinkType)
	if err != nil {
		return err
	}
	app.Reader, err = capture.Open(app.Config.PcapPath, linkType)
	if err != nil {
		return err
	}

	app.Dissector = capture.NewDissector(app.Config.Debug)
	app.Dissector.Limit = app.Config.Limit

	if app.Config.DBPath != "" {
		if err := app.initStorage(); err != nil {
			return err
		}
	}

	if app.Config.OUIPath != "" {
		if err := app.initVendors(); err != nil {
			return err
		}
		app.Inventory.Vendors = app.Vendors
	}

	if app.Config.MetricsAddr != "" {
		var source ports.NetworkReader = app.Inventory
		if app.Store != nil {
			source = app.Store
		}
		app.WebServer = webserver.NewServer(app.Config.MetricsAddr, source)
	}

	return nil
}

func (app *Application) initStorage() error {
	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create DB directory: %w", err)
	}

	store, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to init network storage: %w", err)
	}
	app.Store = store
	return nil
}

func (app *Application) initVendors() error {
	reg, err := oui.Open(app.Config.OUIPath, oui.CacheConfig{
		Size:    app.Config.OUICache,
		MissTTL: app.Config.OUIMissTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to open OUI registry: %w", err)
	}
	app.Vendors = reg

	ctx := context.Background()
	if app.Config.OUIImport != "" {
		if err := app.importVendors(ctx); err != nil {
			return err
		}
	}

	count, err := reg.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count OUI registry: %w", err)
	}
	if count == 0 {
		slog.Warn("OUI registry is empty, vendors will not be resolved", "path", app.Config.OUIPath)
	}
	slog.Info("OUI registry ready", "path", app.Config.OUIPath, "prefixes", count)
	return nil
}

func (app *Application) importVendors(ctx context.Context) error {
	f, err := os.Open(app.Config.OUIImport)
	if err != nil {
		return fmt.Errorf("failed to open OUI list: %w", err)
	}
	defer f.Close()

	entries, err := oui.Load(f)
	if err != nil {
		return fmt.Errorf("failed to parse OUI list: %w", err)
	}
	if err := app.Vendors.Insert(ctx, entries); err != nil {
		return err
	}
	slog.Info("OUI list imported", "entries", len(entries), "source", app.Config.OUIImport)
	return nil
}

// Run decodes the capture, persists the inventory and, when the HTTP server
// is enabled, keeps serving until ctx is done.
func (app *Application) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	if app.WebServer != nil {
		go func() {
			if err := app.WebServer.Run(ctx); err != nil {
				errChan <- fmt.Errorf("web server error: %w", err)
			}
		}()
	}

	slog.Info("Dissecting capture",
		"path", app.Config.PcapPath,
		"link_type", app.Reader.LinkType().String(),
		"session", app.SessionID)

	sum, err := app.Dissector.Run(ctx, app.Reader, app.observe)
	app.Summary = sum
	if err != nil && ctx.Err() == nil {
		app.cleanup()
		return fmt.Errorf("dissect %s: %w", app.Config.PcapPath, err)
	}

	slog.Info("Capture decoded",
		"frames", sum.Frames,
		"decoded", sum.Decoded,
		"failed", sum.Failed,
		"networks", app.Inventory.Len())

	if err := app.persist(context.WithoutCancel(ctx)); err != nil {
		log.Printf("Error saving networks: %v", err)
	}

	if app.WebServer != nil && ctx.Err() == nil {
		slog.Info("Serving results. Press Ctrl+C to terminate.", "addr", app.Config.MetricsAddr)
		select {
		case <-ctx.Done():
			slog.Info("Termination signal received")
		case err := <-errChan:
			app.cleanup()
			return err
		}
	}

	return app.cleanup()
}

func (app *Application) observe(d domain.Dissection) {
	app.Inventory.Observe(d)
	if !app.Config.Debug {
		return
	}
	if d.Err != nil {
		slog.Debug("frame", "index", d.Index, "layer", d.Layer, "error", d.Err)
		return
	}
	if !d.IsManagement() {
		slog.Debug("frame",
			"index", d.Index,
			"layer", d.Layer,
			"src", d.Source,
			"dst", d.Destination,
			"next_layer", d.NextLayer)
		return
	}
	slog.Debug("frame",
		"index", d.Index,
		"layer", d.Layer,
		"kind", d.Kind,
		"src", d.Source,
		"dst", d.Destination,
		"bssid", d.BSSID,
		"ssid", d.SSID,
		"channel", d.Channel)
}

func (app *Application) persist(ctx context.Context) error {
	if app.Store == nil {
		return nil
	}
	networks := app.Inventory.Networks()
	if err := app.Store.SaveNetworks(ctx, app.SessionID, networks); err != nil {
		return err
	}
	slog.Info("Networks saved", "count", len(networks), "db", app.Config.DBPath)
	return nil
}

func (app *Application) cleanup() error {
	if app.Reader != nil {
		if err := app.Reader.Close(); err != nil {
			log.Printf("Error closing capture: %v", err)
		}
		app.Reader = nil
	}
	if app.Vendors != nil {
		app.VendorStats = app.Vendors.CacheStats()
		slog.Debug("OUI cache",
			"hits", app.VendorStats.Hits,
			"misses", app.VendorStats.Misses,
			"expired", app.VendorStats.Expired,
			"evicted", app.VendorStats.Evicted)
		if err := app.Vendors.Close(); err != nil {
			log.Printf("Error closing OUI registry: %v", err)
		}
		app.Vendors = nil
	}
	if app.Store != nil {
		if err := app.Store.Close(); err != nil {
			return err
		}
		app.Store = nil
	}
	return nil
}
