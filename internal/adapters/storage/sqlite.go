package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// SQLiteAdapter implements ports.NetworkStore using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// NetworkModel is the GORM model for observed networks.
type NetworkModel struct {
	BSSID           string `gorm:"primaryKey"`
	SessionID       string `gorm:"index"`
	SSID            string
	Hidden          bool
	Vendor          string
	Randomized      bool
	Channel         int
	Frequency       int
	Signal          int
	Security        string // OPEN, WEP, WPA2, WPA3, ...
	GroupCipher     string
	PairwiseCiphers string // JSON encoded []string
	AKMSuites       string // JSON encoded []string
	MFPRequired     bool
	Rates           string // JSON encoded []float64
	Frames          int
	FirstSeen       time.Time
	LastSeen        time.Time
}

// NewSQLiteAdapter initializes the database and migrates schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&NetworkModel{}); err != nil {
		return nil, err
	}

	db.Exec("CREATE INDEX IF NOT EXISTS idx_networks_ssid ON network_models(ssid)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_networks_security ON network_models(security)")

	return &SQLiteAdapter{db: db}, nil
}

// SaveNetworks upserts networks in a single transaction. Frame counts
// accumulate across sessions, the earliest sighting is kept, and an SSID
// learned earlier survives a session in which the network stayed hidden.
func (a *SQLiteAdapter) SaveNetworks(ctx context.Context, sessionID string, networks []domain.NetworkObservation) error {
	if len(networks) == 0 {
		return nil
	}

	models := make([]NetworkModel, len(networks))
	for i, n := range networks {
		models[i] = toModel(sessionID, n)
	}

	updates := append(clause.AssignmentColumns([]string{
		"session_id", "vendor", "randomized", "channel", "frequency", "signal", "security", "group_cipher",
		"pairwise_ciphers", "akm_suites", "mfp_required", "rates", "last_seen",
	}),
		clause.Assignment{Column: clause.Column{Name: "frames"}, Value: gorm.Expr("network_models.frames + excluded.frames")},
		clause.Assignment{Column: clause.Column{Name: "first_seen"}, Value: gorm.Expr("MIN(network_models.first_seen, excluded.first_seen)")},
		clause.Assignment{Column: clause.Column{Name: "ssid"}, Value: gorm.Expr("CASE WHEN excluded.ssid = '' THEN network_models.ssid ELSE excluded.ssid END")},
		clause.Assignment{Column: clause.Column{Name: "hidden"}, Value: gorm.Expr("CASE WHEN excluded.ssid = '' THEN network_models.hidden AND excluded.hidden ELSE excluded.hidden END")},
	)

	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bssid"}},
			DoUpdates: updates,
		}).CreateInBatches(models, 100).Error
	})
}

// ListNetworks retrieves all networks ordered by BSSID.
func (a *SQLiteAdapter) ListNetworks(ctx context.Context) ([]domain.NetworkObservation, error) {
	var models []NetworkModel
	if err := a.db.WithContext(ctx).Order("bssid").Find(&models).Error; err != nil {
		return nil, err
	}

	networks := make([]domain.NetworkObservation, len(models))
	for i, m := range models {
		networks[i] = toDomain(m)
	}
	return networks, nil
}

// GetNetwork retrieves a network by BSSID.
func (a *SQLiteAdapter) GetNetwork(ctx context.Context, bssid string) (*domain.NetworkObservation, error) {
	var model NetworkModel
	err := a.db.WithContext(ctx).First(&model, "bssid = ?", bssid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %w", ports.ErrNetworkNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	n := toDomain(model)
	return &n, nil
}

func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure interface compliance
var _ ports.NetworkStore = (*SQLiteAdapter)(nil)
