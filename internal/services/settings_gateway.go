package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/models"
	"floatclock/internal/repositories"
)

const saveTimeout = 5 * time.Second

// SettingsGateway loads and saves the settings record. Neither direction ever
// reports a storage failure to the caller: loads fall back to defaults and
// saves are logged and dropped.
type SettingsGateway interface {
	Load(ctx context.Context) models.Settings
	// Save queues a write of the full record and returns immediately. Writes
	// run one at a time in call order; a queued write that has been superseded
	// by a newer one is skipped.
	Save(settings models.Settings)
	// Flush waits for every Save issued before the call to finish.
	Flush(ctx context.Context) error
	Close()
}

type settingsGateway struct {
	repo  repositories.StoreEntryRepository
	store string
	key   string
	log   logger.Logger
	queue *serialQueue
	seq   atomic.Uint64
}

func NewSettingsGateway(repo repositories.StoreEntryRepository, store, key string, log logger.Logger) SettingsGateway {
	return &settingsGateway{
		repo:  repo,
		store: store,
		key:   key,
		log:   log,
		queue: newSerialQueue(),
	}
}

func (g *settingsGateway) Load(ctx context.Context) models.Settings {
	data, found, err := g.repo.Get(ctx, g.store, g.key)
	if err != nil {
		g.log.Error(fmt.Sprintf("settings: load %s/%s failed, using defaults: %v", g.store, g.key, err))
		return models.DefaultSettings()
	}
	if !found {
		g.log.Info(fmt.Sprintf("settings: nothing stored in %s/%s, using defaults", g.store, g.key))
		return models.DefaultSettings()
	}

	settings, rejected, err := models.DecodeSettings(data)
	if err != nil {
		g.log.Error(fmt.Sprintf("settings: stored record is corrupt, using defaults: %v", err))
		return models.DefaultSettings()
	}
	if len(rejected) > 0 {
		g.log.Warning("settings: ignored invalid stored fields: " + strings.Join(rejected, ", "))
	}
	return settings
}

func (g *settingsGateway) Save(settings models.Settings) {
	snapshot := settings.Clone()
	seq := g.seq.Add(1)
	if !g.queue.Enqueue(func() { g.write(seq, snapshot) }) {
		g.log.Warning("settings: save after close dropped")
	}
}

func (g *settingsGateway) write(seq uint64, settings models.Settings) {
	if seq != g.seq.Load() {
		return
	}
	data, err := models.EncodeSettings(settings)
	if err != nil {
		g.log.Error(fmt.Sprintf("settings: save failed: %v", err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := g.repo.Put(ctx, g.store, g.key, data); err != nil {
		g.log.Error(fmt.Sprintf("settings: save failed: %v", err))
		return
	}
	g.log.Debug("settings: saved")
}

func (g *settingsGateway) Flush(ctx context.Context) error {
	return g.queue.Flush(ctx)
}

func (g *settingsGateway) Close() {
	g.queue.Close()
}
