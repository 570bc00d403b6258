package client

import (
	"context"
	"fmt"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/adapter"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/config"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/service"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/store"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/workers"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

// App is the composition root. It owns the key caches, the keystore handles
// and the background workers, so their lifetimes end exactly when the App's
// does.
type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.Storages
	server   adapter.ChatServerAdapter
	services *service.Services
	workers  *workers.Workers
}

// NewApp wires the full client from configuration. Nothing is contacted or
// opened lazily: a returned App has a live keystore and a ready transport.
func NewApp(cfg *config.ClientConfig) (*App, error) {
	log := logger.NewClientLogger("client")

	provider := crypto.NewGCMProvider()
	deriver := crypto.NewPBKDF2Deriver()

	storages, err := store.NewStorages(cfg.Storage, cfg.App.DeviceKey, provider, log)
	if err != nil {
		return nil, fmt.Errorf("open storages: %w", err)
	}

	server := adapter.NewHTTPChatAdapter(cfg.Adapter, log)
	services := service.NewServices(storages, server, provider, deriver, log)

	return &App{
		cfg:      cfg,
		log:      log,
		storages: storages,
		server:   server,
		services: services,
		workers:  workers.New(),
	}, nil
}

// Login authenticates against the backend and returns the user id.
func (a *App) Login(ctx context.Context, email, password string) (int64, error) {
	return a.server.Login(ctx, email, password)
}

// EnterRoom warms the room key and starts the background refresh loop for
// the room. Entering a second room stops the previous room's refresh.
func (a *App) EnterRoom(ctx context.Context, roomID, familyID int64) error {
	if err := a.services.ChatService.PrepareRoom(ctx, roomID, familyID); err != nil {
		return err
	}

	a.workers.Stop()
	a.workers = workers.New(workers.NewRoomRefreshWorker(
		a.services.RefreshJob, roomID, familyID, a.cfg.Workers.RefreshInterval,
	))
	a.workers.Run(ctx)

	return nil
}

// LeaveRoom stops the background refresh of the current room.
func (a *App) LeaveRoom() {
	a.workers.Stop()
	a.workers = workers.New()
}

// Encrypt seals text for a room without sending it.
func (a *App) Encrypt(ctx context.Context, roomID, familyID int64, text string) (models.EncryptedPayload, error) {
	return a.services.ChatService.EncryptMessage(ctx, roomID, familyID, text)
}

// Secret returns the family's secret, optionally rotating it first. Rotation
// drops the persisted value, regenerates it and evicts the family's cached
// room keys.
func (a *App) Secret(ctx context.Context, familyID int64, rotate bool) (models.FamilySecret, error) {
	secret, err := a.services.FamilySecretService.GetOrCreateSecret(ctx, familyID, rotate)
	if err != nil {
		return models.FamilySecret{}, err
	}
	if rotate {
		a.services.RoomKeyService.EvictFamily(familyID)
	}
	return secret, nil
}

// Send encrypts and posts one message to a room.
func (a *App) Send(ctx context.Context, roomID, familyID int64, text string) (models.Message, error) {
	return a.services.ChatService.SendMessage(ctx, roomID, familyID, text)
}

// History loads and decrypts the room's message history.
func (a *App) History(ctx context.Context, roomID, familyID int64) ([]models.DecryptionOutcome, error) {
	return a.services.ChatService.LoadRoom(ctx, roomID, familyID)
}

// Receive decrypts one live message pushed by the backend.
func (a *App) Receive(ctx context.Context, familyID int64, msg models.Message) models.DecryptionOutcome {
	return a.services.ChatService.HandleIncoming(ctx, familyID, msg)
}

// Close stops background workers and releases storage handles.
func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}
