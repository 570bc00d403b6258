package service

import (
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/adapter"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/store"
)

type Services struct {
	FamilySecretService FamilySecretService
	RoomKeyService      RoomKeyService
	MessageCipher       MessageCipherService
	ChatService         ChatCryptoService
	RefreshJob          ChatRefreshJob
}

func NewServices(
	storages *store.Storages,
	serverAdapter adapter.ChatServerAdapter,
	provider crypto.CipherProvider,
	deriver crypto.KeyDeriver,
	log *logger.Logger,
) *Services {
	secretSvc := NewFamilySecretService(storages.Keystore, provider, log)
	keySvc := NewRoomKeyService(deriver, log)
	cipherSvc := NewMessageCipherService(provider)
	chatSvc := NewChatCryptoService(secretSvc, keySvc, cipherSvc, serverAdapter, log)

	return &Services{
		FamilySecretService: secretSvc,
		RoomKeyService:      keySvc,
		MessageCipher:       cipherSvc,
		ChatService:         chatSvc,
		RefreshJob:          NewChatRefreshJob(chatSvc),
	}
}
