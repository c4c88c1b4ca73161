package config

import (
	"storefront-service/src/internal/gateway/storage"
	"storefront-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewObjectStorage(viper *viper.Viper, log log.Log) *storage.ObjectStorage {
	objectStorage, err := storage.NewObjectStorage(viper, log)
	if err != nil {
		log.Error("storage init", err.Error(), "config", "")
	}

	return objectStorage
}
