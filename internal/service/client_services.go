package service

import (
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	CatalogService ClientCatalogService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cacheTTL time.Duration, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.Sessions, serverAdapter, logger),
		CatalogService: NewClientCatalogService(localStore.Cache, localStore.Sessions, serverAdapter, cacheTTL, logger),
	}
}
