//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"speech-search/internal/api/server"
	"speech-search/internal/app/batch"
	"speech-search/internal/config"
)

// InitializeServer builds the HTTP server and everything behind it
func InitializeServer(cfg *config.Config) (*server.Server, func(), error) {
	wire.Build(serverSet)
	return nil, nil, nil
}

// InitializeBatch builds a batch runner sharing one store with a search engine
func InitializeBatch(cfg *config.Config, progress *batch.ProgressManager) (*Batch, func(), error) {
	wire.Build(batchSet)
	return nil, nil, nil
}
