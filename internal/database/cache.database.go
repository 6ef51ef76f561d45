package database

import (
	"context"
	"fmt"
	"time"
	"wardrobe/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

// Valkey database indexes.
const (
	// GENERAL_CACHE_INDEX (DB 0) holds anything not tied to a single user.
	GENERAL_CACHE_INDEX = iota

	// USER_CACHE_INDEX (DB 1) holds per-user data: no-repeat preferences and
	// the recent wear window used for eligibility.
	USER_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.Errorf("failed to initialize cache database", "address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = newCacheClient(address, port, GENERAL_CACHE_INDEX)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.User, err = newCacheClient(address, port, USER_CACHE_INDEX)
	if err != nil {
		cacheDB.General.Close()
		return log.Err("failed to create user valkey client", err)
	}

	s.Cache = cacheDB

	if config.DatabaseCacheReset != -1 {
		go clearCacheDB(config.DatabaseCacheReset, cacheDB)
	}

	return nil
}

func newCacheClient(address string, port, index int) (CacheClient, error) {
	return valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    index,
		},
	)
}

func clearCacheDB(index int, cacheDB Cache) {
	log := logger.New("database").File("cache.database").Function("clearCacheDB")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, dbName := cacheDB.byIndex(index)
	if client == nil {
		log.Warn("Invalid cache database index", "index", index)
		return
	}

	if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
		log.Er("Failed to clear cache database", err, "index", index, "dbName", dbName)
		return
	}

	log.Info("Successfully cleared cache database", "index", index, "dbName", dbName)
}

func (c Cache) byIndex(index int) (CacheClient, string) {
	switch index {
	case GENERAL_CACHE_INDEX:
		return c.General, "General"
	case USER_CACHE_INDEX:
		return c.User, "User"
	default:
		return nil, ""
	}
}
