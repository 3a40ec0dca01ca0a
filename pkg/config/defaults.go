package config

import "time"

const (
	DefaultMongoURI          = "mongodb://hotel_mongo:27017"
	DefaultMongoDatabaseName = "hotel"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoOpTimeout    = 5 * time.Second

	DefaultPort = "6000"

	DefaultRoomServiceURL     = "http://hotel_backend:5000"
	DefaultRoomServiceTimeout = 3 * time.Second

	DefaultAdminUsername = "admin"
	DefaultAdminTokenTTL = 7 * 24 * time.Hour

	DefaultKafkaEventsTopic = "room-events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout = 15 * time.Second
	// Zero keeps long-lived websocket connections open; the request timeout
	// middleware still bounds regular API handlers.
	DefaultWriteTimeout    = 0 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"
)
