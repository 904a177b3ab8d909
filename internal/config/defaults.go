package config

import "time"

const defaultPort = 8080

var defaultAPI = API{
	BaseURL: "http://localhost:4000/api",
	Timeout: 5 * time.Second,
}

var defaultGateway = Gateway{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultKafka = Kafka{
	Brokers: nil,
	Topic:   "shipment.tracking",
	GroupID: "seller-console-tracker",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultAPI returns the default logistics API settings.
func DefaultAPI() API {
	return defaultAPI
}

// DefaultGateway returns the default gateway retry settings.
func DefaultGateway() Gateway {
	return defaultGateway
}

// DefaultKafka returns the default tracking consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default API rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
