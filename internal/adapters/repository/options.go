package repository

import "time"

// Default Mongo store configuration constants.
const (
	defaultDatabase       = "gurtle"
	defaultCollection     = "scores"
	defaultConnectTimeout = 10 * time.Second
)

// Option applies a configuration option to the MongoStore.
type Option func(*MongoStore)

// WithDatabase overrides the database name.
func WithDatabase(name string) Option {
	return func(s *MongoStore) {
		if name != "" {
			s.database = name
		}
	}
}

// WithCollection overrides the collection name.
func WithCollection(name string) Option {
	return func(s *MongoStore) {
		if name != "" {
			s.collection = name
		}
	}
}

// WithConnectTimeout bounds the initial connect and ping at boot.
func WithConnectTimeout(d time.Duration) Option {
	return func(s *MongoStore) {
		if d > 0 {
			s.connectTimeout = d
		}
	}
}
