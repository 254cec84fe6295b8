package lexidex

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver    string
	addrs     []string
	password  string
	keyPrefix string
}

// WithMemory selects the in-memory store (default).
func WithMemory() Option {
	return func(c *clientConfig) {
		c.driver = "memory"
	}
}

// WithRedis selects the Redis store at the given addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = addrs
	}
}

// WithPassword sets the database password (redis driver only).
func WithPassword(password string) Option {
	return func(c *clientConfig) {
		c.password = password
	}
}

// WithKeyPrefix overrides the storage key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}
