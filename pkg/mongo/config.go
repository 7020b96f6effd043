package mongo

import "time"

// Config represents the configuration for the database connection.
type Config struct {
	URI             string        `env:"MONGO_URI,required"`                         // URI is the connection string of the database.
	Database        string        `env:"MONGO_DB" envDefault:"plankit"`              // Database is the database name the service operates on.
	AppName         string        `env:"MONGO_APP_NAME" envDefault:"plankit"`        // AppName identifies this service in server logs and profiler output.
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout bounds the initial connection handshake.
	MaxPoolSize     uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize     uint64        `env:"MONGO_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"MONGO_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long an idle connection is kept in the pool.
	RetryWrites     bool          `env:"MONGO_RETRY_WRITES" envDefault:"true"`       // RetryWrites enables driver-level retry of write operations.
	RetryReads      bool          `env:"MONGO_RETRY_READS" envDefault:"true"`        // RetryReads enables driver-level retry of read operations.
	ConnectAttempts int           `env:"MONGO_CONNECT_ATTEMPTS" envDefault:"3"`      // ConnectAttempts is how many times Connect tries before giving up.
	ConnectBackoff  time.Duration `env:"MONGO_CONNECT_BACKOFF" envDefault:"5s"`      // ConnectBackoff is the pause between connection attempts.
}
