package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value. The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigKeyLastUpdate holds the RFC3339 timestamp of the last
	// completed mirror refresh. Absence means "never updated".
	ConfigKeyLastUpdate = "last_update"

	// ConfigKeyDataDir overrides the default data directory.
	ConfigKeyDataDir = "data_dir"

	// ConfigKeyCreateOnBookmark controls whether bookmarking an unknown
	// number fabricates a bare record (legacy behaviour) or is rejected.
	ConfigKeyCreateOnBookmark = "allow_create_on_bookmark"
)
