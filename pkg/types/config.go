package types

import "time"

// HTTPConfig holds shared HTTP settings used by the upstream clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "protein-viewer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 and 503 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// UniProtConfig holds settings for the UniProtKB annotation source.
type UniProtConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the UniProtKB REST root (default https://rest.uniprot.org/uniprotkb).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// EvidenceFilter lists evidence codes (e.g. "ECO:0000269") applied when
	// a caller does not pass its own filter.
	EvidenceFilter []string `json:"evidence_filter,omitempty" yaml:"evidence_filter,omitempty" mapstructure:"evidence_filter"`

	// AccessionQuery is the query used by the accessions export.
	AccessionQuery string `json:"accession_query" yaml:"accession_query" mapstructure:"accession_query"`
}

// AlphaFoldConfig holds settings for the AlphaFold DB prediction API.
type AlphaFoldConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the prediction endpoint root (default https://alphafold.ebi.ac.uk/api/prediction).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// CacheConfig holds settings for the local record cache.
type CacheConfig struct {
	// Enabled turns the SQLite record cache on.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding records.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// TTL is how long a cached record is served before it is refetched.
	// Zero means cached records never expire.
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":5000").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// DefaultColor is the viewer color scheme used when a request has none.
	DefaultColor string `json:"default_color" yaml:"default_color" mapstructure:"default_color"`
}

// Config groups every component configuration.
type Config struct {
	UniProt   UniProtConfig   `json:"uniprot" yaml:"uniprot" mapstructure:"uniprot"`
	AlphaFold AlphaFoldConfig `json:"alphafold" yaml:"alphafold" mapstructure:"alphafold"`
	Cache     CacheConfig     `json:"cache" yaml:"cache" mapstructure:"cache"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
	Debug     bool            `json:"debug" yaml:"debug" mapstructure:"debug"`
}

const (
	DefaultUserAgent      = "protein-viewer/0.1"
	DefaultUniProtURL     = "https://rest.uniprot.org/uniprotkb"
	DefaultAlphaFoldURL   = "https://alphafold.ebi.ac.uk/api/prediction"
	DefaultAccessionQuery = "(reviewed:true) AND (annotation_score:5)"
)

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a value.
func DefaultConfig() Config {
	httpCfg := HTTPConfig{
		Timeout:    10 * time.Second,
		UserAgent:  DefaultUserAgent,
		MaxRetries: 3,
	}
	return Config{
		UniProt: UniProtConfig{
			HTTPConfig:     httpCfg,
			BaseURL:        DefaultUniProtURL,
			AccessionQuery: DefaultAccessionQuery,
		},
		AlphaFold: AlphaFoldConfig{
			HTTPConfig: httpCfg,
			BaseURL:    DefaultAlphaFoldURL,
		},
		Cache: CacheConfig{
			Dir: "cache",
			TTL: 7 * 24 * time.Hour,
		},
		Server: ServerConfig{
			Addr:         ":5000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			DefaultColor: "lDDT",
		},
	}
}
