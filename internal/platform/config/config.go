package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	pstrings "hostelgate/pkg/platform/strings"
)

// EnvPrefix namespaces environment overrides, e.g. HOSTELGATE_ADDR.
const EnvPrefix = "HOSTELGATE"

// Credential is one static username/password pair.
type Credential struct {
	Username string `yaml:"username" envconfig:"USERNAME"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
}

// Verification holds the simulated scan pacing.
type Verification struct {
	FingerprintDelay time.Duration `yaml:"fingerprintDelay" envconfig:"FINGERPRINT_DELAY"`
	QRDelay          time.Duration `yaml:"qrDelay"          envconfig:"QR_DELAY"`
	ProcessingDelay  time.Duration `yaml:"processingDelay"  envconfig:"PROCESSING_DELAY"`
	ResultDisplay    time.Duration `yaml:"resultDisplay"    envconfig:"RESULT_DISPLAY"`
}

// Audit configures the optional Kafka audit sink.
type Audit struct {
	KafkaBrokers []string `yaml:"kafkaBrokers" envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `yaml:"kafkaTopic"   envconfig:"KAFKA_TOPIC"`
}

// Config captures process level configuration.
type Config struct {
	Addr            string        `yaml:"addr"            envconfig:"ADDR"`
	JWTSigningKey   string        `yaml:"jwtSigningKey"   envconfig:"JWT_SIGNING_KEY"`
	SessionTTL      time.Duration `yaml:"sessionTTL"      envconfig:"SESSION_TTL"`
	BcryptCost      int           `yaml:"bcryptCost"      envconfig:"BCRYPT_COST"`
	LogLevel        string        `yaml:"logLevel"        envconfig:"LOG_LEVEL"`
	LogFormat       string        `yaml:"logFormat"       envconfig:"LOG_FORMAT"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"  envconfig:"REQUEST_TIMEOUT"`
	SeedFile        string        `yaml:"seedFile"        envconfig:"SEED_FILE"`

	Admin        Credential   `yaml:"admin"        envconfig:"ADMIN"`
	Guard        Credential   `yaml:"guard"        envconfig:"GUARD"`
	Destinations []string     `yaml:"destinations" envconfig:"DESTINATIONS"`
	Verification Verification `yaml:"verification" envconfig:"VERIFICATION"`
	Audit        Audit        `yaml:"audit"        envconfig:"AUDIT"`
}

// DefaultDestinations is the fixed list offered when a resident checks out.
var DefaultDestinations = []string{
	"LHC (Lecture Hall Complex)",
	"CSC (Computer Services Centre)",
	"SAC (Student Activity Center)",
	"Library",
	"Sports Complex",
	"Main Building",
	"Out of Campus",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		JWTSigningKey:   "dev-secret-key-change-in-production",
		SessionTTL:      12 * time.Hour,
		BcryptCost:      10,
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: 10 * time.Second,
		RequestTimeout:  30 * time.Second,
		Admin:           Credential{Username: "admin", Password: "adminpassword"},
		Guard:           Credential{Username: "guard", Password: "guardpassword"},
		Destinations:    append([]string(nil), DefaultDestinations...),
		Verification: Verification{
			FingerprintDelay: 1500 * time.Millisecond,
			QRDelay:          0,
			ProcessingDelay:  500 * time.Millisecond,
			ResultDisplay:    5 * time.Second,
		},
		Audit: Audit{KafkaTopic: "hostelgate-audit"},
	}
}

// Load layers defaults, the optional YAML file at path, then environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Admin.Username = strings.ToLower(strings.TrimSpace(c.Admin.Username))
	c.Guard.Username = strings.ToLower(strings.TrimSpace(c.Guard.Username))
	c.Destinations = pstrings.DedupeAndTrim(c.Destinations)
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Admin.Username == "" || c.Admin.Password == "" {
		errs = append(errs, errors.New("admin credentials are required"))
	}
	if c.Guard.Username == "" || c.Guard.Password == "" {
		errs = append(errs, errors.New("guard credentials are required"))
	}
	if c.Admin.Username != "" && c.Admin.Username == c.Guard.Username {
		errs = append(errs, errors.New("admin and guard usernames must differ"))
	}
	if c.JWTSigningKey == "" {
		errs = append(errs, errors.New("jwt signing key is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session ttl must be positive"))
	}
	if c.Verification.FingerprintDelay < 0 || c.Verification.QRDelay < 0 ||
		c.Verification.ProcessingDelay < 0 || c.Verification.ResultDisplay < 0 {
		errs = append(errs, errors.New("verification delays must not be negative"))
	}
	if len(c.Audit.KafkaBrokers) > 0 && c.Audit.KafkaTopic == "" {
		errs = append(errs, errors.New("audit kafka topic is required when brokers are set"))
	}
	return errors.Join(errs...)
}
