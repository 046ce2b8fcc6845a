package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	SeedFile         string `env:"BOOKDB_SEED_FILE"`
	Output           string `env:"BOOKDB_OUTPUT" validate:"oneof=text json"`
	SymmetricUpdates bool   `env:"BOOKDB_SYMMETRIC_UPDATES"`
	Prompt           string `env:"BOOKDB_PROMPT"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
}

// LoadEnvFiles reads .env and .env.local from the working directory.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds the configuration from the environment.
func Load() (Config, error) {
	symmetric, err := getBool("BOOKDB_SYMMETRIC_UPDATES", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SeedFile:         getEnv("BOOKDB_SEED_FILE", ""),
		Output:           NormalizeOutput(getEnv("BOOKDB_OUTPUT", OutputText)),
		SymmetricUpdates: symmetric,
		Prompt:           getEnv("BOOKDB_PROMPT", "bookdb> "),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NormalizeOutput lowercases an output format name.
func NormalizeOutput(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", fe.Field(), fmt.Sprint(fe.Value()), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
