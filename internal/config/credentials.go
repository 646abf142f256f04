package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables holding the credentials.
const (
	EnvPracticumToken = "TOKEN_YANDEX"
	EnvTelegramToken  = "TOKEN"
	EnvTelegramChatID = "CHAT_ID"
)

// Credentials are the three secrets the bot cannot run without.
type Credentials struct {
	PracticumToken string `env:"TOKEN_YANDEX" validate:"required"`
	TelegramToken  string `env:"TOKEN" validate:"required"`
	TelegramChatID string `env:"CHAT_ID" validate:"required"`
}

// ConfigError reports missing credentials. It is fatal and never retried.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// CredentialsFromEnv reads and checks the credentials using lookup
// (os.LookupEnv when nil).
func CredentialsFromEnv(lookup func(string) (string, bool)) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(k string) string {
		v, _ := lookup(k)
		return strings.TrimSpace(v)
	}
	c := Credentials{
		PracticumToken: get(EnvPracticumToken),
		TelegramToken:  get(EnvTelegramToken),
		TelegramChatID: get(EnvTelegramChatID),
	}
	return c, c.Validate()
}

// Validate returns a *ConfigError naming every missing variable.
func (c Credentials) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, envName(fe.StructField()))
	}
	return &ConfigError{Missing: missing}
}

func envName(field string) string {
	if f, ok := reflect.TypeOf(Credentials{}).FieldByName(field); ok {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
	}
	return field
}
