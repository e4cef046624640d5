package internal

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	"werkstatt/ai"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	GRPCPort int    `env:"GRPC_PORT,default=9090"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	UploadDir      string `env:"UPLOAD_DIR,default=./data/uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES,default=5242880"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	// ADMIN_EMAILS is a comma separated list of accounts allowed to reset the feed.
	AdminEmails string `env:"ADMIN_EMAILS"`

	CharReplacement  string `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxContentLength int    `env:"MAX_CONTENT_LENGTH,default=5000"`

	NumberOfWorkers  int           `env:"NUMBER_OF_WORKERS,default=4"`
	BufferSize       int           `env:"BUFFER_SIZE,default=256"`
	ExpertReplyDelay time.Duration `env:"EXPERT_REPLY_DELAY,default=1500ms"`
	AIReplyDelay     time.Duration `env:"AI_REPLY_DELAY,default=1s"`
	SinkTimeout      time.Duration `env:"SINK_TIMEOUT,default=2s"`
	MetricInterval   time.Duration `env:"METRIC_INTERVAL,default=15s"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s"`

	GoogleAIAPIKey        string  `env:"GOOGLE_AI_API_KEY"`
	GeminiModel           string  `env:"GEMINI_MODEL,default=gemini-2.0-flash"`
	GeminiTemperature     float64 `env:"GEMINI_TEMPERATURE,default=0.7"`
	GeminiTopP            float64 `env:"GEMINI_TOP_P,default=0.95"`
	GeminiTopK            int     `env:"GEMINI_TOP_K,default=40"`
	GeminiMaxOutputTokens int     `env:"GEMINI_MAX_OUTPUT_TOKENS,default=1024"`
	MaxHistoryMessages    int     `env:"MAX_HISTORY_MESSAGES,default=20"`

	EnableDebugInspector bool `env:"ENABLE_DEBUG_INSPECTOR,default=false"`
}

// LoadConfig reads an optional .env file, then decodes the environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env file: %w", err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	switch {
	case c.NumberOfWorkers <= 0:
		return fmt.Errorf("NUMBER_OF_WORKERS must be positive, got %d", c.NumberOfWorkers)
	case c.BufferSize <= 0:
		return fmt.Errorf("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	case len(c.AuthSecret) < 16:
		return fmt.Errorf("AUTH_SECRET must hold at least 16 characters")
	}
	return nil
}

// Gemini maps the generation settings, the assistant is disabled when the key is empty.
func (c Config) Gemini() ai.GeminiConfig {
	return ai.GeminiConfig{
		APIKey:          c.GoogleAIAPIKey,
		Model:           c.GeminiModel,
		Temperature:     float32(c.GeminiTemperature),
		TopP:            float32(c.GeminiTopP),
		TopK:            float32(c.GeminiTopK),
		MaxOutputTokens: int32(c.GeminiMaxOutputTokens),
		MaxHistory:      c.MaxHistoryMessages,
	}
}

// Admins splits ADMIN_EMAILS, blanks are skipped.
func (c Config) Admins() []string {
	return lo.Compact(lo.Map(strings.Split(c.AdminEmails, ","), func(e string, _ int) string {
		return strings.TrimSpace(e)
	}))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
