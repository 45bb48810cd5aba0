package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/envconf"
	"github.com/rs/zerolog"
)

// Conf descreve o comportamento do logger. Os três campos são obrigatórios
// quando carregados do ambiente via Setup, como todo campo do envconf.
type Conf struct {
	Enabled bool   `env:"LOG_ENABLED"`
	Level   string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format  string `env:"LOG_FORMAT" validate:"omitempty,oneof=json console"`
}

// Configure inicializa o logger global baseando-se na configuração fornecida.
func Configure(cfg Conf) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Define o output (JSON para produção, Console "bonito" para local)
	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// Setup carrega Conf do ambiente através do próprio envconf (LOG_ENABLED,
// LOG_LEVEL e LOG_FORMAT precisam estar definidos) e configura o logger.
func Setup(opts ...envconf.Option) (zerolog.Logger, error) {
	var cfg Conf
	if err := envconf.Bind(&cfg, append(opts, envconf.WithValidation())...); err != nil {
		return zerolog.Nop(), err
	}
	return Configure(cfg), nil
}

// MustSetup é similar ao Setup, mas panic em caso de erro.
func MustSetup(opts ...envconf.Option) zerolog.Logger {
	log, err := Setup(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
