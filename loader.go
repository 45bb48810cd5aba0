package envconf

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

type options struct {
	source   Source
	log      zerolog.Logger
	validate bool
}

func defaultOptions() options {
	return options{
		source: EnvSource{},
		log:    zerolog.Nop(),
	}
}

// Option ajusta o comportamento de um carregamento (Compile ou Bind).
type Option func(*options)

// WithSource substitui a fonte de valores. O padrão é o ambiente do processo
// (EnvSource); testes normalmente injetam um MapSource.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger anexa um logger zerolog: cada campo carregado gera um evento de
// nível debug, e falhas no caminho fail-fast geram um evento de nível error
// antes do abort.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Loader executa o carregamento de uma forma de configuração compilada por
// Schema.Compile. Um Loader não guarda estado entre chamadas: cada Load relê
// a fonte do zero, então duas chamadas sucessivas podem observar valores
// diferentes se o ambiente mudou entre elas.
type Loader struct {
	fields []Field
	opts   options
}

// Load consulta a fonte e monta o Record, campo a campo, na ordem de
// declaração. A primeira falha interrompe o carregamento:
// chave ausente retorna *MissingError nomeando a chave; valor não conversível
// retorna *InvalidDataError carregando o valor bruto. Nenhum registro parcial
// é exposto.
func (l *Loader) Load() (*Record, error) {
	values := make(map[string]any, len(l.fields))
	for _, f := range l.fields {
		raw, ok := l.opts.source.Lookup(f.Key)
		if !ok {
			return nil, &MissingError{Key: f.Key}
		}
		value, err := f.Parser(raw)
		if err != nil {
			return nil, &InvalidDataError{Value: raw}
		}
		l.opts.log.Debug().Str("key", f.Key).Str("field", f.Name).Msg("variável carregada")
		values[f.Name] = value
	}
	return &Record{fields: l.fields, values: values}, nil
}

// MustLoad chama Load e, em caso de sucesso, retorna o mesmo Record que Load
// retornaria. Em caso de falha aborta o processo com uma mensagem nomeando a
// chave ausente ou o valor inválido. É o ponto de entrada fail-fast para
// programas que não querem tratar erro de configuração no local da chamada.
func (l *Loader) MustLoad() *Record {
	rec, err := l.Load()
	if err != nil {
		l.opts.log.Error().Err(err).Msg("falha ao carregar configuração")

		var missing *MissingError
		var invalid *InvalidDataError
		switch {
		case errors.As(err, &missing):
			panic(fmt.Sprintf("envconf: the value %s is missing", missing.Key))
		case errors.As(err, &invalid):
			panic(fmt.Sprintf("envconf: the data stored in %q is invalid", invalid.Value))
		default:
			panic(err)
		}
	}
	return rec
}
