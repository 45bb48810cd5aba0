package envconf

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validador estrutural compartilhado (tags `validate`)
var structValidate = validator.New()

// WithValidation executa o go-playground/validator sobre a struct após um
// Bind bem-sucedido, honrando as tags `validate`. A opção é ignorada por
// Schema.Compile.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// Bind preenche uma struct pré-declarada com valores de variáveis de
// ambiente, mapeados pela tag `env`. Todo campo anotado é obrigatório:
// chave ausente retorna *MissingError e valor não conversível retorna
// *InvalidDataError, interrompendo o vínculo no primeiro campo que falhar,
// na ordem de declaração da struct. Campos sem tag são ignorados. Structs
// aninhadas (e ponteiros para structs) são processadas recursivamente.
//
// Tipos suportados: string, bool, inteiros e floats de qualquer largura,
// time.Duration, url.URL e qualquer tipo que implemente
// encoding.TextUnmarshaler (time.Time, net.IP, uuid.UUID, ...).
func Bind(target any, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return &InvalidTargetError{Value: reflect.TypeOf(target)}
	}

	if err := bindStruct(val.Elem(), o); err != nil {
		return err
	}

	if o.validate {
		if err := structValidate.Struct(target); err != nil {
			return fmt.Errorf("envconf: validation failed: %w", err)
		}
	}
	return nil
}

// MustBind é similar ao Bind, mas panic em caso de erro.
func MustBind(target any, opts ...Option) {
	if err := Bind(target, opts...); err != nil {
		panic(err)
	}
}

// bindStruct processa recursivamente uma struct
func bindStruct(val reflect.Value, o options) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Campos não exportados não podem ser preenchidos
		if !field.CanSet() {
			continue
		}

		envTag := fieldType.Tag.Get("env")

		if envTag == "" {
			// Sem tag: desce em structs aninhadas, ignora o resto
			if field.Kind() == reflect.Struct {
				if err := bindStruct(field, o); err != nil {
					return err
				}
			}
			if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
				if field.IsNil() {
					field.Set(reflect.New(field.Type().Elem()))
				}
				if err := bindStruct(field.Elem(), o); err != nil {
					return err
				}
			}
			continue
		}

		raw, ok := o.source.Lookup(envTag)
		if !ok {
			return &MissingError{Key: envTag}
		}

		if err := setFieldValue(field, raw); err != nil {
			var unsupported *UnsupportedTypeError
			if errors.As(err, &unsupported) {
				return err
			}
			return &InvalidDataError{Value: raw}
		}
		o.log.Debug().Str("key", envTag).Str("field", fieldType.Name).Msg("variável carregada")
	}

	return nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	urlType      = reflect.TypeOf(url.URL{})
)

// setFieldValue define o valor de um campo baseado no seu tipo
func setFieldValue(field reflect.Value, raw string) error {
	// Capacidade antes de kind: tipos nomeados como time.Time, net.IP e
	// uuid.UUID resolvem por TextUnmarshaler
	if field.CanAddr() {
		if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(raw))
		}
	}

	switch field.Type() {
	case durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil

	case urlType:
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(*u))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(uintValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}
