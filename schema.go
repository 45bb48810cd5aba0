package envconf

import "fmt"

// Field é uma declaração: associa uma variável de ambiente (Key) a um membro
// do Record (Name) e ao conversor responsável pelo seu tipo (Parser).
type Field struct {
	Key    string
	Name   string
	Parser ParserFunc
}

// Schema é a lista ordenada de declarações de uma forma de configuração.
// A ordem de declaração é preservada como ordem dos membros, mas não tem
// significado semântico: nenhum campo depende de outro.
//
// Um Schema é construído de forma fluente e congelado por Compile; esquemas
// distintos compilados no mesmo processo são totalmente independentes, mesmo
// quando declaram nomes de campo ou chaves em comum.
type Schema struct {
	fields []Field
}

// NewSchema cria um esquema vazio.
func NewSchema() *Schema {
	return &Schema{}
}

// Add anexa uma declaração completa ao esquema.
func (s *Schema) Add(f Field) *Schema {
	s.fields = append(s.fields, f)
	return s
}

// Custom declara um campo com um conversor fornecido pelo chamador, para
// tipos fora do conjunto embutido.
func (s *Schema) Custom(key, name string, parser ParserFunc) *Schema {
	return s.Add(Field{Key: key, Name: name, Parser: parser})
}

// String declara um campo string.
func (s *Schema) String(key, name string) *Schema {
	return s.Custom(key, name, parseString)
}

// Bool declara um campo bool. O valor é interpretado por strconv.ParseBool
// sobre o valor em minúsculas ("true", "1", "false", "0", ...).
func (s *Schema) Bool(key, name string) *Schema {
	return s.Custom(key, name, parseBool)
}

// Int declara um campo int.
func (s *Schema) Int(key, name string) *Schema {
	return s.Custom(key, name, parseInt)
}

// Int64 declara um campo int64.
func (s *Schema) Int64(key, name string) *Schema {
	return s.Custom(key, name, parseInt64)
}

// Uint64 declara um campo uint64.
func (s *Schema) Uint64(key, name string) *Schema {
	return s.Custom(key, name, parseUint64)
}

// Float64 declara um campo float64.
func (s *Schema) Float64(key, name string) *Schema {
	return s.Custom(key, name, parseFloat64)
}

// Duration declara um campo time.Duration (ex: "500ms", "2s").
func (s *Schema) Duration(key, name string) *Schema {
	return s.Custom(key, name, parseDuration)
}

// Time declara um campo time.Time no formato RFC 3339.
func (s *Schema) Time(key, name string) *Schema {
	return s.Custom(key, name, parseTime)
}

// URL declara um campo *url.URL.
func (s *Schema) URL(key, name string) *Schema {
	return s.Custom(key, name, parseURL)
}

// IP declara um campo net.IP.
func (s *Schema) IP(key, name string) *Schema {
	return s.Custom(key, name, parseIP)
}

// UUID declara um campo uuid.UUID.
func (s *Schema) UUID(key, name string) *Schema {
	return s.Custom(key, name, parseUUID)
}

// Compile valida as declarações e as congela em um Loader. Nenhum acesso ao
// ambiente acontece aqui: a compilação apenas vincula os metadados dos campos
// ao carregador gerado.
//
// Nomes de membro duplicados são rejeitados com DuplicateFieldError. A mesma
// chave de ambiente pode aparecer sob dois membros distintos (inclusive com
// tipos distintos).
func (s *Schema) Compile(opts ...Option) (*Loader, error) {
	seen := make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		if f.Key == "" || f.Name == "" {
			return nil, fmt.Errorf("envconf: incomplete field declaration (key %q, name %q)", f.Key, f.Name)
		}
		if f.Parser == nil {
			return nil, fmt.Errorf("envconf: field %q has no parser", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, &DuplicateFieldError{Name: f.Name}
		}
		seen[f.Name] = struct{}{}
	}

	l := &Loader{
		fields: append([]Field(nil), s.fields...),
		opts:   defaultOptions(),
	}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l, nil
}

// MustCompile é similar ao Compile, mas panic em caso de esquema inválido.
// Útil para esquemas declarados em escopo de pacote.
func (s *Schema) MustCompile(opts ...Option) *Loader {
	l, err := s.Compile(opts...)
	if err != nil {
		panic(err)
	}
	return l
}
