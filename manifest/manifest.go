package manifest

import (
	"fmt"
	"os"

	"github.com/raywall/envconf"
	"gopkg.in/yaml.v3"
)

// Entry é uma declaração de campo no manifesto: a variável de ambiente, o
// nome do membro no Record e o nome do tipo alvo.
type Entry struct {
	Key   string `yaml:"key"`
	Field string `yaml:"field"`
	Type  string `yaml:"type"`
}

type document struct {
	Fields []Entry `yaml:"fields"`
}

// Parse interpreta o manifesto YAML e retorna o esquema equivalente, com os
// campos na ordem do documento. Tipos reconhecidos: string, bool, int,
// int64, uint64, float64, duration, time, url, ip e uuid.
func Parse(data []byte) (*envconf.Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: invalid yaml: %w", err)
	}

	schema := envconf.NewSchema()
	for _, e := range doc.Fields {
		switch e.Type {
		case "string":
			schema.String(e.Key, e.Field)
		case "bool":
			schema.Bool(e.Key, e.Field)
		case "int":
			schema.Int(e.Key, e.Field)
		case "int64":
			schema.Int64(e.Key, e.Field)
		case "uint64":
			schema.Uint64(e.Key, e.Field)
		case "float64":
			schema.Float64(e.Key, e.Field)
		case "duration":
			schema.Duration(e.Key, e.Field)
		case "time":
			schema.Time(e.Key, e.Field)
		case "url":
			schema.URL(e.Key, e.Field)
		case "ip":
			schema.IP(e.Key, e.Field)
		case "uuid":
			schema.UUID(e.Key, e.Field)
		default:
			return nil, &UnknownTypeError{Field: e.Field, Type: e.Type}
		}
	}
	return schema, nil
}

// ParseFile lê o manifesto do caminho indicado e delega para Parse.
func ParseFile(path string) (*envconf.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	return Parse(data)
}
