package envconf

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Record é o agregado imutável produzido por um carregamento bem-sucedido:
// um valor tipado por declaração do esquema. Um Record nunca é construído
// parcialmente — ele existe apenas se todos os campos carregaram com sucesso.
type Record struct {
	fields []Field
	values map[string]any
}

// Len retorna o número de campos do registro.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields retorna os nomes dos membros na ordem de declaração.
func (r *Record) Fields() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Get retorna o valor do membro e se o membro existe. É o caminho seguro de
// acesso; os acessores tipados abaixo assumem nome e tipo corretos.
func (r *Record) Get(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

// get resolve o membro e faz a asserção de tipo. Nome desconhecido ou tipo
// errado são erros de programação e geram panic, como uma asserção de
// interface sem a forma com vírgula-ok.
func get[T any](r *Record, name string) T {
	value, ok := r.values[name]
	if !ok {
		panic(fmt.Sprintf("envconf: record has no field %q", name))
	}
	typed, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("envconf: field %q holds %T, not %T", name, value, typed))
	}
	return typed
}

// String retorna o membro string nomeado.
func (r *Record) String(name string) string {
	return get[string](r, name)
}

// Bool retorna o membro bool nomeado.
func (r *Record) Bool(name string) bool {
	return get[bool](r, name)
}

// Int retorna o membro int nomeado.
func (r *Record) Int(name string) int {
	return get[int](r, name)
}

// Int64 retorna o membro int64 nomeado.
func (r *Record) Int64(name string) int64 {
	return get[int64](r, name)
}

// Uint64 retorna o membro uint64 nomeado.
func (r *Record) Uint64(name string) uint64 {
	return get[uint64](r, name)
}

// Float64 retorna o membro float64 nomeado.
func (r *Record) Float64(name string) float64 {
	return get[float64](r, name)
}

// Duration retorna o membro time.Duration nomeado.
func (r *Record) Duration(name string) time.Duration {
	return get[time.Duration](r, name)
}

// Time retorna o membro time.Time nomeado.
func (r *Record) Time(name string) time.Time {
	return get[time.Time](r, name)
}

// URL retorna o membro *url.URL nomeado.
func (r *Record) URL(name string) *url.URL {
	return get[*url.URL](r, name)
}

// IP retorna o membro net.IP nomeado.
func (r *Record) IP(name string) net.IP {
	return get[net.IP](r, name)
}

// UUID retorna o membro uuid.UUID nomeado.
func (r *Record) UUID(name string) uuid.UUID {
	return get[uuid.UUID](r, name)
}
