package envconf

import "os"

// Source abstrai a tabela de variáveis de ambiente, permitindo substituir o
// ambiente real do processo por uma fonte determinística em testes.
type Source interface {
	// Lookup retorna o valor bruto da chave e se a chave está definida.
	// Uma chave definida com valor vazio é considerada presente.
	Lookup(key string) (string, bool)
}

// EnvSource lê valores do ambiente do processo. É a fonte padrão.
type EnvSource struct{}

// Lookup consulta a variável de ambiente via os.LookupEnv.
func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource é uma fonte em memória, útil para testes que não devem mutar o
// ambiente compartilhado do processo.
type MapSource map[string]string

// Lookup consulta a chave no mapa.
func (m MapSource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
