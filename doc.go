// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package envconf fornece um carregador declarativo de configuração a partir
// de variáveis de ambiente: dado um conjunto fixo de declarações
// (variável, campo, tipo), produz um registro tipado, convertendo cada valor
// bruto para o tipo declarado e reportando exatamente qual chave estava
// ausente ou qual valor falhou na conversão.
//
// Visão Geral:
// Todo campo declarado é obrigatório e escalar — não há valores padrão nem
// campos opcionais. O carregamento é executado em duas camadas: uma função
// pura que retorna um erro recuperável, e um invólucro fail-fast que aborta
// o processo para aplicações que exigem "configuração válida ou o programa
// não sobe".
//
// Duas frentes sobre o mesmo carregador:
//
// 1. Schema (compilação de esquema):
// Uma lista ordenada de declarações é compilada em um Loader; cada chamada a
// Load relê o ambiente e produz um Record imutável com acessores tipados.
//
//	loader := envconf.NewSchema().
//		String("NAME", "name").
//		Int("AGE", "age").
//		MustCompile()
//
//	rec, err := loader.Load()
//	if err != nil {
//		// *envconf.MissingError ou *envconf.InvalidDataError
//	}
//	fmt.Println(rec.String("name"), rec.Int("age"))
//
// 2. Bind (vínculo por reflection):
// Popula uma struct pré-declarada a partir da tag `env`. Diferente de
// carregadores convencionais, todo campo anotado é obrigatório.
//
//	type Config struct {
//		Host string `env:"DB_HOST"`
//		Port int    `env:"DB_PORT"`
//	}
//
//	var cfg Config
//	if err := envconf.Bind(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Erros Tipados:
// O carregamento distingue "chave não definida" (MissingError, carrega o nome
// da chave) de "valor presente mas não conversível" (InvalidDataError,
// carrega o valor bruto ofensor). A falha é reportada no primeiro campo que
// falhar, na ordem de declaração.
//
// Fontes Injetáveis:
// A tabela de ambiente é acessada através da interface Source; testes podem
// substituir o ambiente real por um MapSource determinístico em memória.
package envconf
