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
package envconf

import (
	"fmt"
	"reflect"
)

// MissingError é retornado quando uma variável de ambiente declarada não está
// definida no momento do carregamento. A correção é externa ao processo:
// definir a variável antes de iniciar.
type MissingError struct {
	// Key é o nome da variável de ambiente ausente (ex: "DB_HOST").
	Key string
}

// Error retorna uma mensagem nomeando a chave ausente.
func (e *MissingError) Error() string {
	return fmt.Sprintf("envconf: the value %s is missing", e.Key)
}

// InvalidDataError é retornado quando o valor bruto de uma variável de
// ambiente não pôde ser convertido para o tipo declarado do campo.
type InvalidDataError struct {
	// Value é o valor bruto ofensor (ex: "potato" para um campo bool).
	Value string
}

// Error retorna uma mensagem carregando o valor bruto que falhou na conversão.
func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("envconf: the data stored in %q is invalid", e.Value)
}

// DuplicateFieldError é retornado por Schema.Compile quando dois campos do
// mesmo esquema declaram o mesmo nome de membro.
type DuplicateFieldError struct {
	// Name é o nome de membro duplicado.
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("envconf: duplicate field name %q in schema", e.Name)
}

// InvalidTargetError é retornado quando Bind recebe um argumento que não é
// um ponteiro não-nulo para uma struct.
type InvalidTargetError struct {
	// Value é o tipo refletido que foi fornecido (ex: reflect.String).
	Value reflect.Type
}

// Error retorna uma mensagem formatada indicando o tipo de argumento inválido.
func (e *InvalidTargetError) Error() string {
	if e.Value == nil {
		return "envconf: target must be a pointer to struct, got nil"
	}
	if e.Value.Kind() != reflect.Ptr {
		return fmt.Sprintf("envconf: target must be a pointer to struct, got %s", e.Value.Kind())
	}
	return fmt.Sprintf("envconf: target must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
}

// UnsupportedTypeError é retornado quando o tipo de um campo anotado
// (ex: map, slice, chan) não possui conversão a partir de string.
type UnsupportedTypeError struct {
	// Type é o tipo refletido do campo não suportado.
	Type reflect.Type
}

// Error retorna uma mensagem indicando o tipo que não possui suporte.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envconf: unsupported type %s", e.Type)
}
