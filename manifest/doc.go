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
// Package manifest constrói um envconf.Schema a partir de um manifesto YAML.
//
// O manifesto declara apenas a forma da configuração — os valores continuam
// vindo exclusivamente do ambiente do processo:
//
//	fields:
//	  - key: DB_HOST
//	    field: db_host
//	    type: string
//	  - key: DB_PORT
//	    field: db_port
//	    type: int
//	  - key: REQUEST_TIMEOUT
//	    field: request_timeout
//	    type: duration
//
// Uso:
//
//	schema, err := manifest.ParseFile("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	rec := schema.MustCompile().MustLoad()
package manifest
