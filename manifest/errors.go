package manifest

import "fmt"

// UnknownTypeError é retornado quando uma entrada do manifesto declara um
// nome de tipo fora do conjunto reconhecido.
type UnknownTypeError struct {
	// Field é o nome do membro cuja declaração falhou.
	Field string
	// Type é o nome de tipo não reconhecido.
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("manifest: field %q declares unknown type %q", e.Field, e.Type)
}
