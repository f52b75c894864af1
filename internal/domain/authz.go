package domain

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Operation clasifica las operaciones de la API para la decisión de autorización.
type Operation int

const (
	// OpRead consulta de estado (productos, recepciones, despachos, documentos).
	OpRead Operation = iota
	// OpWriteInventory crear/editar/eliminar productos, recepciones y despachos.
	OpWriteInventory
	// OpManageRoles cambiar el rol de otro miembro de la organización.
	OpManageRoles
)

// Allowed es la función pura (rol, operación) -> permitido que protege cada
// mutación del ledger. Viewer solo lee, manager muta inventario, owner todo.
func Allowed(role string, op Operation) bool {
	switch op {
	case OpRead:
		return entity.ValidRole(role)
	case OpWriteInventory:
		return role == entity.RoleOwner || role == entity.RoleManager
	case OpManageRoles:
		return role == entity.RoleOwner
	default:
		return false
	}
}
