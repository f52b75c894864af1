// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con la misma semántica que los adaptadores de PostgreSQL
// (aislamiento por organización, nil en los "no encontrado", ErrDuplicate
// en las violaciones de unicidad). Se usa en los tests de los casos de uso.
package memory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Store es el almacén compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	orgs        []*entity.Organization
	users       []*entity.User
	memberships []*entity.Membership
	sessions    map[string]*entity.Session

	products  []*entity.Product
	receipts  []*entity.Receipt
	shipments []*entity.Shipment
	items     []*entity.ShipmentItem
	nextSeq   int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*entity.Session)}
}
