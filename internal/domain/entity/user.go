package entity

import "time"

// User representa un usuario del sistema. A diferencia de las demás entidades
// no pertenece a ninguna organización: la relación se modela vía Membership.
type User struct {
	ID           string
	Name         string
	Email        string // único a nivel global
	PasswordHash string // formato "salt$hex", nunca plano después de persistir
	CreatedAt    time.Time
}
