package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// Organization representa un tenant del sistema: cada organización tiene su
// propio catálogo, recepciones, despachos y membresías, aislados del resto.
type Organization struct {
	ID        string
	Name      string
	JoinCode  string // código corto compartible para unirse a la organización
	CreatedAt time.Time
}

// NewJoinCode genera un código de 6 caracteres hex en mayúsculas.
// La unicidad se garantiza en la capa de persistencia (reintento ante colisión).
func NewJoinCode() string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return strings.ToUpper(hex.EncodeToString(buf))
}
