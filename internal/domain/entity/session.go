package entity

import "time"

// Session vincula un token opaco con un usuario y una organización concreta.
// El rol NO se guarda aquí: se resuelve contra Membership en cada request,
// así un cambio de rol aplica en la siguiente petición sin re-login.
type Session struct {
	Token     string
	UserID    string
	OrgID     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si la sesión venció respecto al instante dado.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
