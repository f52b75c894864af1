package dto

// ChangeRoleRequest entrada para cambiar el rol de un miembro (solo owner).
type ChangeRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// OKResponse confirmación simple.
type OKResponse struct {
	OK bool `json:"ok"`
}
