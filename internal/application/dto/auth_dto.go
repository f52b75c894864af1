package dto

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
// Debe traer orgName (crea organización nueva, rol owner) o joinCode (se une
// a una existente, rol viewer); exactamente uno de los dos.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	OrgName  string `json:"orgName"`
	JoinCode string `json:"joinCode"`
}

// LoginRequest entrada para login por nombre de usuario.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MeResponse vista del usuario autenticado y su organización activa.
type MeResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OrgName     string `json:"orgName"`
	OrgJoinCode string `json:"orgJoinCode"`
	Role        string `json:"role"`
}

// LoginResponse salida del login. El token viaja además como cookie HttpOnly.
type LoginResponse struct {
	OK bool       `json:"ok"`
	Me MeResponse `json:"me"`
}
