package critiqapi

// AuthResponse is returned by both login and registration
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// GameListResponse is the envelope every paginated game listing
// comes in. Page boundaries are server-authoritative: clients never
// compute totalPages locally.
type GameListResponse struct {
	Games       []*Game `json:"games"`
	CurrentPage int64   `json:"currentPage"`
	TotalPages  int64   `json:"totalPages"`
}
