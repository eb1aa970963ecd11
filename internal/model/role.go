package model

// Role serializes the permission bitfield as a decimal string end-to-end;
// JSON numbers cannot carry the full 64 bits.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    int    `json:"position"`
	Permissions string `json:"permissions"`
}

type GetRolesRequest struct{}

type GetRolesResponse struct {
	Response
	Roles []Role `json:"roles"`
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Color       *int   `json:"color"`
	Hoist       *bool  `json:"hoist"`
	Permissions string `json:"permissions"`
}

type CreateRoleResponse struct {
	Response
	Role Role `json:"role"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Color       *int    `json:"color"`
	Hoist       *bool   `json:"hoist"`
	Permissions *string `json:"permissions"`
}

type UpdateRoleResponse struct {
	Response
	Role Role `json:"role"`
}

type DeleteRoleRequest struct{}

type DeleteRoleResponse struct {
	Response
}
