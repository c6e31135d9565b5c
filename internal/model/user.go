package model

// Role tags the three fixed operator identities of the console.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
)

// User is an operator identity: an id, a display name and a role tag.
// There is no authentication step; one fixed identity exists per role.
type User struct {
	ID   int64  `json:"id" db:"user_id"`
	Name string `json:"name" db:"name"`
	Role Role   `json:"role" db:"role"`
}

// DefaultIdentities are the hard-coded per-role identities used by the
// session loop. They match the users seeded by the migrations.
var DefaultIdentities = map[Role]User{
	RoleAdmin:    {ID: 1, Name: "Admin", Role: RoleAdmin},
	RoleManager:  {ID: 2, Name: "Manager", Role: RoleManager},
	RoleCustomer: {ID: 3, Name: "Customer", Role: RoleCustomer},
}
