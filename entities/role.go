package entities

// Role names, fixed five-value enum. Rank defines who may manage whom:
// an actor can only manage users of strictly lower rank.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
	RoleSupport    = "support"
)

var roleRanks = map[string]int{
	RoleSuperAdmin: 5,
	RoleAdmin:      4,
	RoleManager:    3,
	RoleSupervisor: 2,
	RoleSupport:    1,
}

// AllRoles lists every role in descending rank order.
func AllRoles() []string {
	return []string{RoleSuperAdmin, RoleAdmin, RoleManager, RoleSupervisor, RoleSupport}
}

// RoleRank returns the rank of a role, or 0 for an unknown role.
func RoleRank(role string) int {
	return roleRanks[role]
}

// IsValidRole reports whether role belongs to the fixed enum.
func IsValidRole(role string) bool {
	_, ok := roleRanks[role]
	return ok
}

// IsFixedRole reports whether a role's permission set is locked. The two
// highest ranks always keep their seeded permissions.
func IsFixedRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}

// RolePermissions holds the capability flags for one role. Exactly one row
// exists per role; rows for fixed roles are never updated after seeding.
type RolePermissions struct {
	Role               string `gorm:"primaryKey" json:"role"`
	ManageUsers        bool   `json:"manage_users"`
	ManageRoles        bool   `json:"manage_roles"`
	ViewKnowledge      bool   `json:"view_knowledge"`
	ManageKnowledge    bool   `json:"manage_knowledge"`
	UseChat            bool   `json:"use_chat"`
	ViewLogs           bool   `json:"view_logs"`
	DeleteLogs         bool   `json:"delete_logs"`
	ManageModelConfig  bool   `json:"manage_model_config"`
	ManageCustomModels bool   `json:"manage_custom_models"`
	ManageCompany      bool   `json:"manage_company"`
	ManagePanel        bool   `json:"manage_panel"`
	ManageSMTP         bool   `json:"manage_smtp"`
	ManageBackups      bool   `json:"manage_backups"`
	ViewStats          bool   `json:"view_stats"`
}

// Capability names used by the HTTP permission gate.
const (
	CapManageUsers        = "manage_users"
	CapManageRoles        = "manage_roles"
	CapViewKnowledge      = "view_knowledge"
	CapManageKnowledge    = "manage_knowledge"
	CapUseChat            = "use_chat"
	CapViewLogs           = "view_logs"
	CapDeleteLogs         = "delete_logs"
	CapManageModelConfig  = "manage_model_config"
	CapManageCustomModels = "manage_custom_models"
	CapManageCompany      = "manage_company"
	CapManagePanel        = "manage_panel"
	CapManageSMTP         = "manage_smtp"
	CapManageBackups      = "manage_backups"
	CapViewStats          = "view_stats"
)

// Has reports whether the capability flag named cap is set.
func (p *RolePermissions) Has(cap string) bool {
	switch cap {
	case CapManageUsers:
		return p.ManageUsers
	case CapManageRoles:
		return p.ManageRoles
	case CapViewKnowledge:
		return p.ViewKnowledge
	case CapManageKnowledge:
		return p.ManageKnowledge
	case CapUseChat:
		return p.UseChat
	case CapViewLogs:
		return p.ViewLogs
	case CapDeleteLogs:
		return p.DeleteLogs
	case CapManageModelConfig:
		return p.ManageModelConfig
	case CapManageCustomModels:
		return p.ManageCustomModels
	case CapManageCompany:
		return p.ManageCompany
	case CapManagePanel:
		return p.ManagePanel
	case CapManageSMTP:
		return p.ManageSMTP
	case CapManageBackups:
		return p.ManageBackups
	case CapViewStats:
		return p.ViewStats
	default:
		return false
	}
}

// DefaultPermissions returns the seeded capability set for a role.
func DefaultPermissions(role string) RolePermissions {
	switch role {
	case RoleSuperAdmin, RoleAdmin:
		return RolePermissions{
			Role:        role,
			ManageUsers: true, ManageRoles: true,
			ViewKnowledge: true, ManageKnowledge: true,
			UseChat: true, ViewLogs: true, DeleteLogs: true,
			ManageModelConfig: true, ManageCustomModels: true,
			ManageCompany: true, ManagePanel: true, ManageSMTP: true,
			ManageBackups: true, ViewStats: true,
		}
	case RoleManager:
		return RolePermissions{
			Role:          role,
			ManageUsers:   true,
			ViewKnowledge: true, ManageKnowledge: true,
			UseChat: true, ViewLogs: true, DeleteLogs: true,
			ManageModelConfig: true, ManageCustomModels: true,
			ViewStats: true,
		}
	case RoleSupervisor:
		return RolePermissions{
			Role:          role,
			ViewKnowledge: true, ManageKnowledge: true,
			UseChat: true, ViewLogs: true,
			ViewStats: true,
		}
	case RoleSupport:
		return RolePermissions{
			Role:          role,
			ViewKnowledge: true,
			UseChat:       true,
			ViewLogs:      true,
		}
	default:
		return RolePermissions{Role: role}
	}
}
