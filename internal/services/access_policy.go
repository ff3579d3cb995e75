package services

import "github.com/terraincognita07/solfege/internal/models"

type Capability string

const (
	CapabilityReadStudents         Capability = "read_students"
	CapabilityReadAvailabilities   Capability = "read_availabilities"
	CapabilityReadGroups           Capability = "read_groups"
	CapabilityCreateGroups         Capability = "create_groups"
	CapabilitySuggestGroups        Capability = "suggest_groups"
	CapabilityExportAvailabilities Capability = "export_availabilities"
	CapabilityEditStudents         Capability = "edit_students"
	CapabilityManageSettings       Capability = "manage_settings"
	CapabilityManageUsers          Capability = "manage_users"
	CapabilityViewAnalytics        Capability = "view_analytics"
	CapabilityManageTestData       Capability = "manage_test_data"
)

// Session is the authenticated identity carried by a request.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

var teacherCapabilities = []Capability{
	CapabilityReadStudents,
	CapabilityReadAvailabilities,
	CapabilityReadGroups,
	CapabilityCreateGroups,
	CapabilitySuggestGroups,
	CapabilityExportAvailabilities,
}

var adminCapabilities = append(append([]Capability{}, teacherCapabilities...),
	CapabilityEditStudents,
	CapabilityManageSettings,
)

var superAdminCapabilities = append(append([]Capability{}, adminCapabilities...),
	CapabilityManageUsers,
	CapabilityViewAnalytics,
	CapabilityManageTestData,
)

type AccessPolicy struct {
	grants map[string]map[Capability]struct{}
}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{
		grants: map[string]map[Capability]struct{}{
			models.RoleStudent:    {},
			models.RoleTeacher:    capabilitySet(teacherCapabilities),
			models.RoleAdmin:      capabilitySet(adminCapabilities),
			models.RoleSuperAdmin: capabilitySet(superAdminCapabilities),
		},
	}
}

func capabilitySet(capabilities []Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(capabilities))
	for _, capability := range capabilities {
		set[capability] = struct{}{}
	}
	return set
}

// Authorize decides from the session alone; it never touches storage.
func (policy *AccessPolicy) Authorize(session *Session, capability Capability) error {
	if session == nil || session.UserID == "" {
		return ErrUnauthenticated
	}
	if !policy.Allows(session.Role, capability) {
		return ErrForbidden
	}
	return nil
}

func (policy *AccessPolicy) Allows(role string, capability Capability) bool {
	_, ok := policy.grants[role][capability]
	return ok
}
