package model

// Settings is the singleton global configuration object.  Only owners
// may change it.  When MaintenanceMode is set, callers with role "user"
// are blocked from the read endpoints; admins and owners always pass.
type Settings struct {
	ClubName        string `json:"clubName"`
	ClubDescription string `json:"clubDescription"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}
