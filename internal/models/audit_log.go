package models

// AuditLog records mutations of user-managed resources.
type AuditLog struct {
	Base
	Action       string `gorm:"size:64;not null;index" json:"action"`
	ResourceType string `gorm:"size:64;not null" json:"resource_type"`
	ResourceID   string `gorm:"type:varchar(36);index" json:"resource_id"`
	IPAddress    string `gorm:"size:64" json:"ip_address"`
	Changes      string `gorm:"type:text" json:"changes,omitempty"`
}
