package models

import "time"

// Target kinds a notification may reference. An empty kind means the
// notification has no target (e.g. "started following").
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// Notification verbs emitted by engagement actions.
const (
	VerbLiked       = "liked"
	VerbCommented   = "commented on"
	VerbNewFollower = "started following"
)

// Notification is a ledger entry recording "actor did verb to target",
// addressed to a recipient. The target reference is polymorphic
// (TargetType + TargetID) and is never cascade-deleted with its target;
// a stale reference renders as a null target.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	ActorID     uint      `gorm:"not null" json:"actor_id"`
	Verb        string    `gorm:"size:255;not null" json:"verb"`
	TargetType  string    `gorm:"size:20" json:"target_type,omitempty"`
	TargetID    uint      `json:"target_id,omitempty"`
	IsRead      bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relationships
	Actor User `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"actor"`
}

// NotificationView is the rendered form returned to clients. Target holds
// the target's display string, or null when the target row no longer exists.
type NotificationView struct {
	ID        uint      `json:"id"`
	Actor     User      `json:"actor"`
	Verb      string    `json:"verb"`
	Target    *string   `json:"target"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
