package models

import "time"

// Follow is a directed edge meaning FollowerID follows FollowedID.
// The composite unique index keeps at most one edge per ordered pair.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID uint      `json:"follower_id" gorm:"not null;index:idx_follow_pair,unique"`
	FollowedID uint      `json:"followed_id" gorm:"not null;index:idx_follow_pair,unique;index"`
	Follower   User      `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed   User      `json:"-" gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"created_at"`
}
