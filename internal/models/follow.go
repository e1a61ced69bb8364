package models

import "time"

// Follow represents a follower→followee edge
type Follow struct {
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FolloweeID int64     `json:"followeeId" db:"followee_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FollowStats holds the social counters for one user
type FollowStats struct {
	UserID         int64 `json:"userId"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}
