package models

import "time"

// Message represents a direct message between two users
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Body       string    `json:"body" db:"body"`
	ReadAt     *time.Time `json:"readAt,omitempty" db:"read_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// SendMessageRequest represents the payload for sending a message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required"`
	Body       string `json:"body" binding:"required,max=4000"`
}

// Conversation summarizes the message thread with one peer
type Conversation struct {
	PeerID       int64     `json:"peerId"`
	PeerUsername string    `json:"peerUsername"`
	LastMessage  string    `json:"lastMessage"`
	LastSentAt   time.Time `json:"lastSentAt"`
	UnreadCount  int64     `json:"unreadCount"`
}

// MessageFilter represents pagination for a conversation listing
type MessageFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// MessagesResponse represents a paginated conversation slice, newest first
type MessagesResponse struct {
	Data       []Message `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
