package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message and sets its ID and timestamp
func (r *MessageRepository) Create(msg *models.Message) error {
	now := time.Now().UTC()
	result, err := r.db.Exec(`
		INSERT INTO messages (sender_id, receiver_id, body, created_at)
		VALUES (?, ?, ?, ?)`,
		msg.SenderID, msg.ReceiverID, msg.Body, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get message id: %w", err)
	}
	msg.ID = id
	msg.CreatedAt = now
	return nil
}

// Conversation retrieves the message thread between two users with
// pagination, newest first
func (r *MessageRepository) Conversation(userID, peerID int64, filter models.MessageFilter) ([]models.Message, int64, error) {
	var total int64
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)`,
		userID, peerID, peerID, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT id, sender_id, receiver_id, body, read_at, created_at
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY id DESC
		LIMIT ? OFFSET ?`,
		userID, peerID, peerID, userID, filter.PageSize, (filter.Page-1)*filter.PageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.ReadAt, &msg.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, total, rows.Err()
}

// Conversations summarizes every thread the user participates in, most
// recent activity first
func (r *MessageRepository) Conversations(userID int64) ([]models.Conversation, error) {
	rows, err := r.db.Query(`
		SELECT t.peer_id, u.username, m.body, m.created_at
		FROM (
			SELECT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS peer_id,
			       MAX(id) AS last_id
			FROM messages
			WHERE sender_id = ? OR receiver_id = ?
			GROUP BY peer_id
		) t
		JOIN messages m ON m.id = t.last_id
		JOIN users u ON u.id = t.peer_id
		ORDER BY m.id DESC`,
		userID, userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.PeerID, &c.PeerUsername, &c.LastMessage, &c.LastSentAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	unread, err := r.unreadCounts(userID)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		conversations[i].UnreadCount = unread[conversations[i].PeerID]
	}
	return conversations, nil
}

// MarkConversationRead marks all messages from peer to user as read
func (r *MessageRepository) MarkConversationRead(userID, peerID int64) error {
	_, err := r.db.Exec(`
		UPDATE messages SET read_at = ?
		WHERE receiver_id = ? AND sender_id = ? AND read_at IS NULL`,
		time.Now().UTC(), userID, peerID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

func (r *MessageRepository) unreadCounts(userID int64) (map[int64]int64, error) {
	rows, err := r.db.Query(`
		SELECT sender_id, COUNT(*)
		FROM messages
		WHERE receiver_id = ? AND read_at IS NULL
		GROUP BY sender_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query unread counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var senderID, count int64
		if err := rows.Scan(&senderID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan unread count: %w", err)
		}
		counts[senderID] = count
	}
	return counts, rows.Err()
}
