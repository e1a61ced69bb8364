package service

import (
	"fmt"
	"math"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
)

// MessageService handles business logic for direct messages
type MessageService struct {
	messageRepo      *repository.MessageRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo *repository.MessageRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Send delivers a message from sender to the requested receiver
func (s *MessageService) Send(senderID int64, req models.SendMessageRequest) (*models.Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrSelfMessage
	}

	receiver, err := s.userRepo.GetByID(req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrNotFound
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	n := &models.Notification{
		UserID:    req.ReceiverID,
		Type:      models.NotificationMessage,
		ActorID:   senderID,
		SubjectID: msg.ID,
		Body:      "New message",
	}
	if err := s.notificationRepo.Create(n); err != nil {
		return nil, err
	}

	return msg, nil
}

// Conversation retrieves the thread with a peer, newest first
func (s *MessageService) Conversation(userID, peerID int64, filter models.MessageFilter) (*models.MessagesResponse, error) {
	peer, err := s.userRepo.GetByID(peerID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, ErrNotFound
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	if filter.PageSize > 200 {
		filter.PageSize = 200
	}

	messages, total, err := s.messageRepo.Conversation(userID, peerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	return &models.MessagesResponse{
		Data:       messages,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Conversations summarizes all threads of a user
func (s *MessageService) Conversations(userID int64) ([]models.Conversation, error) {
	return s.messageRepo.Conversations(userID)
}

// MarkConversationRead marks all messages from peer to user as read
func (s *MessageService) MarkConversationRead(userID, peerID int64) error {
	return s.messageRepo.MarkConversationRead(userID, peerID)
}
