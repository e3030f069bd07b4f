// internal/service/message_service.go
package service

import (
	"context"
	"fmt"

	"msgboard/internal/domain"
	"msgboard/internal/repository"
)

// MessageService defines the interface for message-related operations.
type MessageService interface {
	List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error)
	Create(ctx context.Context, params domain.CreateMessageParams) (*domain.Message, error)
	UpdateContent(ctx context.Context, id int64, content *string) (*domain.Message, error)
	Delete(ctx context.Context, id int64) (*domain.Message, error)
}

// messageService implements the MessageService interface.
type messageService struct {
	dbExecutor  repository.DBExecutor
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(dbExecutor repository.DBExecutor, messageRepo repository.MessageRepository) MessageService {
	return &messageService{
		dbExecutor:  dbExecutor,
		messageRepo: messageRepo,
	}
}

func (s *messageService) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	messages, err := s.messageRepo.List(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) Create(ctx context.Context, params domain.CreateMessageParams) (*domain.Message, error) {
	message, err := s.messageRepo.Insert(ctx, s.dbExecutor, params)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) UpdateContent(ctx context.Context, id int64, content *string) (*domain.Message, error) {
	message, err := s.messageRepo.UpdateContent(ctx, s.dbExecutor, id, content)
	if err != nil {
		return nil, fmt.Errorf("update message %d: %w", id, err)
	}
	return message, nil
}

func (s *messageService) Delete(ctx context.Context, id int64) (*domain.Message, error) {
	message, err := s.messageRepo.Delete(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("delete message %d: %w", id, err)
	}
	return message, nil
}
