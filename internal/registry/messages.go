package registry

import (
	"fmt"

	"registration-api/internal/models"
)

func (s *Service) ListMessages() ([]models.MessageView, error) {
	messages, err := s.DB.GetMessages()
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}
	views := make([]models.MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, models.NewMessageView(message))
	}
	return views, nil
}

func (s *Service) AddMessage(patch models.MessagePatch) (models.MessageView, error) {
	var message models.Message
	patch.Apply(&message)

	if err := s.DB.CreateMessage(&message); err != nil {
		return models.MessageView{}, fmt.Errorf("create message: %w", err)
	}
	s.Logger.LogQuery("INSERT", "messages", fmt.Sprintf("message %d created", message.ID))
	return models.NewMessageView(message), nil
}

func (s *Service) UpdateMessage(id int64, patch models.MessagePatch) (models.MessageView, error) {
	message, err := s.DB.GetMessageByID(id)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("message %d: %w", id, err)
	}

	patch.Apply(message)
	if err := s.DB.UpdateMessage(*message); err != nil {
		return models.MessageView{}, fmt.Errorf("update message %d: %w", id, err)
	}
	s.Logger.LogQuery("UPDATE", "messages", fmt.Sprintf("message %d updated", id))
	return models.NewMessageView(*message), nil
}

func (s *Service) DeleteMessage(id int64) (models.MessageView, error) {
	message, err := s.DB.GetMessageByID(id)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("message %d: %w", id, err)
	}

	if err := s.DB.DeleteMessage(id); err != nil {
		return models.MessageView{}, fmt.Errorf("delete message %d: %w", id, err)
	}
	s.Logger.LogQuery("DELETE", "messages", fmt.Sprintf("message %d removed", id))
	return models.NewMessageView(*message), nil
}
