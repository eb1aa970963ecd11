package domain

import (
	"context"
	"errors"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

const (
	defaultMessagePageSize = 50

	// The platform refuses larger batches; reject locally before any call.
	maxBulkDeleteSize = 100
)

type MessageDomain interface {
	GetMessages(context.Context, *model.GetMessagesRequest) (*model.GetMessagesResponse, error)
	SendMessage(context.Context, *model.SendMessageRequest) (*model.SendMessageResponse, error)
	DeleteMessage(context.Context, *model.DeleteMessageRequest) (*model.DeleteMessageResponse, error)
	BulkDeleteMessages(context.Context, *model.BulkDeleteMessagesRequest) (*model.BulkDeleteMessagesResponse, error)
}

type messageDomain struct {
	messageStore session.MessageStore
}

func NewMessageDomain(messageStore session.MessageStore) MessageDomain {
	return &messageDomain{messageStore: messageStore}
}

// GetMessages pages backwards from the "before" cursor and returns entries
// in the platform's reverse-chronological order, unaltered.
func (d *messageDomain) GetMessages(ctx context.Context, req *model.GetMessagesRequest) (*model.GetMessagesResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultMessagePageSize
	}

	messages, err := d.messageStore.Messages(ctx, channel.ID, limit, req.Before)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fetch messages: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch messages: %v", err)
	}

	out := make([]model.Message, 0, len(messages))
	for _, message := range messages {
		out = append(out, model.ConvertMessage(message))
	}

	return &model.GetMessagesResponse{
		Response: model.OK("Messages fetched successfully"),
		Messages: out,
	}, nil
}

func (d *messageDomain) SendMessage(ctx context.Context, req *model.SendMessageRequest) (*model.SendMessageResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Content == "" && req.Embed == nil {
		return nil, errorx.New(errorx.BadRequest, "Message must have content or an embed")
	}

	message, err := d.messageStore.Send(ctx, channel.ID, session.MessageSendParams{
		Content: req.Content,
		Embed:   req.Embed,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send message: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to send message: %v", err)
	}

	return &model.SendMessageResponse{
		Response: model.OK("Message sent successfully"),
		MessageData: model.SentMessage{
			ID:        message.ID,
			Content:   message.Content,
			Timestamp: message.Timestamp,
		},
	}, nil
}

func (d *messageDomain) DeleteMessage(ctx context.Context, req *model.DeleteMessageRequest) (*model.DeleteMessageResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	message, err := d.messageStore.Message(ctx, channel.ID, req.MessageID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, errorx.New(errorx.NotFound, "Message not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot fetch message: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch message: %v", err)
	}

	if err := d.messageStore.DeleteMessage(ctx, channel.ID, message.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete message: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to delete message: %v", err)
	}

	return &model.DeleteMessageResponse{
		Response: model.OK("Message deleted successfully"),
	}, nil
}

func (d *messageDomain) BulkDeleteMessages(ctx context.Context, req *model.BulkDeleteMessagesRequest) (*model.BulkDeleteMessagesResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.MessageIDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid message IDs")
	}

	if len(req.MessageIDs) > maxBulkDeleteSize {
		return nil, errorx.New(errorx.BadRequest, "Cannot delete more than 100 messages at once")
	}

	if err := d.messageStore.BulkDeleteMessages(ctx, channel.ID, req.MessageIDs); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot bulk delete messages: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to delete messages: %v", err)
	}

	return &model.BulkDeleteMessagesResponse{
		Response: model.OK("Messages deleted successfully"),
	}, nil
}
