package model

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

type Author struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar,omitempty"`
}

type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Author      Author       `json:"author"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments"`
}

// SentMessage is the reduced projection returned after a send.
type SentMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type GetMessagesRequest struct {
	Limit  int    `form:"limit"`
	Before string `form:"before"`
}

type GetMessagesResponse struct {
	Response
	Messages []Message `json:"messages"`
}

// SendMessageRequest forwards the embed to the platform untouched, so the
// platform's own embed schema applies.
type SendMessageRequest struct {
	Content string                  `json:"content"`
	Embed   *discordgo.MessageEmbed `json:"embed"`
}

type SendMessageResponse struct {
	Response
	MessageData SentMessage `json:"messageData"`
}

type DeleteMessageRequest struct {
	MessageID string `uri:"messageId" json:"-"`
}

type DeleteMessageResponse struct {
	Response
}

type BulkDeleteMessagesRequest struct {
	MessageIDs []string `json:"messageIds"`
}

type BulkDeleteMessagesResponse struct {
	Response
}
