package backend

import (
	"context"
	"fmt"
)

// SendChatMessage forwards a support-chat message and returns the reply.
func (c *Client) SendChatMessage(ctx context.Context, message string) (string, error) {
	body := map[string]string{"message": message}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := c.post(ctx, "/chat/message", body, &resp); err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	return resp.Reply, nil
}
