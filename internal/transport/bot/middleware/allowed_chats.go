package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowedChats drops updates from chats outside chatIDs. An empty list lets every
// chat through.
func AllowedChats(chatIDs []int64) th.Handler {
	allowed := make(map[int64]struct{}, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = struct{}{}
	}

	return func(ctx *th.Context, update telego.Update) error {
		if len(allowed) == 0 {
			return ctx.Next(update)
		}

		if update.Message == nil {
			return nil
		}

		if _, ok := allowed[update.Message.Chat.ID]; ok {
			return ctx.Next(update)
		}

		return nil
	}
}
