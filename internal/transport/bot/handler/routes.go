package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"price_checker/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats []int64) {
	chats := bh.Group(th.AnyMessage())
	chats.Use(middleware.AllowedChats(allowedChats))

	chats.HandleMessage(h.OnStart, th.CommandEqual("start"))
	chats.HandleMessage(h.OnSearch, th.CommandEqual("search"))
}
