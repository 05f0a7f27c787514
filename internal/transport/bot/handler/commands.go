package handler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"price_checker/internal/domain/value"
	"price_checker/internal/presenter"
	"price_checker/internal/transport/bot/view"
	"price_checker/pkg/contextx"
	"price_checker/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnSearch handles "/search <keyword>".
func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	keyword, rejection := searchKeyword(msg.Text)
	if rejection != "" {
		return h.sendHTML(ctx, msg.Chat.ID, rejection)
	}

	if err := h.sendHTML(ctx, msg.Chat.ID, view.Searching); err != nil {
		return err
	}

	traceID := contextx.NewTraceID()

	comparison, err := h.svc.Compare(contextx.WithTraceID(ctx, traceID), keyword)
	if err != nil {
		logger(ctx).Warn(
			"svc.Compare",
			logx.Stringer(logx.FieldTraceID, traceID),
			slog.Int64(logx.FieldChatID, msg.Chat.ID),
			slog.String(logx.FieldKeyword, keyword.String()),
			logx.Error(err),
		)

		return h.sendHTML(ctx, msg.Chat.ID, view.SearchFailed)
	}

	cards := presenter.Cards(presenter.EntriesOf(comparison))

	return h.sendHTML(ctx, msg.Chat.ID, view.SearchResult(keyword.String(), cards))
}

// searchKeyword returns the keyword of a /search message, or the reply to send
// instead when there is nothing valid to search for.
func searchKeyword(text string) (value.Keyword, string) {
	keyword, err := value.ParseKeyword(commandArgument(text))

	switch {
	case err != nil:
		return "", view.KeywordTooLong
	case keyword.IsEmpty():
		return "", view.SearchUsage
	}

	return keyword, ""
}

// commandArgument returns the text after the command, "/search@bot iPhone 15" gives
// "iPhone 15".
func commandArgument(text string) string {
	_, argument, _ := strings.Cut(strings.TrimSpace(text), " ")
	return argument
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
