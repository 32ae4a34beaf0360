package sender

import (
	"time"

	"github.com/gotd/td/tg"

	"github.com/tolmachov/tgcompose/internal/styling"
)

// Options carries the optional knobs of an outgoing message. Zero values
// mean "not requested": the corresponding fields stay off the wire
// entirely rather than being sent as explicit false.
type Options struct {
	Mode           styling.Mode
	DisablePreview bool
	Silent         bool
	ReplyTo        int
	ScheduleDate   time.Time
	Markup         tg.ReplyMarkupClass
}

// BuildRequest assembles a send request from the already-parsed text.
// Boolean options are set only when true and value options only when
// provided, so the encoder leaves unset fields absent.
func BuildRequest(peer tg.InputPeerClass, plain string, entities []tg.MessageEntityClass, randomID int64, opts Options) *tg.MessagesSendMessageRequest {
	req := &tg.MessagesSendMessageRequest{
		Peer:     peer,
		Message:  plain,
		RandomID: randomID,
	}
	if opts.DisablePreview {
		req.NoWebpage = true
	}
	if opts.Silent {
		req.Silent = true
	}
	if opts.ReplyTo != 0 {
		req.SetReplyTo(&tg.InputReplyToMessage{ReplyToMsgID: opts.ReplyTo})
	}
	if !opts.ScheduleDate.IsZero() {
		req.SetScheduleDate(int(opts.ScheduleDate.Unix()))
	}
	if opts.Markup != nil {
		req.SetReplyMarkup(opts.Markup)
	}
	if len(entities) > 0 {
		req.SetEntities(entities)
	}
	return req
}
