package sender

import (
	"testing"
	"time"

	"github.com/gotd/td/tg"
)

func TestBuildRequestDefaults(t *testing.T) {
	peer := &tg.InputPeerUser{UserID: 777, AccessHash: 1}
	req := BuildRequest(peer, "hello", nil, 99, Options{})
	req.SetFlags()

	if req.Flags != 0 {
		t.Errorf("flags = %v, want no optional fields set", req.Flags)
	}
	if req.GetSilent() {
		t.Error("silent set without being requested")
	}
	if req.GetNoWebpage() {
		t.Error("no_webpage set without being requested")
	}
	if _, ok := req.GetScheduleDate(); ok {
		t.Error("schedule_date present without being requested")
	}
	if _, ok := req.GetReplyTo(); ok {
		t.Error("reply_to present without being requested")
	}
	if _, ok := req.GetEntities(); ok {
		t.Error("entities present for unstyled text")
	}
	if req.Message != "hello" || req.RandomID != 99 {
		t.Errorf("got message %q random id %d, want %q and %d", req.Message, req.RandomID, "hello", 99)
	}
}

func TestBuildRequestOptions(t *testing.T) {
	peer := &tg.InputPeerChannel{ChannelID: 67890, AccessHash: 2}
	when := time.Unix(1700000000, 0)
	ents := []tg.MessageEntityClass{&tg.MessageEntityBold{Offset: 0, Length: 5}}
	req := BuildRequest(peer, "hello", ents, 7, Options{
		DisablePreview: true,
		Silent:         true,
		ReplyTo:        123,
		ScheduleDate:   when,
	})
	req.SetFlags()

	if !req.GetNoWebpage() {
		t.Error("no_webpage not set")
	}
	if !req.GetSilent() {
		t.Error("silent not set")
	}
	date, ok := req.GetScheduleDate()
	if !ok || date != 1700000000 {
		t.Errorf("schedule_date = %d (present %v), want 1700000000", date, ok)
	}
	replyTo, ok := req.GetReplyTo()
	if !ok {
		t.Fatal("reply_to absent")
	}
	msgReply, ok := replyTo.(*tg.InputReplyToMessage)
	if !ok || msgReply.ReplyToMsgID != 123 {
		t.Errorf("reply_to = %#v, want message reply to 123", replyTo)
	}
	got, ok := req.GetEntities()
	if !ok || len(got) != 1 {
		t.Errorf("entities = %v (present %v), want one entity", got, ok)
	}
}
