package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

// fakeStream records XAdd calls. Embedding the interface leaves every other
// command unimplemented.
type fakeStream struct {
	redis.Cmdable
	added []*redis.XAddArgs
	err   error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.added = append(f.added, a)
	cmd := redis.NewStringCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal("1-0")
	}
	return cmd
}

func TestPublish(t *testing.T) {
	fake := &fakeStream{}
	p := NewPublisher(fake, "")

	err := p.Publish(context.Background(), BalanceUpdated, BalanceUpdatedEvent{Number: "4000008449433403", Change: 100, NewBalance: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.added) != 1 {
		t.Fatalf("expected 1 XADD, got %d", len(fake.added))
	}
	args := fake.added[0]
	if args.Stream != DefaultStream {
		t.Errorf("expected stream %s, got %s", DefaultStream, args.Stream)
	}
	raw, ok := args.Values.(map[string]any)["event"].([]byte)
	if !ok {
		t.Fatalf("expected event payload bytes, got %T", args.Values.(map[string]any)["event"])
	}
	var ev struct {
		ID   string              `json:"id"`
		Type string              `json:"type"`
		Data BalanceUpdatedEvent `json:"data"`
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if ev.Type != BalanceUpdated || ev.ID == "" || ev.Data.NewBalance != 100 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestPublishError(t *testing.T) {
	p := NewPublisher(&fakeStream{err: errors.New("connection refused")}, "custom")
	if err := p.Publish(context.Background(), CardCreated, CardCreatedEvent{Number: "x"}); err == nil {
		t.Fatal("expected error from failing stream")
	}
}

func TestNop(t *testing.T) {
	var e Emitter = Nop{}
	if err := e.Publish(context.Background(), CardClosed, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
