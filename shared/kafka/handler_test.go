package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
)

type payload struct {
	ID string `json:"id"`
}

func TestTypedMessageHandler(t *testing.T) {
	var processed []string
	h := &TypedMessageHandler[payload]{
		Validate: func(p *payload) error {
			if p.ID == "" {
				return errors.New("missing id")
			}
			return nil
		},
		Process: func(_ context.Context, p *payload) error {
			if p.ID == "boom" {
				return errors.New("render failed")
			}
			processed = append(processed, p.ID)
			return nil
		},
		MarkInvalid: true,
	}

	cases := []struct {
		name     string
		body     string
		wantMark bool
		wantErr  bool
	}{
		{"valid", `{"id":"a"}`, true, false},
		{"bad json", `{"id":`, true, false},
		{"invalid", `{}`, true, false},
		{"process failure", `{"id":"boom"}`, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mark, err := h.HandleMessage(context.Background(), []byte(c.body))
			if mark != c.wantMark || (err != nil) != c.wantErr {
				t.Fatalf("mark=%v err=%v; want mark=%v err=%v", mark, err, c.wantMark, c.wantErr)
			}
		})
	}
	if len(processed) != 1 || processed[0] != "a" {
		t.Fatalf("processed = %v", processed)
	}
}

func TestTypedMessageHandlerKeepsInvalidWhenNotMarking(t *testing.T) {
	h := &TypedMessageHandler[payload]{
		Process: func(context.Context, *payload) error { return nil },
	}
	if mark, _ := h.HandleMessage(context.Background(), []byte("not json")); mark {
		t.Fatalf("undecodable message marked without MarkInvalid")
	}
}

type handlerFunc func(ctx context.Context, message []byte) (bool, error)

func (f handlerFunc) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	return f(ctx, message)
}

func TestDispatch(t *testing.T) {
	var got string
	h := handlerFunc(func(_ context.Context, m []byte) (bool, error) {
		got = string(m)
		return false, errors.New("retry later")
	})

	msg := &sarama.ConsumerMessage{Value: []byte("payload"), Key: []byte("k"), Offset: 7}
	if dispatch(context.Background(), h, msg) {
		t.Fatalf("failed message should not be marked")
	}
	if got != "payload" {
		t.Fatalf("handler saw %q", got)
	}
}
