package hooks

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/convoctx/convoctx/types"
)

func TestRegistryTriggerOrder(t *testing.T) {
	registry := NewRegistry()
	var calls []string

	registry.OnEvict(func(ctx context.Context, evicted []types.Message) error {
		calls = append(calls, "first")
		return nil
	})
	registry.OnEvict(func(ctx context.Context, evicted []types.Message) error {
		calls = append(calls, "second")
		return nil
	})

	if err := registry.TriggerEvict(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("hooks ran out of registration order: %v", calls)
	}
}

func TestRegistryStopsOnError(t *testing.T) {
	registry := NewRegistry()
	wantErr := errors.New("hook failed")
	var secondRan bool

	registry.OnDegrade(func(ctx context.Context, event DegradeEvent) error {
		return wantErr
	})
	registry.OnDegrade(func(ctx context.Context, event DegradeEvent) error {
		secondRan = true
		return nil
	})

	err := registry.TriggerDegrade(context.Background(), DegradeEvent{MessagesDropped: 3})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if secondRan {
		t.Error("second hook ran after first returned an error")
	}
}

func TestRegistryEventPayloads(t *testing.T) {
	registry := NewRegistry()

	var gotSummary SummaryEvent
	registry.OnAfterSummarize(func(ctx context.Context, event SummaryEvent) error {
		gotSummary = event
		return nil
	})

	var gotBefore int
	registry.OnBeforeSummarize(func(ctx context.Context, messages []types.Message) error {
		gotBefore = len(messages)
		return nil
	})

	messages := []types.Message{types.User("a", ""), types.User("b", "")}
	if err := registry.TriggerBeforeSummarize(context.Background(), messages); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBefore != 2 {
		t.Errorf("expected 2 messages in before-summarize hook, got %d", gotBefore)
	}

	event := SummaryEvent{Summary: "SUMMARY", MessagesReplaced: 6, Duration: time.Second}
	if err := registry.TriggerAfterSummarize(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSummary != event {
		t.Errorf("expected %+v, got %+v", event, gotSummary)
	}
}

func TestRegistryEmptyTriggers(t *testing.T) {
	registry := NewRegistry()
	ctx := context.Background()

	if err := registry.TriggerEvict(ctx, nil); err != nil {
		t.Errorf("TriggerEvict on empty registry: %v", err)
	}
	if err := registry.TriggerBeforeSummarize(ctx, nil); err != nil {
		t.Errorf("TriggerBeforeSummarize on empty registry: %v", err)
	}
	if err := registry.TriggerAfterSummarize(ctx, SummaryEvent{}); err != nil {
		t.Errorf("TriggerAfterSummarize on empty registry: %v", err)
	}
	if err := registry.TriggerDegrade(ctx, DegradeEvent{}); err != nil {
		t.Errorf("TriggerDegrade on empty registry: %v", err)
	}
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	registry := NewRegistry()
	NewLoggingHooks(logger).RegisterAll(registry)

	ctx := context.Background()
	if err := registry.TriggerEvict(ctx, []types.Message{types.User("hi", "")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.TriggerDegrade(ctx, DegradeEvent{MessagesDropped: 4, Cause: errors.New("model unavailable")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Evicted 1 messages") {
		t.Errorf("missing evict log line: %q", out)
	}
	if !strings.Contains(out, "dropped 4 messages") || !strings.Contains(out, "model unavailable") {
		t.Errorf("missing degrade log line: %q", out)
	}
}
