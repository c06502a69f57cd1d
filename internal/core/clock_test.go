package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}
	c.Advance(5 * time.Second)
	if got := c.Now().Sub(start); got != 5*time.Second {
		t.Errorf("after Advance, elapsed = %v, expected 5s", got)
	}
}

func TestTaskExecute(t *testing.T) {
	task := Task{
		Kind:  TaskFlavorText,
		Epoch: 3,
		Run: func(ctx context.Context) (string, error) {
			return "hello", nil
		},
	}
	res := task.Execute(context.Background())
	if res.Kind != TaskFlavorText || res.Epoch != 3 || res.Text != "hello" || res.Err != nil {
		t.Errorf("Execute() = %+v", res)
	}

	failing := Task{Kind: TaskSubmitScore, Run: func(ctx context.Context) (string, error) {
		return "", errors.New("offline")
	}}
	if res := failing.Execute(context.Background()); res.Err == nil {
		t.Error("Execute() should carry the task error")
	}

	if res := (Task{Kind: TaskSubmitScore}).Execute(context.Background()); res.Err != nil {
		t.Errorf("nil Run should produce an empty result, got %+v", res)
	}
}
