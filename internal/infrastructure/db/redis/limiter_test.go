package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// scriptStub answers EVALSHA with a canned result, standing in for Redis.
type scriptStub struct {
	redis.Scripter
	result []interface{}
	err    error
	keys   []string
	args   []interface{}
}

func (s *scriptStub) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	s.keys, s.args = keys, args
	cmd := redis.NewCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal(s.result)
	}
	return cmd
}

func TestLimiter_Allow(t *testing.T) {
	tests := []struct {
		name      string
		result    []interface{}
		wantOK    bool
		wantRetry time.Duration
	}{
		{"first hit", []interface{}{int64(1), int64(900000)}, true, 0},
		{"at limit", []interface{}{int64(5), int64(1000)}, true, 0},
		{"over limit", []interface{}{int64(6), int64(42000)}, false, 42 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &scriptStub{result: tt.result}
			l := NewLimiter(stub, "forgotpassword", 5, 15*time.Minute)

			ok, retry, err := l.Allow(context.Background(), "10.0.0.1")
			if err != nil {
				t.Fatalf("Allow: %v", err)
			}
			if ok != tt.wantOK || retry != tt.wantRetry {
				t.Fatalf("got (%v, %s), want (%v, %s)", ok, retry, tt.wantOK, tt.wantRetry)
			}
			if len(stub.keys) != 1 || stub.keys[0] != "ratelimit:forgotpassword:10.0.0.1" {
				t.Fatalf("unexpected keys: %v", stub.keys)
			}
			if len(stub.args) != 1 || stub.args[0] != int64(900000) {
				t.Fatalf("unexpected window arg: %v", stub.args)
			}
		})
	}
}

func TestLimiter_RedisError(t *testing.T) {
	stub := &scriptStub{err: errors.New("connection refused")}
	l := NewLimiter(stub, "forgotpassword", 5, time.Minute)

	if _, _, err := l.Allow(context.Background(), "ip"); err == nil {
		t.Fatal("expected error")
	}
}
