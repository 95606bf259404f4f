package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]any{"player_id", "0xABC", "redis_password", "hunter2", "score", 18, "dangling"})
	if len(out) != 7 {
		t.Fatalf("len = %d, want 7", len(out))
	}
	if got := out[1].(string); !strings.HasPrefix(got, "hash:") || strings.Contains(got, "ABC") {
		t.Errorf("player_id not hashed: %q", got)
	}
	if out[3] != "[REDACTED]" {
		t.Errorf("password not redacted: %v", out[3])
	}
	if out[5] != 18 {
		t.Errorf("score changed: %v", out[5])
	}
	if out[6] != "dangling" {
		t.Errorf("dangling key dropped: %v", out[6])
	}
}

func TestHashValueStable(t *testing.T) {
	if HashValue("0xabc") != HashValue("0xABC") {
		t.Error("hash should ignore address case")
	}
	if HashValue("0xabc") == HashValue("0xabd") {
		t.Error("distinct addresses share a hash")
	}
	if HashValue("") != "" {
		t.Error("empty value should hash to empty")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phantom.log")
	l, err := New("prod", path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.With("player_id", "0xabc").Info("session started", "tier", "T1")
	l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "session started") {
		t.Errorf("log missing message: %s", b)
	}
	if strings.Contains(string(b), "0xabc") {
		t.Errorf("log leaked address: %s", b)
	}
}
