package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := NewFromZap(zap.New(core)).With(F("object", "MainCamera"))

	lg.Info("controller started", F("speed", float32(5)), F("err", errors.New("boom")))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["object"] != "MainCamera" {
		t.Errorf("Expected inherited field, got %v", ctx["object"])
	}
	if ctx["speed"] != float32(5) {
		t.Errorf("Expected float32 speed, got %#v", ctx["speed"])
	}
	if ctx["err"] != "boom" {
		t.Errorf("Expected error text, got %v", ctx["err"])
	}
}

func TestObserverRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lg := NewFromZap(zap.New(core))

	lg.Debug("frame")
	lg.Info("frame")
	lg.Warn("slow frame")

	if logs.Len() != 1 {
		t.Errorf("Expected only the warning, got %d entries", logs.Len())
	}
}

func TestNewZapLoggerBadLevelFallsBack(t *testing.T) {
	lg, err := NewZapLogger(Config{Level: "chatty", Format: "json"})
	if err != nil {
		t.Fatalf("NewZapLogger: %v", err)
	}
	if !lg.zap.Core().Enabled(zapcore.InfoLevel) || lg.zap.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Unknown level should fall back to info")
	}
}

func TestNopLogger(t *testing.T) {
	lg := NewNop()
	lg.Error("ignored", F("k", 1))
	if err := lg.Sync(); err != nil {
		t.Errorf("Nop Sync: %v", err)
	}
}
