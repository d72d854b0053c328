package input

import (
	"testing"

	"github.com/vovakirdan/jewel-legend/internal/core"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

func ticks(d *Debouncer, n int) {
	for i := 0; i < n; i++ {
		d.Tick()
	}
}

func TestDebouncerAcceptsFirstKey(t *testing.T) {
	var mb ps2.Mailbox
	d := NewDebouncer(nil)

	mb.Post(ps2.CodeKP8)
	ev, ok := d.Poll(&mb)
	if !ok || ev.Action != core.ActionUp {
		t.Fatalf("Poll() = %v, %v; want Up", ev, ok)
	}
	if !mb.Empty() {
		t.Error("accepted code should be consumed")
	}
	if d.Cooldown() != CooldownTicks {
		t.Errorf("cooldown = %d, want %d", d.Cooldown(), CooldownTicks)
	}
}

func TestDebouncerHoldsDuringCooldown(t *testing.T) {
	var mb ps2.Mailbox
	d := NewDebouncer(nil)

	mb.Post(ps2.CodeKP8)
	d.Poll(&mb)

	// Same key again before cooldown expires: nothing, and it stays pending
	mb.Post(ps2.CodeKP8)
	ticks(d, CooldownTicks-1)
	if _, ok := d.Poll(&mb); ok {
		t.Fatal("key accepted during cooldown")
	}
	if mb.Peek() != ps2.CodeKP8 {
		t.Error("pending code should survive the cooldown")
	}

	// A different key overwrites the slot and is the one delivered
	mb.Post(ps2.CodeKP6)
	d.Tick()
	ev, ok := d.Poll(&mb)
	if !ok || ev.Action != core.ActionRight {
		t.Fatalf("Poll() = %v, %v; want Right", ev, ok)
	}
	if _, ok := d.Poll(&mb); ok {
		t.Error("only one event expected")
	}
}

func TestDebouncerRepeatSuppression(t *testing.T) {
	var mb ps2.Mailbox
	d := NewDebouncer(nil)

	mb.Post(ps2.CodeKP5)
	if _, ok := d.Poll(&mb); !ok {
		t.Fatal("first press rejected")
	}

	// Identical codes after the cooldown are rejected RepeatSuppression times
	for i := 0; i < RepeatSuppression; i++ {
		ticks(d, CooldownTicks)
		mb.Post(ps2.CodeKP5)
		if _, ok := d.Poll(&mb); ok {
			t.Fatalf("repeat %d accepted", i+1)
		}
		if !mb.Empty() {
			t.Fatalf("rejected repeat %d should be consumed", i+1)
		}
	}

	mb.Post(ps2.CodeKP5)
	ev, ok := d.Poll(&mb)
	if !ok || ev.Action != core.ActionActivate {
		t.Errorf("Poll() = %v, %v after suppression expired", ev, ok)
	}
}

func TestDebouncerUnmappedCode(t *testing.T) {
	var mb ps2.Mailbox
	d := NewDebouncer(nil)

	mb.Post(ps2.CodeKP1)
	if _, ok := d.Poll(&mb); ok {
		t.Fatal("unmapped code accepted")
	}
	if !mb.Empty() {
		t.Error("unmapped code should be consumed")
	}
	if d.Cooldown() != 0 {
		t.Error("unmapped code must not arm the cooldown")
	}

	mb.Post(ps2.CodeKP4)
	if ev, ok := d.Poll(&mb); !ok || ev.Action != core.ActionLeft {
		t.Errorf("Poll() = %v, %v; want Left", ev, ok)
	}
}

func TestDebouncerEmptyMailbox(t *testing.T) {
	var mb ps2.Mailbox
	d := NewDebouncer(nil)

	if _, ok := d.Poll(&mb); ok {
		t.Error("empty mailbox produced an event")
	}
}

func TestDefaultKeyTable(t *testing.T) {
	tests := []struct {
		code byte
		want core.Action
	}{
		{0x75, core.ActionUp},
		{0x72, core.ActionDown},
		{0x6B, core.ActionLeft},
		{0x74, core.ActionRight},
		{0x73, core.ActionActivate},
	}
	keys := DefaultKeyTable()
	for _, tt := range tests {
		got, ok := keys.Lookup(tt.code)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%#02x) = %v, %v; want %v", tt.code, got, ok, tt.want)
		}
	}
	for _, code := range []byte{0x70, 0x4A} {
		if _, ok := keys.Lookup(code); ok {
			t.Errorf("%#02x should be unmapped", code)
		}
	}
}

func TestKeyTableWithShuffle(t *testing.T) {
	base := DefaultKeyTable()
	keys := base.WithShuffle()

	if got, ok := keys.Lookup(0x4A); !ok || got != core.ActionShuffle {
		t.Errorf("Lookup(0x4a) = %v, %v; want Shuffle", got, ok)
	}
	if got, _ := keys.Lookup(0x75); got != core.ActionUp {
		t.Errorf("Lookup(0x75) = %v, want Up", got)
	}
	if _, ok := base.Lookup(0x4A); ok {
		t.Error("WithShuffle modified the original table")
	}
}
