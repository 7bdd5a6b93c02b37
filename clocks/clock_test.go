package clocks

import (
	"testing"
	"time"

	"github.com/reusee/dscope"
)

var epoch = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestIsPast(t *testing.T) {
	clock := NewMock(epoch)
	if IsPast(clock, time.Time{}) {
		t.Fatal("unset instant is never past")
	}
	deadline := FromNow(clock, time.Second)
	if IsPast(clock, deadline) {
		t.Fatal()
	}
	clock.Advance(time.Second)
	if !IsPast(clock, deadline) {
		t.Fatal("deadline equal to now has passed")
	}
}

func TestIsOlderThan(t *testing.T) {
	clock := NewMock(epoch)
	updated := clock.Now()
	clock.Advance(180*time.Second - time.Millisecond)
	if IsOlderThan(clock, updated, 180*time.Second) {
		t.Fatal()
	}
	clock.Advance(time.Millisecond)
	if !IsOlderThan(clock, updated, 180*time.Second) {
		t.Fatal()
	}
}

func TestRealClock(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		clock Clock,
	) {
		before := time.Now()
		now := clock.Now()
		if now.Before(before) {
			t.Fatal()
		}
	})
}

func TestMockSet(t *testing.T) {
	clock := NewMock(epoch)
	later := epoch.Add(time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Fatal()
	}
}
