package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceStatusString(t *testing.T) {
	tests := []struct {
		status ServiceStatus
		want   string
	}{
		{Dead, "DEAD"},
		{Starting, "STARTING"},
		{Alive, "ALIVE"},
		{Stopping, "STOPPING"},
		{Stopped, "STOPPED"},
		{Warning, "WARNING"},
		{ServiceStatus(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatusCodesAreStable(t *testing.T) {
	// Health tooling matches on the numeric codes, so the ordering is
	// part of the contract.
	assert.Equal(t, 0, int(Dead))
	assert.Equal(t, 1, int(Starting))
	assert.Equal(t, 2, int(Alive))
	assert.Equal(t, 3, int(Stopping))
	assert.Equal(t, 4, int(Stopped))
	assert.Equal(t, 5, int(Warning))
}

func TestNewRegisterStartsStarting(t *testing.T) {
	before := time.Now().Add(-time.Second)
	r := NewRegister()
	after := time.Now().Add(time.Second)

	assert.Equal(t, Starting, r.Status())
	assert.Equal(t, "STARTING", r.StatusDetails())
	assert.True(t, r.StartedAt().After(before))
	assert.True(t, r.StartedAt().Before(after))
}

func TestSetStatusOverwrites(t *testing.T) {
	r := NewRegister()

	r.SetStatus(Alive)
	assert.Equal(t, Alive, r.Status())

	// Transitions are unvalidated: any status may follow any other.
	r.SetStatus(Dead)
	assert.Equal(t, Dead, r.Status())

	r.SetStatus(Warning)
	assert.Equal(t, Warning, r.Status())
}

func TestAliveSinceIsFixed(t *testing.T) {
	r := NewRegister()
	first := r.AliveSince()

	r.SetStatus(Alive)
	r.SetStatus(Stopping)
	r.SetStatus(Stopped)

	assert.Equal(t, first, r.AliveSince())
	assert.Equal(t, r.StartedAt().Unix(), r.AliveSince())
}

func TestUptimeGrows(t *testing.T) {
	r := NewRegister()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, r.Uptime(), 10*time.Millisecond)
}

func TestConcurrentStatusAccess(t *testing.T) {
	r := NewRegister()

	var wg sync.WaitGroup
	statuses := []ServiceStatus{Starting, Alive, Warning, Stopping}
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(s ServiceStatus) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.SetStatus(s)
			}
		}(statuses[i%len(statuses)])
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = r.Status()
				_ = r.AliveSince()
			}
		}()
	}
	wg.Wait()

	// Last write wins; the value must be one of the written statuses.
	assert.Contains(t, statuses, r.Status())
}
