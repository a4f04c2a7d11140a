package apiclient

// Status is the response of GET /api/v1/status.
type Status struct {
	Status        int    `json:"status"`
	StatusName    string `json:"status_name"`
	AliveSince    int64  `json:"alive_since"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	InstanceID    string `json:"instance_id"`
	Phase         string `json:"phase"`
}

// SchedulerState reports the scheduler's running state after a pause or
// resume.
type SchedulerState struct {
	Success bool   `json:"success"`
	Running bool   `json:"running"`
	Phase   string `json:"phase"`
}

// Rate is the scheduler pacing snapshot.
type Rate struct {
	Running        bool  `json:"running"`
	RPS            int32 `json:"rps"`
	MaxOutstanding int32 `json:"max_outstanding"`
}

// Override is a runtime configuration override entry.
type Override struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// GetStatus fetches the worker's service status.
func (c *Client) GetStatus() (*Status, error) {
	return getResource[Status](c, "/api/v1/status")
}

// Pause stops the scheduler. Pausing clears every runtime configuration
// override on the worker.
func (c *Client) Pause() (*SchedulerState, error) {
	return createResource[SchedulerState](c, "/api/v1/scheduler/pause", nil)
}

// Resume restarts the scheduler without touching the phase label.
func (c *Client) Resume() (*SchedulerState, error) {
	return createResource[SchedulerState](c, "/api/v1/scheduler/resume", nil)
}

// ResumeWithPhase assigns the named phase and restarts the scheduler. An
// empty phase maps to the worker's unknown-phase label.
func (c *Client) ResumeWithPhase(phase string) (*SchedulerState, error) {
	body := map[string]string{"phase_name": phase}
	return createResource[SchedulerState](c, "/api/v1/scheduler/resume", body)
}

// GetRate fetches the scheduler pacing snapshot.
func (c *Client) GetRate() (*Rate, error) {
	return getResource[Rate](c, "/api/v1/scheduler/rate")
}

// SetRate sets the target request rate.
func (c *Client) SetRate(rps int32) (*Rate, error) {
	body := map[string]int32{"rps": rps}
	return updateResource[Rate](c, "/api/v1/scheduler/rate", body)
}

// SetMaxOutstanding sets the cap on concurrent in-flight requests.
func (c *Client) SetMaxOutstanding(n int32) (*Rate, error) {
	body := map[string]int32{"max_outstanding": n}
	return updateResource[Rate](c, "/api/v1/scheduler/max-outstanding", body)
}

// GetOverride reads one runtime configuration override. An absent key is
// not an error; Present is false and Value empty.
func (c *Client) GetOverride(key string) (*Override, error) {
	return getResource[Override](c, resourcePath("/api/v1/overrides/%s", key))
}

// SetOverride writes one runtime configuration override, overwriting any
// existing value.
func (c *Client) SetOverride(key, value string) (*Override, error) {
	body := map[string]string{"value": value}
	return updateResource[Override](c, resourcePath("/api/v1/overrides/%s", key), body)
}

// ListOverrides fetches all runtime configuration overrides.
func (c *Client) ListOverrides() (map[string]string, error) {
	var out map[string]string
	if err := c.get("/api/v1/overrides", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCounters fetches the flat counters snapshot.
func (c *Client) GetCounters() (map[string]int64, error) {
	var out map[string]int64
	if err := c.get("/api/v1/counters", &out); err != nil {
		return nil, err
	}
	return out, nil
}
