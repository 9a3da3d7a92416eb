package models

// Check is a single atomic probe result.
type Check struct {
	Name     string   `json:"name"             yaml:"name"`
	Category Category `json:"category"         yaml:"category"`
	// Weight is the number of points the check is worth inside its category.
	Weight float64 `json:"weight"           yaml:"weight"`
	// Score is the check's own result in [0,100].
	Score  float64 `json:"score"            yaml:"score"`
	Status Status  `json:"status"           yaml:"status"`
	Detail string  `json:"detail,omitempty" yaml:"detail,omitempty"`
	Error  string  `json:"error,omitempty"  yaml:"error,omitempty"`
}

// Passed reports whether the check earned full marks.
func (c Check) Passed() bool {
	return c.Score >= 100
}

// CategoryScore is a named aggregate shown in the summary block.
type CategoryScore struct {
	Name  string  `json:"name"  yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// Hint is one remediation line in the recommendations block.
type Hint struct {
	Category Category `json:"category"          yaml:"category"`
	Message  string   `json:"message"           yaml:"message"`
	Command  string   `json:"command,omitempty" yaml:"command,omitempty"`
}

// Connection is the result of a live database connectivity probe.
type Connection struct {
	Driver  string `json:"driver"            yaml:"driver"`
	Target  string `json:"target"            yaml:"target"`
	OK      bool   `json:"ok"                yaml:"ok"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Error   string `json:"error,omitempty"   yaml:"error,omitempty"`
}
