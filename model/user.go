package model

// User is a TestRail user.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Status is a test status such as "passed" or a custom status.
type Status struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	ColorDark   int    `json:"color_dark"`
	ColorMedium int    `json:"color_medium"`
	ColorBright int    `json:"color_bright"`
	IsSystem    bool   `json:"is_system"`
	IsUntested  bool   `json:"is_untested"`
	IsFinal     bool   `json:"is_final"`
}

// Configuration is a configuration group and its configurations.
type Configuration struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	ProjectID int      `json:"project_id"`
	Configs   []Config `json:"configs"`
}

// Config is a single configuration inside a group.
type Config struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	GroupID int    `json:"group_id"`
}
