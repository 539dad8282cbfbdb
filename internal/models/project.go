package models

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "NOT_STARTED"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
)

// ProjectStatuses lists every status in menu order.
var ProjectStatuses = []ProjectStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
}

// ParseProjectStatus looks a status up by name, ignoring case and treating
// spaces and hyphens as underscores.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for _, st := range ProjectStatuses {
		if string(st) == key {
			return st, true
		}
	}
	return "", false
}

// Label is the human readable form shown in menus, e.g. "In Progress".
func (s ProjectStatus) Label() string {
	words := strings.Split(strings.ToLower(string(s)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

type Project struct {
	ID        int `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name        string        `gorm:"size:160;not null"`
	Description string        `gorm:"size:300;not null"`
	Manager     string        `gorm:"size:60;not null"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null"`

	Employees []Employee `gorm:"many2many:project_employees;constraint:OnDelete:CASCADE"`
}
