// Package seed loads the mock dataset that the migration copies into the
// relational store.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed mockdata.yaml
var mockData []byte

// User is a seed user row.
type User struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Initials  string  `yaml:"initials"`
	Email     *string `yaml:"email"`
	AvatarURL *string `yaml:"avatarUrl"`
}

// Event is a seed event row.
type Event struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description *string   `yaml:"description"`
	StartsAt    time.Time `yaml:"startsAt"`
	EndsAt      time.Time `yaml:"endsAt"`
}

// Track is a seed track row.
type Track struct {
	ID             string   `yaml:"id"`
	EventID        string   `yaml:"eventId"`
	Name           string   `yaml:"name"`
	Description    *string  `yaml:"description"`
	LeadID         string   `yaml:"leadId"`
	ParticipantIDs []string `yaml:"participantIds"`
}

// Task is a seed task row.
type Task struct {
	ID         string     `yaml:"id"`
	TrackID    string     `yaml:"trackId"`
	Title      string     `yaml:"title"`
	AssigneeID *string    `yaml:"assigneeId"`
	Status     string     `yaml:"status"`
	DueDate    *time.Time `yaml:"dueDate"`
}

// Meeting is a seed meeting row.
type Meeting struct {
	ID          string    `yaml:"id"`
	EventID     string    `yaml:"eventId"`
	Title       string    `yaml:"title"`
	StartsAt    time.Time `yaml:"startsAt"`
	EndsAt      time.Time `yaml:"endsAt"`
	Location    *string   `yaml:"location"`
	AttendeeIDs []string  `yaml:"attendeeIds"`
}

// Note is a seed meeting note row.
type Note struct {
	ID        string `yaml:"id"`
	MeetingID string `yaml:"meetingId"`
	Content   string `yaml:"content"`
}

// Data is the whole dataset, one slice per table.
type Data struct {
	Users    []User    `yaml:"users"`
	Events   []Event   `yaml:"events"`
	Tracks   []Track   `yaml:"tracks"`
	Tasks    []Task    `yaml:"tasks"`
	Meetings []Meeting `yaml:"meetings"`
	Notes    []Note    `yaml:"notes"`
}

// Counts reports the number of rows per table.
func (d *Data) Counts() map[string]int {
	return map[string]int{
		"users":         len(d.Users),
		"events":        len(d.Events),
		"tracks":        len(d.Tracks),
		"tasks":         len(d.Tasks),
		"meetings":      len(d.Meetings),
		"meeting_notes": len(d.Notes),
	}
}

// Default returns the embedded mock dataset.
func Default() (*Data, error) {
	return Load(bytes.NewReader(mockData))
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates a dataset.
func Load(r io.Reader) (*Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

// Source returns the loader for the configured seed file, falling back to the
// embedded dataset when path is empty.
func Source(path string) func() (*Data, error) {
	if path == "" {
		return Default
	}
	return func() (*Data, error) {
		return LoadFile(path)
	}
}
