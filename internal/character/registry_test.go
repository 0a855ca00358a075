package character

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo("endora")
	if info == nil {
		t.Fatal("GetInfo(endora) = nil")
	}
	if !info.Available {
		t.Error("endora should be available")
	}
	if info.Name != "Endora" {
		t.Errorf("Name = %q, want %q", info.Name, "Endora")
	}

	if GetInfo("samantha") != nil {
		t.Error("GetInfo(samantha) != nil, want nil for unknown ID")
	}
}

func TestNew(t *testing.T) {
	c, err := New("endora")
	if err != nil {
		t.Fatalf("New(endora) error: %v", err)
	}
	if got := c.Info().Name; got != "Endora" {
		t.Errorf("Info().Name = %q, want %q", got, "Endora")
	}
}

func TestNewRejectsUnavailable(t *testing.T) {
	_, err := New("mork")
	if err == nil {
		t.Fatal("New(mork) error = nil, want unavailable failure")
	}
	if !strings.Contains(err.Error(), "not yet available") {
		t.Errorf("error = %v, want it to name the availability status", err)
	}
}

func TestNewRejectsUnknown(t *testing.T) {
	if _, err := New("nobody"); err == nil {
		t.Error("New(nobody) error = nil, want unknown-character failure")
	}
}
