package project

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCreateRequestDefaults(t *testing.T) {
	p := (&CreateProjectRequest{Name: "Portal"}).ToProject()

	if p.Description == nil || *p.Description != "" {
		t.Fatalf("description should default to empty string, got %v", p.Description)
	}
	if p.TotalHours != 0 || p.Cell != nil || p.Client != nil || p.Service != nil {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	body, err := json.Marshal(p.ToResponse())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"cell":null`, `"client":null`, `"service":null`, `"totalHours":0`} {
		if !strings.Contains(string(body), key) {
			t.Errorf("missing %s in %s", key, body)
		}
	}
}

func TestCreateRequestRequiresName(t *testing.T) {
	err := (&CreateProjectRequest{}).Validate()
	if err == nil || err.Error() != "Project name is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateRequestPartial(t *testing.T) {
	cell := int64(101)
	desc := "old"
	p := &Project{ID: 1, Name: "Portal", Description: &desc, TotalHours: 40, Cell: &cell}

	hours := 80.0
	(&UpdateProjectRequest{ID: 1, TotalHours: &hours}).Apply(p)

	if p.TotalHours != 80 || p.Name != "Portal" || *p.Description != "old" || *p.Cell != 101 {
		t.Fatalf("unexpected project after update: %+v", p)
	}

	var empty UpdateProjectRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatal(err)
	}
	if !empty.Empty() {
		t.Fatal("empty object should be empty")
	}
}
