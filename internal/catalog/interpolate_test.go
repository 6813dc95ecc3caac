package catalog

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		params map[string]string
		want   string
	}{
		{"basic", "Hello {{name}}", map[string]string{"name": "Ana"}, "Hello Ana"},
		{"no params leaves marker", "Hello {{name}}", map[string]string{}, "Hello {{name}}"},
		{"nil params", "Hello {{name}}", nil, "Hello {{name}}"},
		{"unknown marker untouched", "Hi {{name}}, {{other}}", map[string]string{"name": "Ana"}, "Hi Ana, {{other}}"},
		{"multiple markers", "{{done}} of {{total}}", map[string]string{"done": "3", "total": "5"}, "3 of 5"},
		{"repeated marker", "{{name}} and {{name}}", map[string]string{"name": "Ana"}, "Ana and Ana"},
		{"no markers idempotent", "Dashboard", map[string]string{"name": "Ana"}, "Dashboard"},
		{"verbatim, no escaping", "Hi {{name}}", map[string]string{"name": "<b>Ana & Bob</b>"}, "Hi <b>Ana & Bob</b>"},
		{"extra params ignored", "Save", map[string]string{"unused": "x"}, "Save"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.in, tt.params); got != tt.want {
				t.Errorf("Interpolate(%q, %v) = %q, want %q", tt.in, tt.params, got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{{name}} completed {{done}} of {{total}}, well done {{name}}")
	want := []string{"name", "done", "total"}
	if len(got) != len(want) {
		t.Fatalf("Placeholders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Placeholders = %v, want %v", got, want)
		}
	}
	if names := Placeholders("plain text"); names != nil {
		t.Errorf("Placeholders(plain) = %v, want nil", names)
	}
}
