package labels

import "testing"

func TestSelector(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		labels map[string]string
		want   string
	}{
		{"nil map", nil, ""},
		{"single label", map[string]string{"role": "gpu"}, "role=gpu"},
		{"sorted keys", map[string]string{"team": "ml", "role": "gpu"}, "role=gpu,team=ml"},
		{"presence only", map[string]string{"podssh": ""}, "podssh"},
		{"mixed", map[string]string{"podssh": "", "env": "prod"}, "env=prod,podssh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Selector(tt.labels); got != tt.want {
				t.Errorf("Selector(%v) = %q, want %q", tt.labels, got, tt.want)
			}
		})
	}
}

func TestSelectorBuilder(t *testing.T) {
	t.Parallel()

	got := NewSelectorBuilder().
		WithLabel("role", "gpu").
		WithKey("managed").
		WithKey("managed").
		WithKey("role").
		Build()

	if want := "managed,role=gpu"; got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}
