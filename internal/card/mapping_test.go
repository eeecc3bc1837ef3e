package card

import "testing"

func TestNewFieldMapping(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		wantErr bool
	}{
		{
			name: "full mapping",
			raw: map[string]string{
				"Expression": "Front",
				"Reading":    "Reading",
				"Romaji":     "Romaji",
				"Gloss1":     "Back",
				"Audio":      "Audio",
			},
			wantErr: false,
		},
		{
			name:    "single field",
			raw:     map[string]string{"Expression": "Front"},
			wantErr: false,
		},
		{
			name:    "empty mapping",
			raw:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "nil mapping",
			raw:     nil,
			wantErr: true,
		},
		{
			name:    "unknown role",
			raw:     map[string]string{"Furigana": "Front"},
			wantErr: true,
		},
		{
			name:    "empty target",
			raw:     map[string]string{"Expression": ""},
			wantErr: true,
		},
		{
			name: "duplicate target",
			raw: map[string]string{
				"Expression": "Front",
				"Reading":    "Front",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, err := NewFieldMapping(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFieldMapping() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(mapping) != len(tt.raw) {
				t.Errorf("NewFieldMapping() kept %d roles, want %d", len(mapping), len(tt.raw))
			}
		})
	}
}

func TestFieldMappingTarget(t *testing.T) {
	mapping, err := NewFieldMapping(map[string]string{
		"Expression": "Front",
		"Gloss1":     "Back",
	})
	if err != nil {
		t.Fatalf("NewFieldMapping() error = %v", err)
	}

	if target, ok := mapping.Target(RoleExpression); !ok || target != "Front" {
		t.Errorf("Target(Expression) = %q, %v; want Front, true", target, ok)
	}
	if _, ok := mapping.Target(RoleAudio); ok {
		t.Error("Target(Audio) should report unmapped")
	}
}
