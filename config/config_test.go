package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	Reset()
	if err := Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		validate func(t *testing.T)
	}{
		{
			name: "partial section keeps other fields",
			content: `mobile:
  walkspeed: 8
  snappolicy: clamp
stamina:
  jumpcost: 20
`,
			validate: func(t *testing.T) {
				if Mobile.WalkSpeed != 8 {
					t.Errorf("Mobile.WalkSpeed = %v, want 8", Mobile.WalkSpeed)
				}
				if Mobile.SprintSpeed != 11 {
					t.Errorf("Mobile.SprintSpeed = %v, want untouched 11", Mobile.SprintSpeed)
				}
				if Mobile.SnapPolicy != SnapClamp {
					t.Errorf("Mobile.SnapPolicy = %v, want clamp", Mobile.SnapPolicy)
				}
				if Stamina.JumpCost != 20 || Stamina.Max != 100 {
					t.Errorf("Stamina = %+v", Stamina)
				}
			},
		},
		{
			name:    "invalid value rolls back",
			content: "locomotion:\n  gravity: 10\n",
			wantErr: true,
			validate: func(t *testing.T) {
				if Locomotion.Gravity != -35 {
					t.Errorf("Locomotion.Gravity = %v, want rollback to -35", Locomotion.Gravity)
				}
			},
		},
		{
			name:    "cooldown shorter than spawn delay",
			content: "fireball:\n  cooldown: 0.1\n  spawndelay: 0.5\n",
			wantErr: true,
			validate: func(t *testing.T) {
				if Fireball.Cooldown != 1.0 {
					t.Errorf("Fireball.Cooldown = %v, want rollback", Fireball.Cooldown)
				}
			},
		},
		{
			name:    "unknown snap policy",
			content: "mobile:\n  snappolicy: sideways\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "mobile: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := ApplyOverrides([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyOverrides() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.validate != nil {
				tt.validate(t)
			}
		})
	}
}

func TestValidateReturnsErrInvalid(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Stamina.Max = 0
	if err := Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
}

func TestLoadOverridesFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("swim:\n  speed: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if Swim.Speed != 5 {
		t.Errorf("Swim.Speed = %v, want 5", Swim.Speed)
	}

	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDumpOverridesRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	data, err := DumpOverrides()
	if err != nil {
		t.Fatal(err)
	}
	Mobile.WalkSpeed = 1
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("re-apply dump: %v", err)
	}
	if Mobile.WalkSpeed != 7 {
		t.Errorf("Mobile.WalkSpeed = %v, want 7 from dump", Mobile.WalkSpeed)
	}
}

func TestActionByName(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if _, ok := ActionByName("moonwalk"); ok {
		t.Error("unknown action resolved")
	}
}
