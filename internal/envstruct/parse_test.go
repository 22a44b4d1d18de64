package envstruct_test

import (
	"testing"

	"github.com/gymello/gymello/internal/envstruct"
)

func lookupFromMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr      string `env:"TEST_ADDR" envDefault:"localhost:8080"`
		SqliteURL string `env:"TEST_SQLITE_URL"`
		Ignored   string
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "all set",
			env:  map[string]string{"TEST_ADDR": "localhost:0", "TEST_SQLITE_URL": ":memory:"},
			want: config{Addr: "localhost:0", SqliteURL: ":memory:", Ignored: ""},
		},
		{
			name: "default applied",
			env:  map[string]string{"TEST_SQLITE_URL": ":memory:"},
			want: config{Addr: "localhost:8080", SqliteURL: ":memory:", Ignored: ""},
		},
		{
			name:    "missing without default",
			env:     map[string]string{"TEST_ADDR": "localhost:0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := envstruct.Populate(&cfg, lookupFromMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate: %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Populate() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFromMap(nil)); err == nil {
		t.Error("expected error for non-struct pointer")
	}
	if err := envstruct.Populate(struct{}{}, lookupFromMap(nil)); err == nil {
		t.Error("expected error for non-pointer")
	}
}
