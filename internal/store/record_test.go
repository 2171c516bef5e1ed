package store

import (
	"errors"
	"testing"

	"github.com/moodlist/moodlist/internal/shared"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantValid bool
	}{
		{
			name:      "complete record",
			body:      `{"password": "pw1", "playlists": {"happy": ["Song A"]}, "favorite_mood": "happy"}`,
			wantValid: true,
		},
		{
			name:      "empty playlists",
			body:      `{"password": "", "playlists": {}}`,
			wantValid: true,
		},
		{
			name: "missing password",
			body: `{"playlists": {"happy": []}}`,
		},
		{
			name: "missing playlists",
			body: `{"password": "pw1"}`,
		},
		{
			name:    "not json",
			body:    `{"password": `,
			wantErr: true,
		},
		{
			name:    "wrong playlists type",
			body:    `{"password": "pw1", "playlists": "oops"}`,
			wantErr: true,
		},
		{
			name:    "array body",
			body:    `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeRecord([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				if !errors.Is(err, shared.ErrMalformedRecord) {
					t.Errorf("expected ErrMalformedRecord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRecord failed: %v", err)
			}

			valid := rec.Validate() == nil
			if valid != tt.wantValid {
				t.Errorf("Validate() = %v, want valid=%v", rec.Validate(), tt.wantValid)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("pw1", map[string][]string{"happy": {"Song A"}}, "happy")

	if err := rec.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
	if *rec.Password != "pw1" {
		t.Errorf("expected password pw1, got %q", *rec.Password)
	}
	if rec.FavoriteMood != "happy" {
		t.Errorf("expected favorite happy, got %q", rec.FavoriteMood)
	}

	t.Run("nil playlists normalized", func(t *testing.T) {
		rec := NewRecord("pw1", nil, "")
		if err := rec.Validate(); err != nil {
			t.Errorf("expected valid record with empty playlists, got %v", err)
		}
	})
}
