// AngelaMos | 2026
// service_test.go

package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"
)

type fakeRepo struct {
	Repository

	clients []Client
}

func (f *fakeRepo) ListByUser(_ context.Context, _ string) ([]Client, error) {
	return f.clients, nil
}

func TestExportCSV(t *testing.T) {
	repo := &fakeRepo{clients: []Client{
		{
			Name:      "Dana Alvarez",
			Phone:     "555-0100",
			Email:     "dana@example.com",
			City:      "Springfield",
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Name: `Comma, Inc.`,
		},
	}}
	svc := NewService(repo)

	var buf bytes.Buffer
	if err := svc.ExportCSV(context.Background(), "user-1", &buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("rows = %d, want header plus two", len(records))
	}
	if records[0][0] != "name" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][0] != "Dana Alvarez" || records[1][4] != "Springfield" {
		t.Fatalf("first row = %v", records[1])
	}
	if records[1][7] != "2026-08-01" {
		t.Fatalf("created_at = %q", records[1][7])
	}
	if records[2][0] != "Comma, Inc." {
		t.Fatalf("quoted name round-trip failed: %v", records[2])
	}
}
