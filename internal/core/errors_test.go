// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPgError(t *testing.T) {
	cases := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", "23505", ErrDuplicateKey},
		{"foreign key violation", "23503", ErrConstraint},
		{"insufficient privilege", "42501", ErrPermission},
		{"undefined table", "42P01", ErrRelationMissing},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := fmt.Errorf("query: %w", &pgconn.PgError{Code: c.code})
			got := ClassifyPgError(err)
			if !errors.Is(got, c.want) {
				t.Fatalf("ClassifyPgError(%s) = %v, want %v", c.code, got, c.want)
			}
		})
	}
}

func TestMissingRelationIsNotConstraint(t *testing.T) {
	err := ClassifyPgError(&pgconn.PgError{Code: "42P01", TableName: "invoices"})
	if errors.Is(err, ErrConstraint) {
		t.Fatal("a missing table is not a data conflict")
	}
	if !errors.Is(err, ErrRelationMissing) {
		t.Fatalf("got %v, want ErrRelationMissing", err)
	}
}

func TestClassifyPgErrorPassthrough(t *testing.T) {
	if got := ClassifyPgError(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}

	plain := errors.New("connection refused")
	if got := ClassifyPgError(plain); got != plain {
		t.Fatalf("expected error unchanged, got %v", got)
	}

	unknown := &pgconn.PgError{Code: "57014"}
	if got := ClassifyPgError(unknown); !errors.As(got, new(*pgconn.PgError)) {
		t.Fatalf("expected unmapped pg error unchanged, got %v", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	appErr := NotFoundError("invoice")
	if !errors.Is(appErr, ErrNotFound) {
		t.Fatal("NotFoundError should wrap ErrNotFound")
	}
	if appErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", appErr.Status, http.StatusNotFound)
	}

	dup := DuplicateError("email")
	if !errors.Is(dup, ErrDuplicateKey) {
		t.Fatal("DuplicateError should wrap ErrDuplicateKey")
	}
}
