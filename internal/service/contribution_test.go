package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

func TestCreateContribution(t *testing.T) {
	ctx := context.Background()
	_, contributions := newTestServices(t)

	c, err := contributions.Create(ctx, " Alice ", " 100.50 ", " January ", " 2024 ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.User != "Alice" || c.Month != "January" || c.Year != "2024" {
		t.Errorf("fields not trimmed: %+v", c)
	}
	if c.Amount != 100.50 {
		t.Errorf("amount = %v, want 100.50", c.Amount)
	}
	if c.ID == "" {
		t.Error("created contribution has no ID")
	}
}

func TestCreateContributionRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	_, contributions := newTestServices(t)

	cases := [][4]string{
		{"", "100", "January", "2024"},
		{"Alice", "", "January", "2024"},
		{"Alice", "100", "", "2024"},
		{"Alice", "100", "January", ""},
		{"Alice", "   ", "January", "2024"},
	}
	for _, tc := range cases {
		if _, err := contributions.Create(ctx, tc[0], tc[1], tc[2], tc[3]); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Create(%v) err = %v, want ErrInvalidInput", tc, err)
		}
	}

	// None of the rejected submissions may reach the store.
	list, err := contributions.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("rejected submissions stored: %v", list)
	}
}

func TestCreateContributionRejectsNonNumericAmount(t *testing.T) {
	_, contributions := newTestServices(t)
	if _, err := contributions.Create(context.Background(), "Alice", "a lot", "January", "2024"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestIdenticalSubmissionsStoreDistinctRecords(t *testing.T) {
	ctx := context.Background()
	_, contributions := newTestServices(t)

	first, err := contributions.Create(ctx, "Alice", "100", "January", "2024")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := contributions.Create(ctx, "Alice", "100", "January", "2024")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if first.ID == second.ID {
		t.Error("identical submissions shared an ID")
	}
	list, err := contributions.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("have %d records, want 2", len(list))
	}
}

func TestDeleteContribution(t *testing.T) {
	ctx := context.Background()
	_, contributions := newTestServices(t)

	c, err := contributions.Create(ctx, "Alice", "100", "January", "2024")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := contributions.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := contributions.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("record survives delete: %v", list)
	}
}
