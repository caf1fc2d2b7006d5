package services

import (
	"reflect"
	"testing"

	"canteen-api/apperr"
)

func TestMenuCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	created, err := svc.Create("Masala Dosa", 80, true)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	unavailable, err := svc.Create("Off Menu Special", 120, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if unavailable.IsAvailable {
		t.Fatalf("expected item created unavailable to stay unavailable")
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items including the unavailable one, got %d", len(items))
	}

	// List is read-only: a second call returns identical results.
	again, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !reflect.DeepEqual(items, again) {
		t.Fatalf("List is not idempotent: %v vs %v", items, again)
	}
}

func TestMenuItemDefaultsToAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	// Rows written without the availability column pick up the schema
	// default, matching items created before the flag existed.
	if err := db.Exec("INSERT INTO menu_items (name, price) VALUES (?, ?)", "Poha", 35.0).Error; err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	items, listErr := svc.List()
	if listErr != nil {
		t.Fatalf("List returned error: %v", listErr)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !items[0].IsAvailable {
		t.Errorf("expected schema default is_available=true")
	}
}

func TestMenuUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	item := createMenuItem(t, db, "Idli", 40, true)

	newPrice := 45.0
	updated, err := svc.Update(item.ID, MenuItemUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 45 {
		t.Errorf("price = %v, want 45", updated.Price)
	}
	if updated.Name != "Idli" {
		t.Errorf("omitted name changed to %q", updated.Name)
	}
	if !updated.IsAvailable {
		t.Errorf("omitted availability changed")
	}

	off := false
	updated, err = svc.Update(item.ID, MenuItemUpdate{IsAvailable: &off})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.IsAvailable {
		t.Errorf("expected is_available=false to be applied")
	}
}

func TestMenuUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	name := "Ghost"
	_, err := svc.Update(999, MenuItemUpdate{Name: &name})
	if err == nil || err.Kind != apperr.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestMenuSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	item := createMenuItem(t, db, "Vada", 30, true)

	msg, err := svc.SoftDelete(item.ID)
	if err != nil {
		t.Fatalf("SoftDelete returned error: %v", err)
	}
	if msg == "" {
		t.Fatalf("expected confirmation message")
	}

	// The row survives, only the availability flag flips.
	items, listErr := svc.List()
	if listErr != nil {
		t.Fatalf("List returned error: %v", listErr)
	}
	if len(items) != 1 {
		t.Fatalf("soft delete removed the row")
	}
	if items[0].IsAvailable {
		t.Fatalf("expected item marked unavailable")
	}

	if _, err := svc.SoftDelete(999); err == nil || err.Kind != apperr.KindNotFound {
		t.Fatalf("expected NotFound for missing id, got %v", err)
	}
}
