package services

import (
	"testing"

	"canteen-api/apperr"
	"canteen-api/middleware"
	"canteen-api/models"
)

var testSecret = []byte("test-secret")

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testSecret)

	tests := []struct {
		name, userName, email, password string
	}{
		{"missing name", "", "a@example.com", "pw123456"},
		{"missing email", "Asha", "", "pw123456"},
		{"missing password", "Asha", "a@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(tt.userName, tt.email, tt.password)
			if err == nil || err.Kind != apperr.KindValidation {
				t.Fatalf("expected Validation, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testSecret)

	if err := svc.Register("Asha", "asha@example.com", "pw123456"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	// Same email is rejected regardless of the password.
	err := svc.Register("Other", "asha@example.com", "different-pw")
	if err == nil || err.Kind != apperr.KindConflict {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testSecret)

	if err := svc.Register("Asha", "asha@example.com", "pw123456"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	var user models.User
	if err := db.Where("email = ?", "asha@example.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if user.PasswordHash == "pw123456" {
		t.Errorf("password stored in the clear")
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testSecret)
	if err := svc.Register("Asha", "asha@example.com", "pw123456"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	t.Run("unknown email and wrong password look identical", func(t *testing.T) {
		_, errUnknown := svc.Login("nobody@example.com", "pw123456")
		_, errWrongPw := svc.Login("asha@example.com", "bad-password")
		if errUnknown == nil || errWrongPw == nil {
			t.Fatal("expected both logins to fail")
		}
		if errUnknown.Kind != apperr.KindUnauthorized || errWrongPw.Kind != apperr.KindUnauthorized {
			t.Fatalf("expected Unauthorized for both, got %v and %v", errUnknown, errWrongPw)
		}
		if errUnknown.Message != errWrongPw.Message {
			t.Errorf("error messages distinguish unknown email from wrong password")
		}
	})

	t.Run("success issues a token carrying id and role", func(t *testing.T) {
		token, err := svc.Login("asha@example.com", "pw123456")
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		claims, parseErr := middleware.ParseToken(token, testSecret)
		if parseErr != nil {
			t.Fatalf("issued token does not verify: %v", parseErr)
		}
		if claims.Subject == "" {
			t.Errorf("token missing subject")
		}
		if claims.Role != models.RoleCustomer {
			t.Errorf("token role = %q, want customer", claims.Role)
		}
	})
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testSecret)
	user := createUser(t, db, "Asha", "asha@example.com", models.RoleCustomer)

	got, err := svc.Profile(user.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if got.Email != "asha@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if _, err := svc.Profile(999); err == nil || err.Kind != apperr.KindNotFound {
		t.Fatalf("expected NotFound for stale id, got %v", err)
	}
}
