package inventory

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// Result resultado de una validación: Valid=false cuando Errors tiene entradas.
// Errors va indexado por campo con un único mensaje por campo; las reglas de un
// mismo campo se evalúan en orden (requerido, mínimo, máximo) y son excluyentes:
// la primera que falla es la que queda reportada.
type Result struct {
	Valid  bool
	Errors map[string]string
}

var (
	batchNumberRe = regexp.MustCompile(`^[A-Z0-9-]+$`)
	casNumberRe   = regexp.MustCompile(`^\d+-\d+-\d+$`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateNewItem valida la entrada cruda de un ítem nuevo. Es pura y nunca
// corta en el primer error: todas las reglas corren y cada violación se
// acumula bajo su campo. No persiste nada ni consulta duplicados.
func ValidateNewItem(in entity.NewItemInput) Result {
	errs := map[string]string{}

	// ── Campos de texto (reglas compartidas con la edición) ──────────────────

	for _, f := range []struct{ field, value string }{
		{"name", in.Name},
		{"company", in.Company},
		{"volume", in.Volume},
		{"barcode", in.Barcode},
		{"qrCode", in.QRCode},
		{"concentration", in.Concentration},
		{"batchNumber", in.BatchNumber},
		{"serialNumber", in.SerialNumber},
		{"casNumber", in.CASNumber},
		{"notes", in.Notes},
	} {
		if msg := ValidateItemField(f.field, f.value); msg != "" {
			errs[f.field] = msg
		}
	}

	// ── Cantidad y categoría ─────────────────────────────────────────────────

	if in.Quantity == nil {
		errs["quantity"] = "Quantity is required"
	} else if *in.Quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	} else if *in.Quantity > 999999 {
		errs["quantity"] = "Quantity exceeds maximum"
	} else if *in.Quantity != float64(int64(*in.Quantity)) {
		errs["quantity"] = "Quantity must be a whole number"
	}

	if in.Category == "" {
		errs["category"] = "Temperature zone is required"
	} else if in.Category != entity.CategoryFridge && in.Category != entity.CategoryFreezer {
		errs["category"] = "Category must be 4C or -20C"
	}

	// ── Fechas ───────────────────────────────────────────────────────────────

	if in.PurchaseDate != "" && !isValidDate(in.PurchaseDate) {
		errs["purchaseDate"] = "Invalid purchase date"
	}

	if in.ExpirationDate != "" && !isValidDate(in.ExpirationDate) {
		errs["expirationDate"] = "Invalid expiration date"
	}

	if in.PurchaseDate != "" && in.ExpirationDate != "" {
		purchase, errP := time.Parse("2006-01-02", in.PurchaseDate)
		expiration, errE := time.Parse("2006-01-02", in.ExpirationDate)
		if errP == nil && errE == nil && !expiration.After(purchase) {
			errs["expirationDate"] = "Expiration date must be after purchase date"
		}
	}

	// ── Ubicación ────────────────────────────────────────────────────────────

	if in.Location != nil {
		if loc := ValidateLocation(in.Location.Track, in.Location.Position); !loc.Valid {
			// Solo el primer error aflora bajo "location": track antes que position.
			if msg, ok := loc.Errors["track"]; ok {
				errs["location"] = msg
			} else if msg, ok := loc.Errors["position"]; ok {
				errs["location"] = msg
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateItemField valida un único campo de texto con las mismas reglas del
// alta y devuelve el mensaje de la regla violada, o "" si el valor es válido.
// La edición parcial lo usa campo por campo sobre los valores que cambian.
func ValidateItemField(field, value string) string {
	switch field {
	case "name":
		if v := strings.TrimSpace(value); v == "" {
			return "Item name is required"
		} else if len(v) < 2 {
			return "Item name must be at least 2 characters"
		} else if len(v) > 100 {
			return "Item name must be less than 100 characters"
		}
	case "company":
		if v := strings.TrimSpace(value); v == "" {
			return "Company/supplier name is required"
		} else if len(v) < 2 {
			return "Company name must be at least 2 characters"
		} else if len(v) > 100 {
			return "Company name must be less than 100 characters"
		}
	case "volume":
		if v := strings.TrimSpace(value); v == "" {
			return "Volume is required"
		} else if len(v) < 2 {
			return "Volume must be at least 2 characters"
		} else if len(v) > 50 {
			return "Volume must be less than 50 characters"
		}
	case "barcode":
		if v := strings.TrimSpace(value); v == "" {
			return "Barcode is required"
		} else if len(v) < 3 {
			return "Barcode must be at least 3 characters"
		} else if len(v) > 100 {
			return "Barcode must be less than 100 characters"
		}
	case "qrCode":
		if v := strings.TrimSpace(value); v == "" {
			return "QR code is required"
		} else if len(v) < 3 {
			return "QR code must be at least 3 characters"
		} else if len(v) > 100 {
			return "QR code must be less than 100 characters"
		}
	case "concentration":
		if value != "" && len(strings.TrimSpace(value)) > 50 {
			return "Concentration must be less than 50 characters"
		}
	case "batchNumber":
		if strings.TrimSpace(value) != "" {
			if !batchNumberRe.MatchString(value) {
				return "Batch number format invalid (uppercase letters, numbers, hyphens only)"
			} else if len(value) > 50 {
				return "Batch number must be less than 50 characters"
			}
		}
	case "serialNumber":
		if strings.TrimSpace(value) != "" && len(value) > 50 {
			return "Serial number must be less than 50 characters"
		}
	case "casNumber":
		if strings.TrimSpace(value) != "" && !casNumberRe.MatchString(value) {
			return "CAS number format must be XXX-XX-X (e.g., 7732-18-5)"
		}
	case "notes":
		if len(value) > 500 {
			return "Notes must be less than 500 characters"
		}
	}
	return ""
}

// ValidateDuplicateInput chequeo de presencia previo a la consulta de duplicados.
// Es distinto de la validación completa: solo exige name y company no vacíos.
func ValidateDuplicateInput(name, company string) Result {
	errs := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name required for duplicate check"
	}
	if strings.TrimSpace(company) == "" {
		errs["company"] = "Company required for duplicate check"
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// isValidDate: formato ISO YYYY-MM-DD y fecha de calendario real.
func isValidDate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
