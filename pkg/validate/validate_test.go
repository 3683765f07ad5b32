package validate

import "testing"

func validCar() CreateCarRequest {
	return CreateCarRequest{
		Make:         "Toyota",
		Model:        "Corolla",
		Variant:      "1.8 Hybrid",
		Year:         2021,
		PriceCents:   1899000,
		MileageKM:    42000,
		Fuel:         "hybrid",
		Transmission: "automatic",
	}
}

func TestCheckAcceptsValidCar(t *testing.T) {
	if errs := Check(validCar()); errs != nil {
		t.Fatalf("valid car rejected: %v", errs)
	}
}

func TestCheckRejectsOutOfRangeCar(t *testing.T) {
	req := validCar()
	req.Year = 1890
	req.PriceCents = 0
	req.Fuel = "steam"

	errs := Check(req)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
	byField := map[string]FieldError{}
	for _, fe := range errs {
		byField[fe.Field] = fe
	}
	if fe := byField["year"]; fe.Rule != "gte" {
		t.Fatalf("year error = %+v, want gte", fe)
	}
	if fe := byField["priceCents"]; fe.Rule != "required" && fe.Rule != "gt" {
		t.Fatalf("priceCents error = %+v", fe)
	}
	if fe := byField["fuel"]; fe.Rule != "oneof" {
		t.Fatalf("fuel error = %+v, want oneof", fe)
	}
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	errs := Check(LoginRequest{Email: "not-an-email", Password: "short"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
		if fe.Message == "" {
			t.Fatalf("empty message for %+v", fe)
		}
	}
	if !fields["email"] || !fields["password"] {
		t.Fatalf("expected json field names, got %v", errs)
	}
}

func TestCheckForumPostBounds(t *testing.T) {
	req := CreateForumPostRequest{
		CategoryID: "cat-1",
		Title:      "ok",
		Body:       "hello",
		Author:     "m",
	}
	errs := Check(req)
	if len(errs) != 2 {
		t.Fatalf("expected title+author errors, got %v", errs)
	}

	req.Title = "First service done"
	req.Author = "mika"
	if errs := Check(req); errs != nil {
		t.Fatalf("valid post rejected: %v", errs)
	}
}
