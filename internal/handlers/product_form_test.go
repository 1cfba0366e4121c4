package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nexkart-backend/internal/apperr"
)

func newMultipartContext(t *testing.T, fields map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		_ = writer.WriteField(name, value)
	}
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/admin/api/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseProductForm(t *testing.T) {
	c := newMultipartContext(t, map[string]string{
		"name":             "  Trail Shoe  ",
		"productCode":      "TS-100",
		"quantity":         "12",
		"price":            "89.90",
		"offerPrice":       "79.90",
		"proCategoryId":    "64a000000000000000000001",
		"proSubCategoryId": "64a000000000000000000002",
		"proVariants":      `[{"type":"Size","values":["42","43"]}]`,
	})

	form, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if form.Name != "Trail Shoe" {
		t.Fatalf("expected trimmed name, got %q", form.Name)
	}
	if !form.QuantitySet || form.Quantity != 12 {
		t.Fatalf("expected quantity=12, got %+v", form)
	}
	if !form.OfferPriceSet || form.OfferPrice != 79.90 {
		t.Fatalf("expected offerPrice=79.90, got %+v", form)
	}
	if form.DescriptionSet {
		t.Fatal("expected description to stay unset")
	}
	if !form.VariantsSet || len(form.Variants) != 1 || form.Variants[0].Type != "Size" {
		t.Fatalf("unexpected variants: %+v", form.Variants)
	}
}

func TestParseProductFormRejectsBadNumbers(t *testing.T) {
	c := newMultipartContext(t, map[string]string{"quantity": "a dozen"})
	if _, err := parseProductForm(c); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	c = newMultipartContext(t, map[string]string{"price": "free"})
	if _, err := parseProductForm(c); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateForCreate(t *testing.T) {
	complete := productForm{
		Name: "Trail Shoe", NameSet: true,
		ProductCode: "TS-100", ProductCodeSet: true,
		Quantity: 12, QuantitySet: true,
		Price: 89.90, PriceSet: true,
		CategoryID: "64a000000000000000000001", CategoryIDSet: true,
		SubCategoryID: "64a000000000000000000002", SubCategoryIDSet: true,
		VariantsSet: true,
	}
	if err := complete.validateForCreate(); err != nil {
		t.Fatalf("expected complete form to validate, got %v", err)
	}

	missingCode := complete
	missingCode.ProductCodeSet = false
	if err := missingCode.validateForCreate(); err == nil {
		t.Fatal("expected error when productCode is absent")
	}

	emptyName := complete
	emptyName.Name = ""
	err := emptyName.validateForCreate()
	if err == nil {
		t.Fatal("expected error when name is empty")
	}
	if err.Error() != "Missing required fields." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParseOptionalObjectID(t *testing.T) {
	id, err := parseOptionalObjectID("", "proBrandId")
	if err != nil || id != nil {
		t.Fatalf("expected nil id for empty value, got %v, %v", id, err)
	}

	id, err = parseOptionalObjectID("64a000000000000000000003", "proBrandId")
	if err != nil || id == nil {
		t.Fatalf("expected parsed id, got %v, %v", id, err)
	}

	if _, err := parseOptionalObjectID("nope", "proBrandId"); err == nil {
		t.Fatal("expected error for malformed hex")
	}
}
