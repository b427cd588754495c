package pricing

import (
	"testing"

	"github.com/tbourn/go-marketplace/internal/domain"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		price  float64
		code   string
		isPaid bool
		want   string
	}{
		{12.5, "USD", false, "Free"},
		{0, "USD", true, "Free"},
		{9.99, "", true, "$9.99"},
		{9.99, "usd", true, "$9.99"},
		{799, "INR", true, "₹799.00"},
		{1234.5, "USD", true, "$1,234.50"},
		{14.99, "EUR", true, "€14.99"},
		{5, "SEK", true, "SEK 5.00"},
		{9.99, "not-a-code", true, "9.99"},
	}
	for _, tc := range cases {
		if got := Format(tc.price, tc.code, tc.isPaid); got != tc.want {
			t.Fatalf("Format(%v, %q, %v) = %q; want %q", tc.price, tc.code, tc.isPaid, got, tc.want)
		}
	}
}

func TestBookAndCourse(t *testing.T) {
	if got := Book(domain.Book{Price: 9.99, IsPaid: true}); got != "$9.99" {
		t.Fatalf("Book = %q", got)
	}
	if got := Course(domain.Course{Price: 49.99, IsPaid: false}); got != "Free" {
		t.Fatalf("Course = %q", got)
	}
	// The displayed amount is what the buyer pays.
	if got := Book(domain.Book{Price: 12.5, Currency: "EUR", IsPaid: false}); got != "Free" {
		t.Fatalf("free book with stored price = %q", got)
	}
	if got := Course(domain.Course{Price: 1234.5, Currency: "usd", IsPaid: true}); got != "$1,234.50" {
		t.Fatalf("paid course = %q", got)
	}
}

func TestValidCurrency(t *testing.T) {
	for _, c := range []string{"", "USD", "inr", " EUR "} {
		if !ValidCurrency(c) {
			t.Fatalf("ValidCurrency(%q) = false", c)
		}
	}
	if ValidCurrency("DOLLARS") {
		t.Fatal("expected DOLLARS to be invalid")
	}
}
