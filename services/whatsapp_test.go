package services

import (
	"net/url"
	"strings"
	"testing"

	"cafe-order/cart"
	"cafe-order/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"0812-3456-7890", "6281234567890"},
		{"+62 812 3456 7890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"(0274) 555123", "62274555123"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.raw, "62"); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{500, "500"},
		{15000, "15.000"},
		{42000, "42.000"},
		{1250000, "1.250.000"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestBuildOrderMessage(t *testing.T) {
	lines := []cart.Line{
		{Item: models.MenuItem{ID: "1", Name: "Kopi Susu", Price: 15000}, Qty: 2},
		{Item: models.MenuItem{ID: "2", Name: "Roti Bakar", Price: 12000}, Qty: 1},
	}
	msg := BuildOrderMessage("Budi", "Jl. Melati No. 5", lines, 42000)

	for _, want := range []string{
		"🛒 *PESANAN BARU (DELIVERY)*",
		"👤 *Nama:* Budi",
		"🏠 *Alamat:* Jl. Melati No. 5",
		"1. Kopi Susu",
		"2x @ Rp 15.000",
		"= Rp 30.000",
		"2. Roti Bakar",
		"1x @ Rp 12.000",
		"= Rp 12.000",
		"💰 *TOTAL: Rp 42.000*",
		"Terima kasih! 🙏",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildWhatsAppURL(t *testing.T) {
	msg := "🛒 *PESANAN BARU (DELIVERY)*\n\ntotal Rp 42.000"
	raw := BuildWhatsAppURL("wa.me", "6281234567890", msg)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if u.Scheme != "https" || u.Host != "wa.me" {
		t.Errorf("unexpected scheme/host: %s//%s", u.Scheme, u.Host)
	}
	if u.Path != "/6281234567890" {
		t.Errorf("path = %q, want /6281234567890", u.Path)
	}
	if got := u.Query().Get("text"); got != msg {
		t.Errorf("decoded text = %q, want original message", got)
	}
}
