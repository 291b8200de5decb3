package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/models"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestValidateRecordSale(t *testing.T) {
	tests := []struct {
		name    string
		in      RecordSaleInput
		wantErr bool
	}{
		{
			name: "geldig los item",
			in:   RecordSaleInput{Description: "Vaas", Price: decPtr("5.00"), OwnerUserID: 1},
		},
		{
			name:    "prijs ontbreekt",
			in:      RecordSaleInput{Description: "Vaas", OwnerUserID: 1},
			wantErr: true,
		},
		{
			name:    "eigenaar ontbreekt",
			in:      RecordSaleInput{Description: "Vaas", Price: decPtr("5.00")},
			wantErr: true,
		},
		{
			name:    "omschrijving ontbreekt zonder QR",
			in:      RecordSaleInput{Price: decPtr("5.00"), OwnerUserID: 1},
			wantErr: true,
		},
		{
			name: "omschrijving mag leeg met QR",
			in:   RecordSaleInput{Price: decPtr("5.00"), OwnerUserID: 1, QRID: strPtr("ABC123")},
		},
		{
			name: "eigenaar mag leeg met QR",
			in:   RecordSaleInput{Price: decPtr("5.00"), QRID: strPtr("ABC123")},
		},
		{
			name:    "lege QR telt niet als QR",
			in:      RecordSaleInput{Price: decPtr("5.00"), OwnerUserID: 1, QRID: strPtr("   ")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecordSale(tt.in)
			if tt.wantErr && err == nil {
				t.Fatal("verwacht een validatiefout")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("onverwachte fout: %v", err)
			}
			if tt.wantErr && apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("verwacht KindValidation, kreeg %v", apperr.KindOf(err))
			}
		})
	}
}

func TestPlanQrSaleBijwerkenVanLevendeRij(t *testing.T) {
	existing := &models.Sale{ID: 7, OwnerUserID: 3}

	plan, err := planQrSale(existing, RecordSaleInput{Price: decPtr("5.00"), QRID: strPtr("ABC")})
	if err != nil {
		t.Fatalf("onverwachte fout: %v", err)
	}
	if plan != qrPlanUpdate {
		t.Fatal("levende onverkochte rij moet worden bijgewerkt, niet ingevoegd")
	}
}

func TestPlanQrSaleWeigertVerkochteRij(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		existing *models.Sale
	}{
		{name: "al verkocht", existing: &models.Sale{ID: 7, SoldAt: &now}},
		{name: "al verrekend", existing: &models.Sale{ID: 7, SoldAt: &now, Processed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planQrSale(tt.existing, RecordSaleInput{Price: decPtr("5.00"), QRID: strPtr("ABC")})
			if err == nil {
				t.Fatal("tweede scan van een verkochte rij moet worden geweigerd")
			}
			if apperr.KindOf(err) != apperr.KindConflict {
				t.Fatalf("verwacht KindConflict, kreeg %v", apperr.KindOf(err))
			}
		})
	}
}

func TestPlanQrSaleZonderLevendeRij(t *testing.T) {
	// QR-only payload: er valt niets bij te werken en niets in te voegen
	_, err := planQrSale(nil, RecordSaleInput{Price: decPtr("5.00"), QRID: strPtr("ABC")})
	if err == nil {
		t.Fatal("verwacht een fout voor een QR zonder rij en zonder velden")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("verwacht KindNotFound, kreeg %v", apperr.KindOf(err))
	}

	// volledig los item: invoegen, inclusief de verse QR
	plan, err := planQrSale(nil, RecordSaleInput{
		Description: "Vaas",
		Price:       decPtr("5.00"),
		OwnerUserID: 1,
		QRID:        strPtr("ABC"),
	})
	if err != nil {
		t.Fatalf("onverwachte fout: %v", err)
	}
	if plan != qrPlanInsert {
		t.Fatal("volledig los item met verse QR moet worden ingevoegd")
	}

	// omschrijving wel, eigenaar niet: invoegen kan niet zonder eigenaar
	_, err = planQrSale(nil, RecordSaleInput{
		Description: "Vaas",
		Price:       decPtr("5.00"),
		QRID:        strPtr("ABC"),
	})
	if err == nil {
		t.Fatal("verwacht een fout voor een insert zonder eigenaar")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("verwacht KindValidation, kreeg %v", apperr.KindOf(err))
	}
}

func TestHasQR(t *testing.T) {
	in := RecordSaleInput{}
	if in.hasQR() {
		t.Fatal("nil QRID mag niet als QR tellen")
	}
	in.QRID = strPtr("")
	if in.hasQR() {
		t.Fatal("lege QRID mag niet als QR tellen")
	}
	in.QRID = strPtr("ABC")
	if !in.hasQR() {
		t.Fatal("gevulde QRID moet als QR tellen")
	}
}
