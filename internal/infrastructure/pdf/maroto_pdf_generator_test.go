package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGenerateShipmentPDF_DocumentoValido(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateShipmentPDF(&repository.ShipmentDoc{
		ShipmentID: "d1",
		OrgName:    "Almacén Central",
		CreatedAt:  time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Lines: []repository.ShipmentDocLine{
			{ProductName: "Clavo 2in", Quantity: 4, Price: dec("4.00"), Amount: dec("16.00")},
			{ProductName: "", Quantity: 1, Price: dec("2.50"), Amount: dec("2.50")}, // producto eliminado
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "debe ser un PDF válido")
}

func TestGenerateShipmentPDF_SinLineas(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateShipmentPDF(&repository.ShipmentDoc{
		ShipmentID: "d2",
		OrgName:    "Almacén Central",
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
