// Package pdf implementa la generación del recibo de pago imprimible.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ RECIBO + Fecha  │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula + Plan              │
//	│  ───────────────────────────────────────────  │
//	│  PAGO: Concepto | Método | Monto              │
//	│  SALDO: Saldo resultante + Estado             │
//	│  ───────────────────────────────────────────  │
//	│  FOOTER: Atendido por + leyenda │ QR recibo  │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	// BusinessName encabeza el recibo; configurable por despliegue.
	BusinessName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	if businessName == "" {
		businessName = "Gestión de Cobros WISP"
	}
	return &MarotoReceiptGenerator{BusinessName: businessName}
}

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, receipt *dto.ReceiptResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pago", true).
		WithAuthor(g.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(&receipt.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(paymentRow(receipt))
	m.AddRows(balanceRow(&receipt.Client))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y rótulo RECIBO + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(receipt *dto.ReceiptResponse) core.Row {
	fecha := receipt.Payment.Date.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicio de Internet", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente que paga.
func clientRow(client *dto.ClientResponse) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name+" "+client.LastName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cédula: %s   |   Plan: %s (%s)   |   Tel: %s",
				client.Cedula,
				client.MonthlyFeeID,
				moneyfmt.Pesos(client.MonthlyFee),
				nonEmpty(client.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// paymentRow: concepto, método y monto del pago recibido.
func paymentRow(receipt *dto.ReceiptResponse) core.Row {
	concepto := "Pago de Mensualidad"
	if !receipt.Payment.Amount.Equal(receipt.Client.MonthlyFee) {
		concepto = "Abono de Saldo"
	}

	return row.New(20).Add(
		col.New(6).Add(
			text.New("Concepto:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
			text.New(concepto, props.Text{Size: 9, Top: 8}),
			text.New("Método: "+receipt.Payment.Method, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("MONTO RECIBIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(moneyfmt.Pesos(receipt.Payment.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 8,
			}),
		),
	)
}

// balanceRow: saldo resultante y estado tras aplicar el pago.
func balanceRow(client *dto.ClientResponse) core.Row {
	saldoColor := colorPrimary
	if client.Balance.GreaterThan(decimal.Zero) {
		saldoColor = &props.Color{Red: 183, Green: 28, Blue: 28}
	}

	return row.New(12).Add(
		col.New(6).Add(
			text.New("Estado del servicio: "+client.Status, props.Text{
				Size: 9, Top: 3,
			}),
		),
		col.New(6).Add(
			text.New("Saldo actual: "+moneyfmt.Pesos(client.Balance), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: saldoColor, Top: 3,
			}),
		),
	)
}

// footerRow: operador que atendió, leyenda y QR con la referencia del recibo.
func footerRow(receipt *dto.ReceiptResponse) core.Row {
	referencia := fmt.Sprintf("recibo|%s|%s|%s",
		receipt.Client.ID,
		receipt.Payment.Date.Format("20060102150405"),
		receipt.Payment.Amount.String(),
	)

	return row.New(18).Add(
		col.New(9).Add(
			text.New("Atendido por: "+receipt.Payment.By, props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
			text.New(
				"Conserve este recibo como soporte de su pago. "+
					"Este documento no constituye factura electrónica de venta.",
				props.Text{Size: 6.5, Top: 8, Color: colorGray},
			),
		),
		code.NewQrCol(3, referencia, props.Rect{
			Center:  true,
			Percent: 90,
		}),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
