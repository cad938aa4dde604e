package billing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/moneyfmt"
)

// Encabezados del esquema CSV de 19 columnas. El orden y los textos son los
// del formato heredado: un archivo exportado por el sistema anterior se
// importa aquí sin tocarlo.
var csvHeaders = []string{
	"ID", "Tipo de Cliente", "Nombre", "Apellido", "Cédula", "Celular",
	"Dirección", "Lugar", "Mensualidad (Identificador)", "Mensualidad (Valor)",
	"Saldo Actual", "Estado", "Comentario", "Último Pago (Fecha)",
	"Historial de Pagos (Fecha - Monto - Tipo - Por)",
	"Historial de Modificaciones (Fecha - Por - Tipo - Detalles)",
	"Días Restantes en el Mes", "MAC", "IP",
}

const (
	csvDateLayout     = "02/01/2006"
	csvDateTimeLayout = "02/01/2006 15:04"
)

// CSVUseCase exportación e importación de la colección de clientes.
type CSVUseCase struct {
	clients repository.ClientRepository
	Now     func() time.Time
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(clients repository.ClientRepository) *CSVUseCase {
	return &CSVUseCase{clients: clients, Now: time.Now}
}

// Export escribe todos los clientes al writer, una fila por cliente, con
// citado RFC 4180. Devuelve cuántas filas exportó.
func (uc *CSVUseCase) Export(w io.Writer) (int, error) {
	list, err := uc.clients.List()
	if err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return 0, fmt.Errorf("escribir encabezados: %w", err)
	}
	for _, client := range list {
		if err := cw.Write(exportRow(client)); err != nil {
			return 0, fmt.Errorf("escribir fila: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("vaciar CSV: %w", err)
	}
	return len(list), nil
}

func exportRow(c *entity.Client) []string {
	payments := make([]string, 0, len(c.Payments))
	for _, p := range c.Payments {
		payments = append(payments, fmt.Sprintf("%s - %s (%s) - Por: %s",
			p.Date.Format(csvDateTimeLayout), moneyfmt.Pesos(p.Amount), p.Method, orNA(p.By)))
	}
	mods := make([]string, 0, len(c.Modifications))
	for _, m := range c.Modifications {
		entry := fmt.Sprintf("%s - Por: %s (%s)", m.Date.Format(csvDateTimeLayout), orNA(m.By), m.Type)
		if m.Details != "" {
			entry += " - " + m.Details
		}
		mods = append(mods, entry)
	}
	lastPayment := ""
	if !c.LastPaymentDate.IsZero() {
		lastPayment = c.LastPaymentDate.Format(csvDateLayout)
	}
	return []string{
		c.ID,
		c.ClientType,
		c.Name,
		c.LastName,
		c.Cedula,
		c.Phone,
		c.Address,
		c.Place,
		c.MonthlyFeeID,
		c.MonthlyFee.String(),
		c.Balance.String(),
		c.Status,
		c.Comment,
		lastPayment,
		strings.Join(payments, "; "),
		strings.Join(mods, "; "),
		strconv.Itoa(c.DaysRemaining),
		c.MAC,
		c.IP,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Import lee el mismo esquema de 19 columnas y agrega los clientes leídos al
// final de la colección. No se deduplica contra cédulas, MAC o IP existentes:
// la importación es una siembra en bloque. Los clientes importados arrancan
// sin historial de pagos y con una única entrada "Importación". Campos
// numéricos ilegibles quedan en 0; los de texto vacíos usan su valor por
// defecto. Devuelve cuántos clientes importó.
func (uc *CSVUseCase) Import(r io.Reader, actor string) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerar filas cortas: las columnas faltantes usan defaults

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("leer encabezados: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	now := uc.Now()
	var imported []*entity.Client
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("leer fila %d: %w", i+2, err)
		}
		imported = append(imported, uc.importRow(record, col, actor, now))
	}
	if len(imported) == 0 {
		return 0, nil
	}
	if err := uc.clients.Append(imported); err != nil {
		return 0, err
	}
	return len(imported), nil
}

func (uc *CSVUseCase) importRow(record []string, col map[string]int, actor string, now time.Time) *entity.Client {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := field("ID")
	if id == "" {
		id = uuid.New().String()
	}
	lastPayment := now
	if raw := field("Último Pago (Fecha)"); raw != "" {
		if t, err := time.Parse(csvDateLayout, raw); err == nil {
			lastPayment = t
		}
	}
	return &entity.Client{
		ID:              id,
		ClientType:      orDefault(field("Tipo de Cliente"), entity.ClientTypeNormal),
		Name:            field("Nombre"),
		LastName:        field("Apellido"),
		Cedula:          field("Cédula"),
		Phone:           field("Celular"),
		Address:         field("Dirección"),
		Place:           field("Lugar"),
		MonthlyFeeID:    orDefault(field("Mensualidad (Identificador)"), "A"),
		MonthlyFee:      parseDecimal(field("Mensualidad (Valor)")),
		Balance:         parseDecimal(field("Saldo Actual")),
		Status:          orDefault(field("Estado"), entity.EstadoAlDia),
		Comment:         field("Comentario"),
		LastPaymentDate: lastPayment,
		Payments:        []entity.Payment{},
		Modifications: []entity.Modification{
			{Date: now, By: actor, Type: entity.ModImportacion},
		},
		DaysRemaining: parseInt(field("Días Restantes en el Mes")),
		MAC:           field("MAC"),
		IP:            field("IP"),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
