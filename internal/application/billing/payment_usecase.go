package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/moneyfmt"
)

// PaymentUseCase pagos, abonos, reversas y ajuste manual de saldo.
type PaymentUseCase struct {
	clients repository.ClientRepository
	Now     func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(clients repository.ClientRepository) *PaymentUseCase {
	return &PaymentUseCase{clients: clients, Now: time.Now}
}

// Pay cobra la mensualidad completa del cliente (su tarifa snapshot).
func (uc *PaymentUseCase) Pay(clientID, method, actor string) (*dto.ReceiptResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return uc.apply(client, client.MonthlyFee, method, actor, entity.ModPagoMensualidad)
}

// Abono aplica un pago parcial (o mayor al saldo: queda saldo a favor).
func (uc *PaymentUseCase) Abono(clientID string, amount decimal.Decimal, method, actor string) (*dto.ReceiptResponse, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return uc.apply(client, amount, method, actor, entity.ModAbonoSaldo)
}

// apply descuenta el monto del saldo, re-deriva el estado, registra el pago
// y la entrada de auditoría, y produce el recibo. No hay tope: un monto
// mayor al saldo deja saldo a favor (prepago intencional).
func (uc *PaymentUseCase) apply(client *entity.Client, amount decimal.Decimal, method, actor, kind string) (*dto.ReceiptResponse, error) {
	if method != entity.MetodoEfectivo && method != entity.MetodoTransferencia {
		return nil, domain.ErrValidation
	}
	now := uc.Now()
	oldBalance := client.Balance
	client.Balance = client.Balance.Sub(amount)
	client.Status = entity.EstadoPorSaldo(client.Balance)
	client.LastPaymentDate = now

	payment := entity.Payment{Amount: amount, Date: now, Method: method, By: actor}
	client.Payments = append(client.Payments, payment)
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now,
		By:   actor,
		Type: fmt.Sprintf("%s (%s)", kind, method),
		Details: fmt.Sprintf("Monto: %s, Saldo anterior: %s, Nuevo saldo: %s",
			moneyfmt.Pesos(amount), moneyfmt.Pesos(oldBalance), moneyfmt.Pesos(client.Balance)),
	})

	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return &dto.ReceiptResponse{
		Client:  *toClientResponse(client),
		Payment: toPaymentDTO(payment),
	}, nil
}

// RemovePayment reversa el pago en la posición dada del historial: el saldo
// sube exactamente por el monto eliminado y el estado se re-deriva.
func (uc *PaymentUseCase) RemovePayment(clientID string, index int, actor string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if index < 0 || index >= len(client.Payments) {
		return nil, domain.ErrIndexOutOfRange
	}

	now := uc.Now()
	removed := client.Payments[index]
	client.Payments = append(client.Payments[:index], client.Payments[index+1:]...)
	oldBalance := client.Balance
	client.Balance = client.Balance.Add(removed.Amount)
	client.Status = entity.EstadoPorSaldo(client.Balance)
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now,
		By:   actor,
		Type: entity.ModEliminacionPago,
		Details: fmt.Sprintf("Pago de %s (%s) eliminado. Saldo anterior: %s, Nuevo saldo: %s",
			moneyfmt.Pesos(removed.Amount), removed.Method,
			moneyfmt.Pesos(oldBalance), moneyfmt.Pesos(client.Balance)),
	})

	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// OverrideBalance fija el saldo directamente, sin validar magnitud ni signo.
// El estado se deriva del saldo nuevo.
func (uc *PaymentUseCase) OverrideBalance(clientID string, balance decimal.Decimal, actor string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	now := uc.Now()
	oldBalance := client.Balance
	client.Balance = balance
	client.Status = entity.EstadoPorSaldo(balance)
	client.Modifications = append(client.Modifications, entity.Modification{
		Date: now,
		By:   actor,
		Type: entity.ModSaldoManual,
		Details: fmt.Sprintf("Saldo: %s -> %s",
			moneyfmt.Pesos(oldBalance), moneyfmt.Pesos(balance)),
	})

	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Receipt reconstruye el recibo de un pago ya registrado en el historial
// (reimpresión desde la ficha del cliente).
func (uc *PaymentUseCase) Receipt(clientID string, index int) (*dto.ReceiptResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if index < 0 || index >= len(client.Payments) {
		return nil, domain.ErrIndexOutOfRange
	}
	return &dto.ReceiptResponse{
		Client:  *toClientResponse(client),
		Payment: toPaymentDTO(client.Payments[index]),
	}, nil
}
