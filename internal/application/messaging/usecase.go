// Package messaging construye los enlaces de recordatorio por WhatsApp.
// El motor solo produce los enlaces wa.me; abrirlos (el efecto de enviar)
// es responsabilidad de quien llama.
package messaging

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

// Filtros de destinatarios.
const (
	RecipientAll     = "all"
	RecipientPending = "pending" // saldo > 0
	RecipientAlDia   = "al_dia"  // saldo <= 0
)

// QRGenerator puerto para codificar un enlace como imagen QR (PNG).
type QRGenerator interface {
	PNG(content string, size int) ([]byte, error)
}

// UseCase recordatorios por WhatsApp.
type UseCase struct {
	clients repository.ClientRepository
	qr      QRGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(clients repository.ClientRepository, qr QRGenerator) *UseCase {
	return &UseCase{clients: clients, qr: qr}
}

// BuildLinks arma un enlace wa.me por cada cliente del filtro que tenga
// teléfono registrado. Falla con ErrValidation si el mensaje está vacío o el
// filtro no existe, y con ErrNotFound si el filtro no alcanza a nadie.
func (uc *UseCase) BuildLinks(recipient, text string) (*dto.WhatsAppLinksResponse, error) {
	if text == "" {
		return nil, domain.ErrValidation
	}
	var match func(*entity.Client) bool
	switch recipient {
	case RecipientAll:
		match = func(*entity.Client) bool { return true }
	case RecipientPending:
		match = func(c *entity.Client) bool { return c.Balance.GreaterThan(decimal.Zero) }
	case RecipientAlDia:
		match = func(c *entity.Client) bool { return !c.Balance.GreaterThan(decimal.Zero) }
	default:
		return nil, domain.ErrValidation
	}

	list, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	out := &dto.WhatsAppLinksResponse{Links: []dto.WhatsAppLink{}}
	for _, client := range list {
		if client.Phone == "" || !match(client) {
			continue
		}
		out.Links = append(out.Links, dto.WhatsAppLink{
			ClientID: client.ID,
			Name:     client.Name + " " + client.LastName,
			Phone:    client.Phone,
			URL: fmt.Sprintf("https://wa.me/%s?text=%s",
				client.Phone, url.QueryEscape(text)),
		})
	}
	if len(out.Links) == 0 {
		return nil, domain.ErrNotFound
	}
	out.Count = len(out.Links)
	return out, nil
}

// LinkQR codifica un enlace wa.me como PNG para escanear desde otro
// dispositivo.
func (uc *UseCase) LinkQR(link string) ([]byte, error) {
	if link == "" {
		return nil, domain.ErrValidation
	}
	return uc.qr.PNG(link, 256)
}
