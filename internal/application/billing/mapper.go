package billing

import (
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
)

func toPaymentDTO(p entity.Payment) dto.PaymentDTO {
	return dto.PaymentDTO{Amount: p.Amount, Date: p.Date, Method: p.Method, By: p.By}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	payments := make([]dto.PaymentDTO, 0, len(c.Payments))
	for _, p := range c.Payments {
		payments = append(payments, toPaymentDTO(p))
	}
	mods := make([]dto.ModificationDTO, 0, len(c.Modifications))
	for _, m := range c.Modifications {
		mods = append(mods, dto.ModificationDTO{Date: m.Date, By: m.By, Type: m.Type, Details: m.Details})
	}
	return &dto.ClientResponse{
		ID:              c.ID,
		ClientType:      c.ClientType,
		Name:            c.Name,
		LastName:        c.LastName,
		Cedula:          c.Cedula,
		Phone:           c.Phone,
		Address:         c.Address,
		Place:           c.Place,
		Comment:         c.Comment,
		MonthlyFeeID:    c.MonthlyFeeID,
		MonthlyFee:      c.MonthlyFee,
		Balance:         c.Balance,
		Status:          c.Status,
		LastPaymentDate: c.LastPaymentDate,
		Payments:        payments,
		Modifications:   mods,
		MAC:             c.MAC,
		IP:              c.IP,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}
