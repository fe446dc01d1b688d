package request

// SelectTicketRequest 选中工单
type SelectTicketRequest struct {
	TicketId string `json:"ticket_id" binding:"required"`
}
