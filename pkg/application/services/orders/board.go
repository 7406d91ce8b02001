package orders

import "github.com/arashoo/Katena-project-management/pkg/domain/entities"

// Column is one status bucket of the board
type Column struct {
	Status entities.OrderStatus
	Orders []entities.Order
}

// Board is the display grouping of all orders by status
type Board struct {
	Columns []Column
}

// NewBoard groups orders into one column per status, keeping creation order within a column
func NewBoard(all []entities.Order) *Board {
	board := &Board{Columns: make([]Column, len(entities.OrderStatuses))}
	index := make(map[entities.OrderStatus]int, len(entities.OrderStatuses))
	for i, status := range entities.OrderStatuses {
		board.Columns[i] = Column{Status: status, Orders: []entities.Order{}}
		index[status] = i
	}
	for _, order := range all {
		if i, ok := index[order.Status]; ok {
			board.Columns[i].Orders = append(board.Columns[i].Orders, order)
		}
	}
	return board
}

// Counts returns the number of orders per status
func (b *Board) Counts() map[entities.OrderStatus]int {
	counts := make(map[entities.OrderStatus]int, len(b.Columns))
	for _, col := range b.Columns {
		counts[col.Status] = len(col.Orders)
	}
	return counts
}

// Total returns the number of orders on the board
func (b *Board) Total() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Orders)
	}
	return total
}

// Column returns the bucket for a status
func (b *Board) Column(status entities.OrderStatus) Column {
	for _, col := range b.Columns {
		if col.Status == status {
			return col
		}
	}
	return Column{Status: status}
}
