package models

// Order is one bookstore order. IDs look like "ORD042". FinalPrice and
// TotalAmount are derived from Quantity/Price/Discount and must never be
// taken from an external source row.
type Order struct {
	ID             string  `json:"id" db:"id"`
	CustomerID     int     `json:"customer_id" db:"customer_id"`
	CustomerName   string  `json:"customer_name" db:"customer_name"`
	Date           string  `json:"date" db:"order_date"`
	BookTitle      string  `json:"book_title" db:"book_title"`
	Author         string  `json:"author" db:"author"`
	Genre          string  `json:"genre" db:"genre"`
	Quantity       int     `json:"quantity" db:"quantity"`
	Price          float64 `json:"price" db:"price"`
	Discount       float64 `json:"discount" db:"discount"` // percent, 0-100
	FinalPrice     float64 `json:"final_price" db:"final_price"`
	TotalAmount    float64 `json:"total_amount" db:"total_amount"`
	Status         string  `json:"status" db:"status"`
	DeliveryMethod string  `json:"delivery_method" db:"delivery_method"`
	Notes          string  `json:"order_notes" db:"order_notes"`
}

// Well-known workflow labels. Status is free text in storage, these are
// just the values the app itself assigns.
const (
	StatusAwaitingPayment = "awaiting payment"
	StatusPaid            = "paid"
	StatusProcessing      = "processing"
	StatusShipped         = "shipped"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// ComputeDerived recomputes FinalPrice and TotalAmount from the raw
// quantity, unit price and discount percent.
func (o *Order) ComputeDerived() {
	o.FinalPrice = o.Price * (1 - o.Discount/100)
	o.TotalAmount = o.FinalPrice * float64(o.Quantity)
}
