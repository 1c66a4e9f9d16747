package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusChecked   OrderStatus = "Checked"
	StatusCooking   OrderStatus = "Cooking"
	StatusPickedUp  OrderStatus = "PickedUp"
	StatusDelivered OrderStatus = "Delivered"
)

// statusSeq is the only legal progression; an order never skips or
// reverses a stage.
var statusSeq = []OrderStatus{
	StatusPending, StatusChecked, StatusCooking, StatusPickedUp, StatusDelivered,
}

// Rank returns the position of s in the progression, or -1 if s is not
// a known status.
func (s OrderStatus) Rank() int {
	for i, st := range statusSeq {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool { return s.Rank() >= 0 }

// Prev returns the status directly before s. Pending has no predecessor.
func (s OrderStatus) Prev() (OrderStatus, bool) {
	r := s.Rank()
	if r <= 0 {
		return "", false
	}
	return statusSeq[r-1], true
}
