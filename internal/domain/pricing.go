package domain

// Quote расчёт стоимости выбранных часов
type Quote struct {
	Hours          []int
	PricePerHour   int64
	TotalPrice     int64
	InitialPayment int64
	Remaining      int64
	TimeRange      string
}

// TotalPrice стоимость выбранных часов
func TotalPrice(hours int, pricePerHour int64) int64 {
	return int64(hours) * pricePerHour
}

// InitialPayment предоплата: InitialPaymentPercent от суммы с округлением вверх
func InitialPayment(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total*InitialPaymentPercent + 99) / 100
}

// NewQuote считает стоимость для отсортированного списка часов
func NewQuote(hours []int, pricePerHour int64) Quote {
	total := TotalPrice(len(hours), pricePerHour)
	initial := InitialPayment(total)
	return Quote{
		Hours:          hours,
		PricePerHour:   pricePerHour,
		TotalPrice:     total,
		InitialPayment: initial,
		Remaining:      total - initial,
		TimeRange:      TimeRange(hours),
	}
}
