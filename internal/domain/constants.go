package domain

// Расписание работы залов
const (
	OpeningHour  = 9  // первый слот 09:00-10:00
	ClosingHour  = 22 // последний слот 21:00-22:00
	SlotsPerDay  = ClosingHour - OpeningHour
	SlotDuration = 60 // минут
)

// Правила бронирования
const (
	BookingWindowDays     = 30 // на сколько дней вперёд можно бронировать
	InitialPaymentPercent = 50 // предоплата при бронировании
)

// Ограничения на пользовательский ввод
const (
	MaxClientNameLength = 120
	MaxPhoneLength      = 32
	MaxMessageLength    = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
