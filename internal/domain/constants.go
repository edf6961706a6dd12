package domain

// Часы работы комнат для обсуждений (политика библиотеки)
const (
	OpeningHour = 8  // 08:00 включительно
	ClosingHour = 20 // 20:00 исключительно (последний слот 19:00-20:00)
)

// SlotDurationMinutes длительность одного слота
const SlotDurationMinutes = 60

// SlotsPerDay максимально возможное число слотов в день
const SlotsPerDay = ClosingHour - OpeningHour

// VisualSeatCount число визуальных мест на схеме комнаты.
// Фиксировано и не зависит от вместимости: при capacity > 10 лишние
// участники учитываются в группе, но не отображаются на схеме.
const VisualSeatCount = 10

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SeatLayout фиксированная раскладка визуальных мест S1..S10.
// Порядок соответствует порядку рассадки: бронирующий всегда S1,
// участники группы занимают следующие места в порядке добавления.
var SeatLayout = [VisualSeatCount]string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9", "S10"}
